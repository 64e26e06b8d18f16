package main

import (
	"fmt"
	"os"
	"os/signal"

	"vid2mp3/cmd"
)

func main() {
	// An interrupt anywhere in the flow ends the whole program at once.
	// An in-flight ffmpeg child is left to the OS process-group teardown.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}()

	cmd.Execute()
}
