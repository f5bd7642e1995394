package main

import "github.com/icco/chordclock/cmd"

func main() {
	cmd.Execute()
}
