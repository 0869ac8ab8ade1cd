package main

import "extract-audio-from-video/cmd"

func main() {
	cmd.Execute()
}
