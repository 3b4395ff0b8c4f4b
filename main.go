package main

import "github.com/mouse-blink/dirdoc/cmd"

func main() {
	cmd.Execute()
}
