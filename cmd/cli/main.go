package main

import "ncgames/cmd/cli/command"

func main() {
	command.Execute()
}
