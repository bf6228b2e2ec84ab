package main

import "github.com/katalvlaran/autonav/cmd/autonav/commands"

func main() {
	commands.Execute()
}
