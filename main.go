package main

import (
	"dlis-forge/cli"
)

func main() {
	cli.Start()
}
