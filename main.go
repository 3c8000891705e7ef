package main

import "github.com/vocdoni/votecaster-tui/internal/cli"

func main() {
	cli.Execute()
}
