package main

import (
	"os"

	"github.com/undenfinitematrix/Aerochat-Conversation-Logger/internal/command"
)

func main() {
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
