package main

import (
	"os"

	"github.com/Fahim-2001/finance-management-system-suggestions-backend/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
