package main

import (
	"fmt"
	"os"

	// Lets REMINDERS_* settings live in a .env file next to the binary.
	_ "github.com/joho/godotenv/autoload"

	"github.com/idilsaglam/reminders/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}
}
