package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle/apps/wordle-core/internal/cli"
)

func main() {
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wordle:", err)
		os.Exit(1)
	}
}
