package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/alvazi-dev/microgl/internal/commands"
)

func main() {
	// Optional .env for MICROGL_CONFIG and friends.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
