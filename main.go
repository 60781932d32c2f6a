package main

import (
	"os"

	"schoolku_backend/internals/commands"
	"schoolku_backend/internals/logger"
)

func main() {
	if err := commands.Execute(); err != nil {
		logger.Error("❌ gagal", "err", err)
		os.Exit(1)
	}
}
