package main

import (
	"log"

	"inventory-backend/cmd"
	"inventory-backend/logger"
)

func main() {
	// Console logging until a command loads its configuration
	if err := logger.Setup(logger.DefaultConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cmd.Execute()
}
