package main

import (
	"log"

	"github.com/goliatone/go-formbuilder/internal/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("formbuilder: %v", err)
	}
}
