package main

import (
	"log"

	"github.com/befoot1242/wordbook/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ wordbookd failed to start: %v", err)
	}
}
