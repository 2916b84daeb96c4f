package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jgoldfed/obsidian-title-generator/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run tools/encrypt_key/main.go <api-key>")
	}

	apiKey := os.Args[1]
	encryptedKey, err := config.Encrypt(apiKey)
	if err != nil {
		log.Fatalf("Failed to encrypt API key: %v", err)
	}

	fmt.Println("Encrypted API Key:")
	fmt.Println(encryptedKey)
	fmt.Println("\nUse this value for open_ai_api_key when editing settings.yaml by hand")
}
