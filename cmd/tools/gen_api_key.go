// Command gen_api_key mints an operator API key and prints the
// Argon2id hash to store in API_KEY_HASH. The plain key is shown once
// and never persisted.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"log"

	"predict-lab/auth"
)

func main() {
	key := flag.String("key", "", "Use this key instead of generating one")
	flag.Parse()

	apiKey := *key
	if apiKey == "" {
		raw := make([]byte, 32)
		if _, err := rand.Read(raw); err != nil {
			log.Fatalf("Key generation failed: %v", err)
		}
		apiKey = base64.RawURLEncoding.EncodeToString(raw)
	}

	hash, err := auth.HashAPIKey(apiKey)
	if err != nil {
		log.Fatalf("Hashing failed: %v", err)
	}

	fmt.Printf("API key (give to the operator, shown once):\n%s\n\n", apiKey)
	fmt.Printf("API_KEY_HASH (put in the environment):\n%s\n", hash)
}
