//go:build ignore

// Prints a random SESSION_SECRET_KEY for signing cart session tokens.
// Run with: go run scripts/generate_keys.go
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

func generateSecureKey(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func main() {
	// 48 random bytes encode to 64 characters, above the 32-byte minimum.
	secret, err := generateSecureKey(48)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating session secret: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("# Cart session token signing key")
	fmt.Printf("SESSION_SECRET_KEY=%s\n", secret)
	fmt.Println()
	fmt.Println("# Rotating this key starts a new cart for every shopper.")
}
