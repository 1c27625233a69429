package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a short URL-safe row ID. 12 characters keeps the
// collision chance negligible at this tenant scale.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
