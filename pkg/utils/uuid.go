package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 12
)

// GenerateID gera o identificador curto usado nas sessões do widget
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
