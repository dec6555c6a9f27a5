package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength     = 6
)

// GenerateID gera um identificador curto, usado para correlacionar os logs
// de um mesmo lote de importação.
func GenerateID() (string, error) {
	return gonanoid.Generate(idCharacters, idLength)
}
