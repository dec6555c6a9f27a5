package importing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput indica que o texto tokenizado não produziu nenhuma linha.
var ErrEmptyInput = errors.New("o arquivo está vazio: nenhuma linha com conteúdo foi encontrada")

// UnrecognizedLayoutError indica que nem o layout diário nem o mensal
// foram detectados na janela de varredura. Carrega a primeira linha da
// grade e os grupos de palavras-chave ausentes para diagnóstico do export.
type UnrecognizedLayoutError struct {
	FirstRow      []string
	MissingGroups []string
}

func (e *UnrecognizedLayoutError) Error() string {
	return fmt.Sprintf(
		"nenhum formato reconhecido (diário ou mensal) nas primeiras %d linhas; grupos obrigatórios ausentes: [%s]; primeira linha recebida: [%s]",
		layoutScanWindow,
		strings.Join(e.MissingGroups, ", "),
		strings.Join(e.FirstRow, " | "),
	)
}

// MissingColumnError indica cabeçalho diário encontrado, porém sem as
// colunas obrigatórias (data e/ou investimento). Lista os cabeçalhos
// detectados para o usuário corrigir o export.
type MissingColumnError struct {
	Missing []string
	Headers []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf(
		"colunas obrigatórias ausentes no cabeçalho: [%s]; cabeçalhos detectados: [%s]",
		strings.Join(e.Missing, ", "),
		strings.Join(e.Headers, " | "),
	)
}
