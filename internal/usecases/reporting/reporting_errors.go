package reporting

import (
	"errors"
)

// Erros específicos do contexto de registros diários
var (
	ErrInvalidDate   = errors.New("data inválida: esperado formato YYYY-MM-DD")
	ErrInvalidRange  = errors.New("intervalo inválido: data inicial posterior à final")
	ErrEmptyEntry    = errors.New("nenhum campo informado na entrada manual")
	ErrStoreDisabled = errors.New("persistência de registros desabilitada")
)
