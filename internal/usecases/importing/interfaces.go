package importing

import (
	"github.com/vfg2006/funnel-metrics-api/internal/domain"
)

// Importer define o motor de normalização de planilhas: recebe texto (ou
// bytes, no caso de XLSX) e devolve a coleção de registros diários.
type Importer interface {
	// ParseCSV processa um export CSV (separador vírgula).
	ParseCSV(text string) ([]*domain.DailyRecord, error)

	// ParsePasted processa texto colado de planilha (separador tab ou vírgula).
	ParsePasted(text string) ([]*domain.DailyRecord, error)

	// ParseXLSX processa a primeira aba de um arquivo .xlsx.
	ParseXLSX(data []byte) ([]*domain.DailyRecord, error)
}
