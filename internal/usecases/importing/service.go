package importing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-metrics-api/internal/config"
	"github.com/vfg2006/funnel-metrics-api/internal/domain"
	"github.com/vfg2006/funnel-metrics-api/pkg/utils"
)

// Service implementa o Importer consolidando o pipeline completo:
// tokenização -> classificação de layout -> mapeamento -> montagem.
type Service struct {
	cfg *config.Config
}

// NewService cria uma nova instância do motor de importação.
func NewService(cfg *config.Config) Importer {
	return &Service{cfg: cfg}
}

// ParseCSV processa um export CSV (separador vírgula).
func (s *Service) ParseCSV(text string) ([]*domain.DailyRecord, error) {
	return s.parseGrid(TokenizeCSV(text), "csv")
}

// ParsePasted processa texto colado de planilha (tab ou vírgula).
func (s *Service) ParsePasted(text string) ([]*domain.DailyRecord, error) {
	return s.parseGrid(TokenizePasted(text), "paste")
}

// parseGrid executa a classificação e a montagem sobre uma grade já
// tokenizada. Erros fatais (entrada vazia, layout não reconhecido,
// colunas obrigatórias ausentes) carregam diagnóstico para o usuário;
// linhas com data inválida e células não numéricas são recuperadas
// silenciosamente pelas camadas de baixo.
func (s *Service) parseGrid(grid RawGrid, source string) ([]*domain.DailyRecord, error) {
	batchID, _ := utils.GenerateID()

	logger := logrus.WithFields(logrus.Fields{
		"batch_id": batchID,
		"source":   source,
		"rows":     len(grid),
	})

	if len(grid) == 0 {
		logger.Warn("Importação abortada: entrada vazia")
		return nil, ErrEmptyInput
	}

	classification := Classify(grid)

	switch classification.Kind {
	case LayoutDaily:
		columns, err := MapColumns(grid[classification.HeaderRow])
		if err != nil {
			logger.WithError(err).Warn("Cabeçalho diário sem colunas obrigatórias")
			return nil, err
		}

		records := buildDailyRecords(grid, classification.HeaderRow, columns)
		logger.WithFields(logrus.Fields{
			"layout":     LayoutDaily,
			"header_row": classification.HeaderRow,
			"records":    len(records),
		}).Info("Importação concluída no formato diário")

		return records, nil

	case LayoutMonthly:
		year := inferYear(grid[classification.HeaderRow], s.cfg.Sheets.FallbackYear)

		records := buildMonthlyRecords(grid, classification.HeaderRow, year)
		logger.WithFields(logrus.Fields{
			"layout":     LayoutMonthly,
			"header_row": classification.HeaderRow,
			"year":       year,
			"records":    len(records),
		}).Info("Importação concluída no formato mensal transposto")

		return records, nil

	default:
		err := &UnrecognizedLayoutError{
			FirstRow:      grid[0],
			MissingGroups: missingKeywordGroups(grid),
		}
		logger.WithError(err).Warn("Nenhum layout reconhecido na janela de varredura")
		return nil, err
	}
}

// missingKeywordGroups informa quais grupos obrigatórios de palavras-chave
// não apareceram na janela de varredura, para compor o diagnóstico.
func missingKeywordGroups(grid RawGrid) []string {
	limit := len(grid)
	if limit > layoutScanWindow {
		limit = layoutScanWindow
	}

	foundDate := false
	foundSpend := false
	for i := 0; i < limit; i++ {
		for _, cell := range grid[i] {
			normalized := normalizeHeaderCell(cell)
			if containsAny(normalized, dateKeywords) {
				foundDate = true
			}
			if containsAny(normalized, spendKeywords) {
				foundSpend = true
			}
		}
	}

	var missing []string
	if !foundDate {
		missing = append(missing, "fecha (date/fecha/dia)")
	}
	if !foundSpend {
		missing = append(missing, "inversión (spend/inversion/gasto/importe)")
	}
	if len(missing) == 0 {
		// Palavras-chave até existem, mas nunca na mesma linha de
		// cabeçalho e sem linha de meses suficiente
		missing = append(missing, "cabeçalho com fecha+inversión na mesma linha, ou linha com 3+ meses")
	}

	return missing
}
