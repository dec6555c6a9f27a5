package importing

import (
	"bytes"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-metrics-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ParseXLSX converte a primeira aba de um arquivo .xlsx em grade de
// células e reaproveita o mesmo pipeline dos formatos texto. As células
// chegam como texto formatado, então a heurística numérica e de datas é
// idêntica à dos exports CSV.
func (s *Service) ParseXLSX(data []byte) ([]*domain.DailyRecord, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("arquivo .xlsx inválido: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logrus.WithError(cerr).Warn("Erro ao fechar arquivo .xlsx")
		}
	}()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyInput
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a aba %q: %w", sheets[0], err)
	}

	grid := make(RawGrid, 0, len(rows))
	for _, row := range rows {
		if rowHasContent(row) {
			grid = append(grid, row)
		}
	}

	return s.parseGrid(grid, "xlsx")
}
