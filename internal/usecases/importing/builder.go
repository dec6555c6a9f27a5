package importing

import (
	"fmt"
	"sort"

	"github.com/vfg2006/funnel-metrics-api/internal/domain"
	"github.com/vfg2006/funnel-metrics-api/pkg/utils"
)

// buildDailyRecords monta um registro por linha de dados do layout diário.
// Linhas cuja data não normaliza para uma data de calendário válida são
// descartadas silenciosamente (recuperação local, não fatal).
func buildDailyRecords(grid RawGrid, headerRow int, columns domain.ColumnMap) []*domain.DailyRecord {
	records := make([]*domain.DailyRecord, 0, len(grid)-headerRow-1)

	for _, row := range grid[headerRow+1:] {
		date, ok := utils.NormalizeDateCell(cellAt(row, columns.Index(domain.FieldDate)))
		if !ok {
			continue
		}

		record := domain.NewDailyRecord(date)

		for field, idx := range columns {
			if field == domain.FieldDate || idx == domain.ColumnNotFound {
				continue
			}
			record.Set(field, utils.ParseNumber(cellAt(row, idx)))
		}

		// Sincronização imediata do alias monetário: a coluna mapeada
		// (facturado/revenue/ingresos) alimenta os dois campos
		revenue := record.Facturado
		record.Revenue = revenue
		record.Facturado = revenue

		// ROAS nunca é confiado da origem no layout diário
		if record.Spend > 0 {
			record.ROAS = revenue / record.Spend
		} else {
			record.ROAS = 0
		}

		records = append(records, record)
	}

	return records
}

// buildMonthlyRecords monta um registro por coluna de mês do layout
// transposto, com data sintetizada no dia primeiro (YYYY-MM-01).
func buildMonthlyRecords(grid RawGrid, headerRow int, year int) []*domain.DailyRecord {
	header := grid[headerRow]

	// Coluna do mês -> data sintetizada
	columnDates := make(map[int]string)
	for idx, cell := range header {
		if month := monthOfCell(cell); month > 0 {
			columnDates[idx] = fmt.Sprintf("%04d-%02d-01", year, month)
		}
	}

	recordsByDate := make(map[string]*domain.DailyRecord, len(columnDates))
	for _, date := range columnDates {
		recordsByDate[date] = domain.NewDailyRecord(date)
	}

	// Distribui cada linha de métrica reconhecida pelas colunas de mês
	for _, row := range grid[headerRow+1:] {
		field, ok := MatchRowLabel(row)
		if !ok {
			continue
		}

		for colIdx, date := range columnDates {
			recordsByDate[date].Set(field, utils.ParseNumber(cellAt(row, colIdx)))
		}
	}

	records := make([]*domain.DailyRecord, 0, len(recordsByDate))
	for _, record := range recordsByDate {
		applyMonthlyFallbacks(record)
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})

	return records
}

// applyMonthlyFallbacks aplica os aliases e preenchimentos do layout
// mensal: ventas supre revenue ausente, facturado espelha revenue, e
// roas/cpl são derivados apenas quando a origem não trouxe valor.
func applyMonthlyFallbacks(record *domain.DailyRecord) {
	if record.Revenue == 0 && record.Ventas != 0 {
		record.Revenue = record.Ventas
	}
	record.Facturado = record.Revenue

	if record.ROAS == 0 && record.Spend > 0 && record.Revenue > 0 {
		record.ROAS = record.Revenue / record.Spend
	}
	if record.CPL == 0 && record.Spend > 0 && record.Leads > 0 {
		record.CPL = record.Spend / record.Leads
	}
}
