package importing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-metrics-api/internal/config"
	"github.com/vfg2006/funnel-metrics-api/internal/domain"
)

func newTestService(fallbackYear int) Importer {
	return NewService(&config.Config{
		Sheets: config.Sheets{FallbackYear: fallbackYear},
	})
}

func TestParseCSVDailyLayout(t *testing.T) {
	input := "Fecha,Inversión,Leads\n" +
		"01/12/2025,$34.697,0\n" +
		"02/12/2025,\"35.845,00\",3\n"

	records, err := newTestService(2025).ParseCSV(input)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "2025-12-01", records[0].Date)
	assert.Equal(t, 34697.0, records[0].Spend)
	assert.Equal(t, 0.0, records[0].Leads)

	assert.Equal(t, "2025-12-02", records[1].Date)
	assert.Equal(t, 35845.0, records[1].Spend)
	assert.Equal(t, 3.0, records[1].Leads)
}

func TestParseCSVDailyLayoutAfterTitleRows(t *testing.T) {
	input := "Reporte de Campañas\n" +
		"\n" +
		"Fecha,Inversión,Leads,Facturado\n" +
		"05/01/2025,1000,10,5000\n" +
		"teléfono averiado,0,0,0\n" +
		"06/01/2025,2000,20,8000\n"

	records, err := newTestService(2025).ParseCSV(input)
	require.NoError(t, err)

	// A linha sem data válida é descartada sem abortar a importação
	require.Len(t, records, 2)

	assert.Equal(t, "2025-01-05", records[0].Date)
	assert.Equal(t, 5000.0, records[0].Facturado)
	assert.Equal(t, 5000.0, records[0].Revenue)
	assert.Equal(t, 5.0, records[0].ROAS)

	assert.Equal(t, "2025-01-06", records[1].Date)
	assert.Equal(t, 4.0, records[1].ROAS)
}

func TestParsePastedDailyLayoutWithTabs(t *testing.T) {
	input := "Fecha\tInversión\tLeads\n" +
		"01/12/2025\t$34.697\t0\n"

	records, err := newTestService(2025).ParsePasted(input)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "2025-12-01", records[0].Date)
	assert.Equal(t, 34697.0, records[0].Spend)
}

func TestParseCSVMonthlyLayout(t *testing.T) {
	input := "Mes,Enero,Febrero,Marzo\n" +
		"Inversión,100,200,300\n" +
		"Leads,10,20,30\n" +
		"Ventas,500,1000,1500\n"

	records, err := newTestService(2025).ParseCSV(input)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "2025-01-01", records[0].Date)
	assert.Equal(t, "2025-02-01", records[1].Date)
	assert.Equal(t, "2025-03-01", records[2].Date)

	assert.Equal(t, 100.0, records[0].Spend)
	assert.Equal(t, 200.0, records[1].Spend)
	assert.Equal(t, 300.0, records[2].Spend)

	assert.Equal(t, 10.0, records[0].Leads)
	assert.Equal(t, 0.0, records[0].Clicks)
	assert.Equal(t, 0.0, records[0].Impressions)

	// Ventas supre revenue ausente e facturado espelha revenue
	assert.Equal(t, 500.0, records[0].Revenue)
	assert.Equal(t, 500.0, records[0].Facturado)
	assert.Equal(t, 5.0, records[0].ROAS)
	assert.Equal(t, 10.0, records[0].CPL)
}

func TestParseCSVMonthlyLayoutYearFromHeader(t *testing.T) {
	input := "Resumen 2024,Enero,Febrero,Marzo\n" +
		"Inversión,100,200,300\n"

	records, err := newTestService(2025).ParseCSV(input)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "2024-01-01", records[0].Date)
}

func TestParseCSVEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "String vazia", input: ""},
		{name: "Somente quebras de linha", input: "\n\n\n"},
		{name: "Somente separadores", input: ",,,\n,,,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := newTestService(2025).ParseCSV(tt.input)
			assert.Nil(t, records)
			assert.ErrorIs(t, err, ErrEmptyInput)
		})
	}
}

func TestParseCSVUnrecognizedLayout(t *testing.T) {
	input := "Notas internas,Comentarios\n" +
		"sin datos,pendiente\n"

	records, err := newTestService(2025).ParseCSV(input)
	assert.Nil(t, records)

	var layoutErr *UnrecognizedLayoutError
	require.True(t, errors.As(err, &layoutErr))
	assert.Equal(t, []string{"Notas internas", "Comentarios"}, layoutErr.FirstRow)
	assert.NotEmpty(t, layoutErr.MissingGroups)
}

func TestParseCSVKeywordsSplitAcrossRows(t *testing.T) {
	// Fecha e inversión aparecem na janela, mas nunca na mesma linha de
	// cabeçalho; tampouco há linha de meses
	input := "Fecha,Notas\n" +
		"01/12/2025,ok\n" +
		"Inversión,1000\n"

	records, err := newTestService(2025).ParseCSV(input)
	assert.Nil(t, records)

	var layoutErr *UnrecognizedLayoutError
	require.True(t, errors.As(err, &layoutErr))
}

func TestParseCSVDailyDoesNotTrustSourceROAS(t *testing.T) {
	input := "Fecha,Inversión,Facturado,ROAS\n" +
		"01/12/2025,1000,3000,99\n"

	records, err := newTestService(2025).ParseCSV(input)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 3.0, records[0].ROAS)
}

func TestParseCSVDailyRevenueAliasSync(t *testing.T) {
	input := "Fecha,Inversión,Ingresos\n" +
		"01/12/2025,1000,4500\n"

	records, err := newTestService(2025).ParseCSV(input)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 4500.0, records[0].Facturado)
	assert.Equal(t, 4500.0, records[0].Revenue)
}

func TestParseCSVDailyRecordsSurviveRecompute(t *testing.T) {
	input := "Fecha,Inversión,Leads,Visitas\n" +
		"01/12/2025,1000,10,100\n"

	records, err := newTestService(2025).ParseCSV(input)
	require.NoError(t, err)
	require.Len(t, records, 1)

	domain.Recompute(records[0])
	assert.Equal(t, 0.0, records[0].ROAS)
	assert.Equal(t, 1000.0, records[0].Spend)
	assert.Equal(t, -1000.0, records[0].Beneficio)
}
