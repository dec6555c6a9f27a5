package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecompute(t *testing.T) {
	t.Run("Dia completo de funil manual", func(t *testing.T) {
		record := NewDailyRecord("2025-12-20")
		record.Spend = 10000
		record.Leads = 0
		record.AgendasAut = 2
		record.AgendasSet = 1
		record.Asistencias = 2
		record.Cierres = 1
		record.Ventas = 1
		record.Facturado = 50000

		Recompute(record)

		assert.Equal(t, 3.0, record.AgendasTotal)
		assert.InDelta(t, 66.6666, record.AsisRate, 0.001)
		assert.Equal(t, 5000.0, record.AsisCash)
		assert.Equal(t, 50.0, record.CCRate)
		assert.Equal(t, 0.0, record.LCRate) // leads é zero
		assert.Equal(t, 10000.0, record.CPA)
		assert.Equal(t, 50000.0, record.Revenue)
		assert.Equal(t, 50000.0, record.Facturado)
		assert.Equal(t, 40000.0, record.Beneficio)
		assert.Equal(t, 40000.0, record.BFacturado)
		assert.Equal(t, 5.0, record.ROAS)
		assert.Equal(t, 400.0, record.ROI)
		assert.Equal(t, 4.0, record.CRoi)
	})

	t.Run("Spend zero nunca produz NaN ou infinito", func(t *testing.T) {
		record := NewDailyRecord("2025-12-21")
		record.Leads = 5
		record.Asistencias = 3
		record.AgCualificado = 2
		record.Ventas = 1

		Recompute(record)

		assert.Equal(t, 0.0, record.CPLCualificado)
		assert.Equal(t, 0.0, record.AsisCash)
		assert.Equal(t, 0.0, record.CPA)
		assert.Equal(t, 0.0, record.ROAS)
		assert.Equal(t, 0.0, record.ROI)
		assert.Equal(t, 0.0, record.CRoi)
	})

	t.Run("Recomputar duas vezes não altera o registro", func(t *testing.T) {
		record := NewDailyRecord("2025-12-22")
		record.Spend = 1234.56
		record.Leads = 7
		record.AgendasAut = 3
		record.AgendasSet = 2
		record.Asistencias = 4
		record.Cierres = 2
		record.Ventas = 2
		record.Revenue = 9876.54

		Recompute(record)
		first := *record
		Recompute(record)

		assert.Equal(t, first, *record)
	})

	t.Run("Facturado tem prioridade sobre Revenue", func(t *testing.T) {
		record := NewDailyRecord("2025-12-23")
		record.Spend = 100
		record.Revenue = 500
		record.Facturado = 800

		Recompute(record)

		assert.Equal(t, 800.0, record.Revenue)
		assert.Equal(t, 800.0, record.Facturado)
	})

	t.Run("Revenue preenche Facturado ausente", func(t *testing.T) {
		record := NewDailyRecord("2025-12-24")
		record.Spend = 100
		record.Revenue = 500

		Recompute(record)

		assert.Equal(t, 500.0, record.Revenue)
		assert.Equal(t, 500.0, record.Facturado)
		assert.Equal(t, 400.0, record.Beneficio)
	})
}

func TestManualEntryApplyTo(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	record := NewDailyRecord("2025-12-25")
	record.Spend = 300
	record.Impressions = 1500
	record.Leads = 10

	entry := &ManualEntry{
		Leads:       f(12),
		Asistencias: f(4),
	}
	entry.ApplyTo(record)

	// Campos informados sobrescrevem; os demais são preservados
	assert.Equal(t, 12.0, record.Leads)
	assert.Equal(t, 4.0, record.Asistencias)
	assert.Equal(t, 300.0, record.Spend)
	assert.Equal(t, 1500.0, record.Impressions)
}
