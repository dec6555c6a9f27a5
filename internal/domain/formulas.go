package domain

// Recompute recalcula todas as métricas derivadas de um registro a partir
// dos valores base (replicando as fórmulas da planilha original). Toda
// divisão por zero resolve para 0, nunca NaN ou infinito.
//
// Valores base consumidos: Spend, Leads, Visits, AgendasAut, AgendasSet,
// AgCualificado, Asistencias, Cierres, Ventas e o faturamento
// (Facturado tem prioridade sobre Revenue quando ambos estão presentes).
// A função é idempotente: chamadas repetidas sem novas entradas produzem
// exatamente o mesmo registro.
func Recompute(record *DailyRecord) {
	if record == nil {
		return
	}

	spend := record.Spend
	leads := record.Leads

	// Agendas
	agendasTotal := record.AgendasAut + record.AgendasSet
	record.AgendasTotal = agendasTotal

	// Qualificação
	record.CPLCualificado = safeDivide(spend, record.AgCualificado)

	// Asistencias
	asistencias := record.Asistencias
	record.AsisRate = safeDivide(asistencias, agendasTotal) * 100
	record.AsisCash = safeDivide(spend, asistencias)

	// Cierres e ventas
	cierres := record.Cierres
	record.CCRate = safeDivide(cierres, asistencias) * 100
	record.LCRate = safeDivide(cierres, leads) * 100
	record.CPA = safeDivide(spend, record.Ventas)

	// Faturamento: Facturado tem prioridade; os dois aliases saem iguais
	revenue := record.Facturado
	if revenue == 0 {
		revenue = record.Revenue
	}
	record.Revenue = revenue
	record.Facturado = revenue

	beneficio := revenue - spend
	record.Beneficio = beneficio
	// Na planilha original Bfacturado é idêntico a Beneficio
	record.BFacturado = beneficio

	record.ROAS = safeDivide(revenue, spend)
	record.ROI = safeDivide(beneficio, spend) * 100
	record.CRoi = safeDivide(beneficio, spend)
}

func safeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
