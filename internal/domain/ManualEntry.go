package domain

// ManualEntry carrega os contadores de funil digitados manualmente para
// uma data. Campos são ponteiros para distinguir "não informado" (campo
// existente do registro é preservado) de "informado como zero" (campo é
// sobrescrito).
type ManualEntry struct {
	Spend         *float64 `json:"spend,omitempty"`
	Visits        *float64 `json:"visits,omitempty"`
	Leads         *float64 `json:"leads,omitempty"`
	AgendasAut    *float64 `json:"agendasAut,omitempty"`
	AgendasSet    *float64 `json:"agendasSet,omitempty"`
	AgCualificado *float64 `json:"agCualificado,omitempty"`
	Llamadas      *float64 `json:"llamadas,omitempty"`
	Asistencias   *float64 `json:"asistencias,omitempty"`
	Cancelaciones *float64 `json:"cancelaciones,omitempty"`
	Cierres       *float64 `json:"cierres,omitempty"`
	Ventas        *float64 `json:"ventas,omitempty"`
	Facturado     *float64 `json:"facturado,omitempty"`
	Revenue       *float64 `json:"revenue,omitempty"`
}

// Empty indica que nenhum campo foi informado.
func (e *ManualEntry) Empty() bool {
	if e == nil {
		return true
	}

	fields := []*float64{
		e.Spend, e.Visits, e.Leads,
		e.AgendasAut, e.AgendasSet, e.AgCualificado,
		e.Llamadas, e.Asistencias, e.Cancelaciones,
		e.Cierres, e.Ventas, e.Facturado, e.Revenue,
	}
	for _, field := range fields {
		if field != nil {
			return false
		}
	}

	return true
}

// ApplyTo sobrepõe no registro apenas os campos informados (merge raso).
// Não recalcula nada: o chamador deve invocar Recompute em seguida.
func (e *ManualEntry) ApplyTo(record *DailyRecord) {
	if e == nil || record == nil {
		return
	}

	apply := func(field *float64, target *float64) {
		if field != nil {
			*target = *field
		}
	}

	apply(e.Spend, &record.Spend)
	apply(e.Visits, &record.Visits)
	apply(e.Leads, &record.Leads)
	apply(e.AgendasAut, &record.AgendasAut)
	apply(e.AgendasSet, &record.AgendasSet)
	apply(e.AgCualificado, &record.AgCualificado)
	apply(e.Llamadas, &record.Llamadas)
	apply(e.Asistencias, &record.Asistencias)
	apply(e.Cancelaciones, &record.Cancelaciones)
	apply(e.Cierres, &record.Cierres)
	apply(e.Ventas, &record.Ventas)
	apply(e.Facturado, &record.Facturado)
	apply(e.Revenue, &record.Revenue)
}
