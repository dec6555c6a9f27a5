package importing

import (
	"strings"

	"github.com/vfg2006/funnel-metrics-api/internal/domain"
)

// fieldKeywords associa um FieldKey às palavras-chave que identificam sua
// coluna no cabeçalho diário. A lista é ordenada e avaliada em ordem fixa,
// com semântica primeiro-match-vence, para manter o despacho auditável.
type fieldKeywords struct {
	field    domain.FieldKey
	keywords []string
}

// columnKeywords cobre as variações reais de cabeçalho observadas nos
// exports ("Inversión ($)", "Fecha de Reporte", "AGENDAS AUT", etc.):
// o match é por substring sobre a célula normalizada, não por igualdade.
var columnKeywords = []fieldKeywords{
	{domain.FieldDate, []string{"date", "fecha", "dia"}},
	{domain.FieldSpend, []string{"spend", "inversion", "gasto", "importe"}},
	{domain.FieldImpressions, []string{"impressions", "impresiones"}},
	{domain.FieldReach, []string{"reach", "alcance"}},
	{domain.FieldCPM, []string{"cpm"}},
	{domain.FieldClicks, []string{"clicks", "clics"}},
	{domain.FieldCTR, []string{"ctr"}},
	{domain.FieldCPC, []string{"cpc"}},
	{domain.FieldVisits, []string{"visits", "visitas"}},
	{domain.FieldLPCRate, []string{"lpc", "linkclick"}},
	{domain.FieldLeads, []string{"leads", "clientes", "potenciales"}},
	{domain.FieldLPRate, []string{"lp%", "lprate"}},
	{domain.FieldCPL, []string{"cpl"}},
	{domain.FieldAgendasAut, []string{"agendasaut", "aut"}},
	{domain.FieldAgendasSet, []string{"agendasset", "set"}},
	{domain.FieldAgendasTotal, []string{"agendastotal", "total"}},
	{domain.FieldAgCualificado, []string{"agcualificado", "cualificados"}},
	{domain.FieldCPLCualificado, []string{"cplcualificado"}},
	{domain.FieldVCRRate, []string{"vcr%"}},
	{domain.FieldVCRCash, []string{"vcr$"}},
	{domain.FieldLlamadas, []string{"llamadas"}},
	{domain.FieldAsistencias, []string{"asistencias"}},
	{domain.FieldCancelaciones, []string{"cancelaciones"}},
	{domain.FieldAsisRate, []string{"asis%", "asistencia%"}},
	{domain.FieldAsisCash, []string{"asis$"}},
	{domain.FieldCierres, []string{"cierres"}},
	{domain.FieldCCRate, []string{"cc%", "closing"}},
	{domain.FieldLCRate, []string{"lc%"}},
	{domain.FieldVentas, []string{"ventas"}},
	{domain.FieldFacturado, []string{"facturado", "revenue", "ingresos"}},
	{domain.FieldCPA, []string{"cpa"}},
	{domain.FieldBeneficio, []string{"beneficio", "profit"}},
	{domain.FieldBFacturado, []string{"bfacturado"}},
	{domain.FieldROI, []string{"roi"}},
	{domain.FieldRRoi, []string{"rroi"}},
	{domain.FieldCRoi, []string{"croi"}},
}

// labelKeyword associa um rótulo de linha do layout mensal transposto ao
// FieldKey correspondente. Lista ordenada, primeiro-match-vence.
type labelKeyword struct {
	keyword string
	field   domain.FieldKey
}

var rowLabelKeywords = []labelKeyword{
	{"inversión", domain.FieldSpend},
	{"inversion", domain.FieldSpend},
	{"clicks", domain.FieldClicks},
	{"leads", domain.FieldLeads},
	{"agendas totales", domain.FieldAgendasTotal},
	{"agendas cualificadas", domain.FieldAgCualificado},
	{"asistencias totales", domain.FieldAsistencias},
	{"cierres", domain.FieldCierres},
	{"ventas", domain.FieldVentas}, // "$Ventas"
	{"recolección", domain.FieldRevenue},
	{"recoleccion", domain.FieldRevenue},
	{"ingresos", domain.FieldRevenue},
	{"cpl", domain.FieldCPL},
	{"cpa", domain.FieldCPA},
	{"roas", domain.FieldROAS}, // "Efectivo ROAS"
}

// MapColumns localiza, para cada FieldKey, a primeira célula do cabeçalho
// cujo texto normalizado contém alguma de suas palavras-chave. Campos não
// encontrados recebem o sentinela ColumnNotFound. Data e investimento são
// obrigatórios; a ausência de qualquer um aborta com MissingColumnError.
func MapColumns(headerRow []string) (domain.ColumnMap, error) {
	normalized := make([]string, len(headerRow))
	for i, cell := range headerRow {
		normalized[i] = normalizeHeaderCell(cell)
	}

	columns := make(domain.ColumnMap, len(columnKeywords))
	for _, fk := range columnKeywords {
		columns[fk.field] = findColumn(normalized, fk.keywords)
	}

	var missing []string
	if columns.Index(domain.FieldDate) == domain.ColumnNotFound {
		missing = append(missing, string(domain.FieldDate))
	}
	if columns.Index(domain.FieldSpend) == domain.ColumnNotFound {
		missing = append(missing, string(domain.FieldSpend))
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Missing: missing, Headers: headerRow}
	}

	return columns, nil
}

func findColumn(normalizedHeaders []string, keywords []string) int {
	simple := make([]string, len(keywords))
	for i, kw := range keywords {
		simple[i] = normalizeHeaderCell(kw)
	}

	for idx, header := range normalizedHeaders {
		for _, kw := range simple {
			if kw != "" && strings.Contains(header, kw) {
				return idx
			}
		}
	}
	return domain.ColumnNotFound
}

// MatchRowLabel identifica a métrica de uma linha de dados do layout
// mensal pelo rótulo nas primeiras células. Retorna false quando a linha
// não corresponde a nenhuma métrica conhecida e deve ser ignorada.
func MatchRowLabel(row []string) (domain.FieldKey, bool) {
	label := extractRowLabel(row)
	if label == "" {
		return "", false
	}

	for _, lk := range rowLabelKeywords {
		if strings.Contains(label, lk.keyword) {
			return lk.field, true
		}
	}

	return "", false
}

// extractRowLabel varre as três primeiras células em busca do primeiro
// texto substancial (mais de um caractere) que não seja puramente
// numérico e o normaliza para comparação.
func extractRowLabel(row []string) string {
	limit := len(row)
	if limit > 3 {
		limit = 3
	}

	label := ""
	for c := 0; c < limit; c++ {
		cell := strings.TrimSpace(row[c])
		if len(cell) > 1 {
			label = normalizeRowLabel(cell)
			if len(label) > 2 {
				break
			}
		}
	}

	return label
}

// normalizeRowLabel reduz o rótulo a minúsculas mantendo apenas letras
// (inclusive acentuadas), cifrão, parênteses e espaços; dígitos e demais
// pontuações são descartados.
func normalizeRowLabel(cell string) string {
	lower := strings.ToLower(cell)

	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r == 'á' || r == 'é' || r == 'í' || r == 'ó' || r == 'ú' || r == 'ñ':
			b.WriteRune(r)
		case r == '$' || r == '(' || r == ')' || r == ' ':
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}
