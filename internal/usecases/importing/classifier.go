package importing

import (
	"regexp"
	"strconv"
	"strings"
)

// LayoutKind identifica o formato detectado na grade.
type LayoutKind string

const (
	// LayoutDaily: uma linha por data, uma coluna por métrica.
	LayoutDaily LayoutKind = "daily"
	// LayoutMonthly: transposto, uma coluna por mês, uma linha por métrica.
	LayoutMonthly LayoutKind = "monthly"
	// LayoutNone: nenhum padrão reconhecido.
	LayoutNone LayoutKind = "none"
)

// layoutScanWindow limita a varredura de detecção às primeiras N linhas.
const layoutScanWindow = 10

// Classification é o resultado da detecção de layout.
type Classification struct {
	Kind      LayoutKind
	HeaderRow int
}

var (
	dateKeywords  = []string{"date", "fecha", "dia"}
	spendKeywords = []string{"spend", "inversion", "gasto", "importe"}

	yearPattern = regexp.MustCompile(`20\d{2}`)
)

// monthNumbers mapeia nomes de meses em espanhol (com as grafias erradas
// toleradas vindas das planilhas reais) para o número do mês.
var monthNumbers = map[string]int{
	"enero":      1,
	"febrero":    2,
	"marzo":      3,
	"abril":      4,
	"mayo":       5,
	"junio":      6,
	"julio":      7,
	"agosto":     8,
	"septiembre": 9,
	"september":  9,
	"octubre":    10,
	"noviembre":  11,
	"diciembre":  12,
	"deciembre":  12,
}

// Classify inspeciona as primeiras linhas da grade e decide o layout.
// O formato diário tem prioridade: a primeira linha com uma célula do
// grupo "data" E uma do grupo "investimento" é o cabeçalho. Na ausência,
// procura o cabeçalho mensal transposto: uma linha com pelo menos três
// células iguais a nomes de meses em espanhol.
func Classify(grid RawGrid) Classification {
	limit := len(grid)
	if limit > layoutScanWindow {
		limit = layoutScanWindow
	}

	for i := 0; i < limit; i++ {
		if rowMatchesDailyHeader(grid[i]) {
			return Classification{Kind: LayoutDaily, HeaderRow: i}
		}
	}

	for i := 0; i < limit; i++ {
		if countMonthCells(grid[i]) >= 3 {
			return Classification{Kind: LayoutMonthly, HeaderRow: i}
		}
	}

	return Classification{Kind: LayoutNone, HeaderRow: ColumnNotFoundRow}
}

// ColumnNotFoundRow é o sentinela de linha de cabeçalho não localizada.
const ColumnNotFoundRow = -1

func rowMatchesDailyHeader(row []string) bool {
	hasDate := false
	hasSpend := false

	for _, cell := range row {
		normalized := normalizeHeaderCell(cell)
		if !hasDate && containsAny(normalized, dateKeywords) {
			hasDate = true
		}
		if !hasSpend && containsAny(normalized, spendKeywords) {
			hasSpend = true
		}
		if hasDate && hasSpend {
			return true
		}
	}

	return false
}

func countMonthCells(row []string) int {
	count := 0
	for _, cell := range row {
		if _, ok := monthNumbers[strings.ToLower(strings.TrimSpace(cell))]; ok {
			count++
		}
	}
	return count
}

// monthOfCell retorna o número do mês de uma célula de cabeçalho mensal,
// ou 0 quando a célula não é um nome de mês.
func monthOfCell(cell string) int {
	return monthNumbers[strings.ToLower(strings.TrimSpace(cell))]
}

// inferYear procura um token de ano (20xx) no texto concatenado do
// cabeçalho mensal (ex.: "YTD 2024"). Sem token, vale o ano de fallback
// configurado.
func inferYear(headerRow []string, fallback int) int {
	joined := strings.Join(headerRow, " ")
	if match := yearPattern.FindString(joined); match != "" {
		year, err := strconv.Atoi(match)
		if err == nil {
			return year
		}
	}
	return fallback
}

// headerReplacer remove espaços e separadores visuais e dobra as vogais
// acentuadas: as palavras-chave são todas sem acento, e os cabeçalhos
// reais chegam ora com acento ("Inversión"), ora sem.
var headerReplacer = strings.NewReplacer(
	" ", "", "\t", "", "_", "", ".", "", "-", "",
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
)

// normalizeHeaderCell prepara uma célula de cabeçalho para comparação:
// minúsculas, sem espaços nem separadores visuais, acentos dobrados.
func normalizeHeaderCell(cell string) string {
	return headerReplacer.Replace(strings.ToLower(strings.TrimSpace(cell)))
}

func containsAny(normalized string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}
