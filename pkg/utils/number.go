package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// dotGroupedPattern reconhece valores com ponto como separador de milhar
// (34.697, 1.234.567): grupos de exatamente três dígitos após cada ponto.
var dotGroupedPattern = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseNumber converte um token bruto de planilha em número.
// Aceita símbolos de moeda, percentuais e separadores de milhar/decimal
// tanto no formato europeu (1.234,56) quanto no americano (1,234.56).
// Entrada vazia ou não numérica resulta em 0; nunca retorna erro.
func ParseNumber(raw string) float64 {
	if raw == "" {
		return 0
	}

	// Remove tudo que não for dígito, ponto, vírgula ou sinal negativo
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}

	clean := b.String()
	if clean == "" {
		return 0
	}

	hasDot := strings.Contains(clean, ".")
	hasComma := strings.Contains(clean, ",")

	switch {
	case hasDot && hasComma:
		// O separador que aparece por último é o decimal
		if strings.LastIndex(clean, ",") > strings.LastIndex(clean, ".") {
			// Formato europeu: 1.234,56
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.Replace(clean, ",", ".", 1)
		} else {
			// Formato americano: 1,234.56
			clean = strings.ReplaceAll(clean, ",", "")
		}
	case hasComma:
		// Apenas vírgula: tratar como decimal (padrão das planilhas em espanhol).
		// Nota: "1,200" no formato americano vira 1.2; limitação aceita da heurística.
		clean = strings.Replace(clean, ",", ".", 1)
	case hasDot:
		// Apenas ponto: "34.697" nas origens em espanhol é milhar, não
		// decimal. Só o padrão de grupos de três dígitos é desambiguado;
		// "0.50" e "1234.697" seguem como decimal.
		if dotGroupedPattern.MatchString(clean) {
			clean = strings.ReplaceAll(clean, ".", "")
		}
	}

	num, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}

	return num
}
