package utils

import (
	"fmt"
	"strings"
	"time"
)

// NormalizeDateCell normaliza uma célula de data de planilha para o formato
// ISO YYYY-MM-DD. Aceita o próprio formato ISO e D/M/YYYY ou D/M/YY
// (ano de dois dígitos é promovido com o prefixo "20").
// Retorna false quando a célula não representa uma data de calendário válida.
func NormalizeDateCell(raw string) (string, bool) {
	dateStr := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), `"`))
	if dateStr == "" {
		return "", false
	}

	if parts := strings.Split(dateStr, "/"); len(parts) == 3 && isDayMonthYear(parts) {
		day := parts[0]
		month := parts[1]
		year := parts[2]

		if len(day) == 1 {
			day = "0" + day
		}
		if len(month) == 1 {
			month = "0" + month
		}
		if len(year) == 2 {
			year = "20" + year
		}

		dateStr = fmt.Sprintf("%s-%s-%s", year, month, day)
	}

	// time.Parse rejeita datas impossíveis como 2025-02-31
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return "", false
	}

	return dateStr, true
}

func isDayMonthYear(parts []string) bool {
	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) < 1 || len(parts[1]) > 2 {
		return false
	}

	if len(parts[2]) != 2 && len(parts[2]) != 4 {
		return false
	}

	for _, p := range parts {
		for _, r := range p {
			if r < '0' || r > '9' {
				return false
			}
		}
	}

	return true
}
