package importing

import "strings"

// RawGrid é a grade retangular (por convenção, não por garantia) de
// células extraída do texto bruto. Linhas podem ter menos células que o
// cabeçalho; células ausentes valem string vazia.
type RawGrid [][]string

// TokenizeCSV divide um export CSV em grade de células. Apenas vírgula
// separa campos.
func TokenizeCSV(text string) RawGrid {
	return tokenize(text, func(r rune) bool { return r == ',' })
}

// TokenizePasted divide texto colado de planilha em grade de células.
// Tanto tab (Excel/Sheets) quanto vírgula separam campos.
func TokenizePasted(text string) RawGrid {
	return tokenize(text, func(r rune) bool { return r == ',' || r == '\t' })
}

// tokenize é um scanner caractere a caractere ciente de aspas: separadores
// e quebras de linha dentro de células entre aspas pertencem ao valor, e
// aspas duplicadas ("") dentro de aspas são o literal de aspas.
func tokenize(text string, isSeparator func(rune) bool) RawGrid {
	// BOM no início do export é descartado
	text = strings.TrimPrefix(text, "\uFEFF")

	var (
		grid        RawGrid
		currentRow  []string
		currentCell strings.Builder
		inQuotes    bool
	)

	flushCell := func() {
		currentRow = append(currentRow, currentCell.String())
		currentCell.Reset()
	}

	flushRow := func() {
		flushCell()
		// Linhas separadoras em branco dos exports não entram na grade
		if rowHasContent(currentRow) {
			grid = append(grid, currentRow)
		}
		currentRow = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				currentCell.WriteRune('"')
				i++ // consome a aspa escapada
			} else {
				inQuotes = !inQuotes
			}
		case isSeparator(r) && !inQuotes:
			flushCell()
		case (r == '\n' || r == '\r') && !inQuotes:
			if r == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			flushRow()
		default:
			currentCell.WriteRune(r)
		}
	}

	if currentCell.Len() > 0 || len(currentRow) > 0 {
		flushRow()
	}

	return grid
}

func rowHasContent(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}

// cellAt lê uma célula com tolerância a linhas mais curtas que o cabeçalho.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
