package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// PrintTable печатает таблицу с выравниванием по левому краю и разделителем из дефисов
func PrintTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if n := utf8.RuneCountInString(row[i]); n > widths[i] {
				widths[i] = n
			}
		}
	}

	printRow(w, widths, headers)

	dashes := make([]string, len(widths))
	for i, width := range widths {
		dashes[i] = strings.Repeat("-", width)
	}
	fmt.Fprintln(w, strings.Join(dashes, "  "))

	for _, row := range rows {
		printRow(w, widths, row)
	}
}

func printRow(w io.Writer, widths []int, cells []string) {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = cell + strings.Repeat(" ", width-utf8.RuneCountInString(cell))
	}
	fmt.Fprintln(w, strings.Join(padded, "  "))
}
