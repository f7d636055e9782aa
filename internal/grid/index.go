package grid

import "strings"

// indexSeparator joins column values inside a search index entry. The query
// tokenizer splits on whitespace, so a NUL byte can never appear in a token
// and column boundaries are not matchable across cells.
const indexSeparator = "\x00"

// buildIndex computes one lowercased searchable blob per row by joining the
// stringified value of each listed column. It runs once per load, never per
// keystroke; entry i derives solely from row i and the column list, so
// len(index) == len(rows) always holds.
func buildIndex(rows []Row, columns []string) []string {
	entries := make([]string, len(rows))
	var b strings.Builder
	for i, row := range rows {
		b.Reset()
		for j, col := range columns {
			if j > 0 {
				b.WriteString(indexSeparator)
			}
			b.WriteString(row.Cell(col))
		}
		entries[i] = strings.ToLower(b.String())
	}
	return entries
}
