package dotcards

// patterns lays out each card like a die face. 'o' marks a dot.
var patterns = [NumCards + 1][]string{
	1:  {"...", ".o.", "..."},
	2:  {"o..", "...", "..o"},
	3:  {"o..", ".o.", "..o"},
	4:  {"o.o", "...", "o.o"},
	5:  {"o.o", ".o.", "o.o"},
	6:  {"o.o", "o.o", "o.o"},
	7:  {"o.o", "ooo", "o.o"},
	8:  {"ooo", "o.o", "ooo"},
	9:  {"ooo", "ooo", "ooo"},
	10: {"ooooo", "ooooo"},
}

// Pattern returns the dot layout for card, row by row.
func Pattern(card int) []string {
	if !Valid(card) {
		return nil
	}
	return patterns[card]
}

// Dots counts the dots in a layout.
func Dots(rows []string) int {
	n := 0
	for _, row := range rows {
		for _, r := range row {
			if r == 'o' {
				n++
			}
		}
	}
	return n
}
