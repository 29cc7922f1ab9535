package verilog

import (
	"regexp"
	"strings"
	"unicode"
)

var reBitSelect = regexp.MustCompile(`(\w+)\[(\d+)\]`)

// Preprocess normalizes a structural netlist's source text into the
// identifier form the rest of the front-end expects, per spec.md §6:
// strip leading backslashes from escaped identifiers, fold bit-selects
// name[i] into name__i, and fold hierarchical dots a.b into a___b.
//
// This is original_source/boltsta/readers/verilog_reader.py's
// preprocess_verilog, generalized: Go's RE2 engine has no lookaround,
// so the dot fold runs as an explicit rune scan (replace '.' with
// '___' whenever both neighbors are word characters) instead of the
// original's lookbehind/lookahead regex — same result, different
// mechanism. Running the bracket fold first means a bracket
// immediately followed by a dotted field (name[i].field) already has
// its digit adjacent to the dot by the time the rune scan runs, so the
// combined name__i___field form falls out without a separate rule.
func Preprocess(content string) string {
	content = strings.ReplaceAll(content, "\\", "")
	content = reBitSelect.ReplaceAllString(content, "${1}__${2}")
	content = foldHierarchicalDots(content)

	return content
}

func foldHierarchicalDots(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	isWord := func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
	}

	for i, r := range runes {
		if r == '.' && i > 0 && i+1 < len(runes) && isWord(runes[i-1]) && isWord(runes[i+1]) {
			b.WriteString("___")
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
