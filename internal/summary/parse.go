package summary

import "strings"

const maxActions = 3

// ParseSummary: первая непустая строка — резюме, следующие до трёх — задачи без маркеров списка.
func ParseSummary(raw string) Summary {
	out := strings.TrimSpace(raw)

	var lines []string
	for _, l := range strings.FieldsFunc(out, isLineBreak) {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	res := Summary{Summary: out, Actions: []string{}}
	if len(lines) == 0 {
		return res
	}

	res.Summary = lines[0]
	for _, l := range lines[1:min(len(lines), maxActions+1)] {
		res.Actions = append(res.Actions, strings.TrimLeft(l, "-* \t"))
	}
	return res
}

// isLineBreak — те же разделители, что у splitlines: \n \r \v \f, FS/GS/RS, NEL, LS, PS.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
