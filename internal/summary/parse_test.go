package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSummary(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Summary
	}{
		{
			name: "summary and bullets",
			raw:  "  Team agreed on the Q3 plan.\n\n- Send the deck\n* Book the room\n  - Update the roadmap\n- Extra item\n",
			want: Summary{
				Summary: "Team agreed on the Q3 plan.",
				Actions: []string{"Send the deck", "Book the room", "Update the roadmap"},
			},
		},
		{
			name: "summary only",
			raw:  "Just one line",
			want: Summary{Summary: "Just one line", Actions: []string{}},
		},
		{
			name: "blank output",
			raw:  " \n\t\n",
			want: Summary{Summary: "", Actions: []string{}},
		},
		{
			name: "crlf and numbered lines keep numbers",
			raw:  "Summary line\r\n1. first\r\n\t-*second",
			want: Summary{Summary: "Summary line", Actions: []string{"1. first", "second"}},
		},
		{
			name: "bare carriage returns",
			raw:  "Summary\r- a\r- b",
			want: Summary{Summary: "Summary", Actions: []string{"a", "b"}},
		},
		{
			name: "unicode line and paragraph separators",
			raw:  "Summary\u2028- a\u2029* b\u0085c",
			want: Summary{Summary: "Summary", Actions: []string{"a", "b", "c"}},
		},
		{
			name: "vertical tab form feed and group separators",
			raw:  "Summary\v- a\f- b\x1c\x1d\x1e- c",
			want: Summary{Summary: "Summary", Actions: []string{"a", "b", "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSummary(tt.raw))
		})
	}
}
