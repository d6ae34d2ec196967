package session

import "testing"

func TestMatchesPromise(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		phrase string
		want   bool
	}{
		{
			name:   "exact match",
			text:   "All done. <promise>COMPLETE</promise>",
			phrase: "COMPLETE",
			want:   true,
		},
		{
			name:   "case insensitive phrase",
			text:   "Finished.\n\n<promise>done</promise>",
			phrase: "DONE",
			want:   true,
		},
		{
			name:   "case insensitive tags",
			text:   "<PROMISE>COMPLETE</PROMISE>",
			phrase: "COMPLETE",
			want:   true,
		},
		{
			name:   "whitespace inside tags",
			text:   "<promise>\n  COMPLETE\t</promise>",
			phrase: "COMPLETE",
			want:   true,
		},
		{
			name:   "marker embedded in surrounding text",
			text:   "progress notes...\n<promise>COMPLETE</promise>\ntrailing text",
			phrase: "COMPLETE",
			want:   true,
		},
		{
			name:   "phrase without tags",
			text:   "The task is COMPLETE now.",
			phrase: "COMPLETE",
			want:   false,
		},
		{
			name:   "wrong phrase inside tags",
			text:   "<promise>ALMOST</promise>",
			phrase: "COMPLETE",
			want:   false,
		},
		{
			name:   "regex metacharacters are literal",
			text:   "<promise>aXb</promise>",
			phrase: "a.b",
			want:   false,
		},
		{
			name:   "regex metacharacters match literally",
			text:   "<promise>a.b</promise>",
			phrase: "a.b",
			want:   true,
		},
		{
			name:   "unclosed tag",
			text:   "<promise>COMPLETE",
			phrase: "COMPLETE",
			want:   false,
		},
		{
			name:   "empty phrase never matches",
			text:   "<promise></promise>",
			phrase: "",
			want:   false,
		},
		{
			name:   "empty text",
			text:   "",
			phrase: "COMPLETE",
			want:   false,
		},
		{
			name:   "extra words inside tags",
			text:   "<promise>task COMPLETE now</promise>",
			phrase: "COMPLETE",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesPromise(tt.text, tt.phrase); got != tt.want {
				t.Errorf("MatchesPromise(%q, %q) = %v, want %v", tt.text, tt.phrase, got, tt.want)
			}
		})
	}
}
