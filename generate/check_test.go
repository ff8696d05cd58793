package generate

import (
	"slices"
	"testing"

	"animseq/css"
)

func TestCheckStylesheet(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErr    bool
		sequence   int
		durations  int
		missing    []string
		other      int
		duplicates []string
	}{
		{
			name:    "no utilities",
			input:   `.btn { color: red }`,
			wantErr: true,
		},
		{
			name:    "empty",
			input:   ``,
			wantErr: true,
		},
		{
			name: "durations only",
			input: `.animation-duration-75 { animation-duration: 75ms }
.animation-duration-DEFAULT { }`,
			durations: 2,
		},
		{
			name: "sequence without keyframes",
			input: `.animate-spin { animation-name: spin; animation-delay: 0s }
.animate-spin-2 { animation-name: spin; animation-delay: 1s }`,
			sequence: 2,
			missing:  []string{"spin"},
		},
		{
			name: "sequence with keyframes",
			input: `@keyframes spin { to { transform: rotate(360deg) } }
.animate-spin { animation-name: spin }`,
			sequence: 1,
		},
		{
			name: "duplicates and other rules",
			input: `@keyframes spin { to { transform: rotate(360deg) } }
.btn { color: red }
.animate-spin, .animation-duration-75 { animation-name: spin; animation-duration: 75ms }
.animate-spin { animation-name: spin; animation-delay: 1s }
.card { padding: 0 }`,
			sequence:   2,
			durations:  1,
			other:      2,
			duplicates: []string{".animate-spin"},
		},
		{
			name:    "sequence without name",
			input:   `.animate-spin { animation-delay: 0s }`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := css.NewParser(nil).Parse([]byte(tt.input))
			res, err := checkStylesheet(sheet)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("checkStylesheet() error = %v", err)
			}
			if res.sequence != tt.sequence || res.durations != tt.durations {
				t.Errorf("got sequence=%d durations=%d, want %d and %d", res.sequence, res.durations, tt.sequence, tt.durations)
			}
			if res.other != tt.other {
				t.Errorf("other = %d, want %d", res.other, tt.other)
			}
			if !slices.Equal(res.duplicates, tt.duplicates) {
				t.Errorf("duplicates = %v, want %v", res.duplicates, tt.duplicates)
			}
			if !slices.Equal(res.missing, tt.missing) {
				t.Errorf("missing = %v, want %v", res.missing, tt.missing)
			}
		})
	}
}
