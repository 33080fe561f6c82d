package textutil

import (
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple words",
			input: "Hello World",
			want:  []string{"hello", "world"},
		},
		{
			name:  "filters single characters",
			input: "a I to the fox",
			want:  []string{"to", "the", "fox"},
		},
		{
			name:  "handles punctuation",
			input: "Hello, World! How are you?",
			want:  []string{"hello", "world", "how", "are", "you"},
		},
		{
			name:  "handles numbers and underscores",
			input: "test123 456test snake_case",
			want:  []string{"test123", "456test", "snake_case"},
		},
		{
			name:  "folds unicode case",
			input: "Straße ÉCOLE",
			want:  []string{"strasse", "école"},
		},
		{
			name:  "normalizes compatibility forms",
			input: "ＡＢＣ ﬁle",
			want:  []string{"abc", "file"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "only punctuation",
			input: "... !!! ???",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
