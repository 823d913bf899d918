package text

import (
	"reflect"
	"testing"
)

var tokenizeTests = []struct {
	name string
	text string
	want []string
}{
	{
		name: "simple",
		text: "Hello world",
		want: []string{"hello", "world"},
	},
	{
		name: "punctuation dropped",
		text: "The quick (brown) fox, jumped!",
		want: []string{"the", "quick", "brown", "fox", "jumped"},
	},
	{
		name: "apostrophe kept",
		text: "Don't stop",
		want: []string{"don't", "stop"},
	},
	{
		name: "accents stripped",
		text: "Café résumé",
		want: []string{"cafe", "resume"},
	},
	{
		name: "tabs and newlines",
		text: "one\ttwo\nthree",
		want: []string{"one", "two", "three"},
	},
	{
		// strings.Fields returns an empty non-nil slice for empty input.
		name: "empty",
		text: "",
		want: []string{},
	},
}

func TestTokenize(t *testing.T) {
	for _, tt := range tokenizeTests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
