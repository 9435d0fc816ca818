package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"cyrillic with punctuation", "Зимние сапоги «Nordic»!!", "zimnie-sapogi-nordic"},
		{"plain latin", "Chelsea Boots", "chelsea-boots"},
		{"digits kept", "Модель 2024", "model-2024"},
		{"multi-letter transliteration", "Женская обувь", "zhenskaya-obuv"},
		{"soft sign dropped", "Осень", "osen"},
		{"runs collapse to one hyphen", "a  -  b___c", "a-b-c"},
		{"leading and trailing trimmed", "  сапоги  ", "sapogi"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Make(tc.input))
		})
	}
}

func TestMakeIsDeterministic(t *testing.T) {
	name := "Кожаные сапоги «Frost Queen»"
	first := Make(name)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Make(name))
	}
}
