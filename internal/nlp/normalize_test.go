package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "HOLA", "hola"},
		{"strips punctuation", "¡Hola! ¿Cómo estás?", "hola cómo estás"},
		{"collapses whitespace", "crear   tarea\t\tnueva", "crear tarea nueva"},
		{"keeps accents and digits", "reunión a las 10", "reunión a las 10"},
		{"empty", "", ""},
		{"only punctuation", "!!! ... ???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"¡Hola!", "crear tarea: estudiar", "  muchos   espacios  ", "ñandú 123"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalizing twice must not change %q", in)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"crear", "tarea"}, Tokenize("crear tarea"))
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   "))
}
