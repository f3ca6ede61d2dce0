package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFixed(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		digits int
		want   string
	}{
		{"Valor inteiro ganha duas casas", 660, 2, "660.00"},
		{"Empate exato arredonda para longe do zero", 0.125, 2, "0.13"},
		{"Empate exato com três casas", 0.375, 2, "0.38"},
		{"1.005 está abaixo do empate em binário", 1.005, 2, "1.00"},
		{"Arredondamento propaga o vai-um", 9.999, 2, "10.00"},
		{"Sem casas decimais arredonda 0.5 para cima", 0.5, 0, "1"},
		{"Sem casas decimais arredonda 2.5 para cima", 2.5, 0, "3"},
		{"Negativo pequeno mantém o sinal", -0.001, 2, "-0.00"},
		{"Zero negativo perde o sinal", math.Copysign(0, -1), 2, "0.00"},
		{"Negativo comum", -660, 2, "-660.00"},
		{"NaN", math.NaN(), 2, "NaN"},
		{"Infinito positivo", math.Inf(1), 2, "Infinity"},
		{"Infinito negativo", math.Inf(-1), 2, "-Infinity"},
		{"A partir de 1e21 usa notação exponencial", 1e21, 2, "1e+21"},
		{"Receita do cenário provável", 1980.0000000000002, 2, "1980.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToFixed(tt.value, tt.digits))
		})
	}
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   float64
		wantOK bool
	}{
		{"Texto vazio vale zero", "", 0, true},
		{"Apenas espaços vale zero", "   ", 0, true},
		{"Inteiro com espaços", " 12 ", 12, true},
		{"Decimal", "2.5", 2.5, true},
		{"Fração sem parte inteira", ".5", 0.5, true},
		{"Ponto final", "5.", 5, true},
		{"Sinal positivo", "+7", 7, true},
		{"Negativo", "-3", -3, true},
		{"Expoente", "1e3", 1000, true},
		{"Hexadecimal", "0x10", 16, true},
		{"Octal", "0o17", 15, true},
		{"Binário", "0b101", 5, true},
		{"Infinity", "Infinity", math.Inf(1), true},
		{"+Infinity", "+Infinity", math.Inf(1), true},
		{"-Infinity", "-Infinity", math.Inf(-1), true},
		{"Estouro vira infinito", "1e999", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumeric(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumeric_NaoNumerico(t *testing.T) {
	for _, raw := range []string{"abc", "12abc", "1,000", "infinity", "-0x10", "0x", "0xZZ", "1_000", "1e", "."} {
		t.Run(raw, func(t *testing.T) {
			got, ok := ParseNumeric(raw)
			assert.False(t, ok)
			assert.True(t, math.IsNaN(got))
		})
	}
}

func TestStripGrouping(t *testing.T) {
	assert.Equal(t, "1000000", StripGrouping("1,000,000"))
	assert.Equal(t, "abc", StripGrouping("a,b,c"))

	got, ok := ParseNumeric(StripGrouping("1,000"))
	assert.True(t, ok)
	assert.Equal(t, 1000.0, got)
}
