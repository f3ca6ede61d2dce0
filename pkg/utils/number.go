package utils

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// exactFractionDigits é suficiente para representar exatamente qualquer float64 em decimal
const exactFractionDigits = 1074

// toFixedLimit é o limite a partir do qual o valor é escrito em notação exponencial
const toFixedLimit = 1e21

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// StripGrouping remove os separadores de milhar digitados pelo usuário
func StripGrouping(raw string) string {
	return strings.ReplaceAll(raw, ",", "")
}

// ParseNumeric converte o texto de um campo numérico.
// Texto vazio vale 0; ok é false quando o texto não é um número e o valor retornado é NaN.
func ParseNumeric(raw string) (value float64, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if base := radixPrefix(s); base != 0 {
		return parseRadixInteger(s[2:], base)
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN(), false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Fora do intervalo o ParseFloat já devolve ±Inf
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return math.NaN(), false
	}

	return f, true
}

func radixPrefix(s string) int {
	if len(s) < 3 || s[0] != '0' {
		return 0
	}

	switch s[1] {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

func parseRadixInteger(digits string, base int) (float64, bool) {
	if digits[0] == '+' || digits[0] == '-' {
		return math.NaN(), false
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN(), false
	}

	f, _ := new(big.Float).SetInt(n).Float64()
	return f, true
}

// ToFixed formata f com exatamente digits casas decimais.
// O arredondamento é feito sobre o valor binário exato, com empate afastando do zero.
func ToFixed(f float64, digits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	if digits < 0 {
		digits = 0
	}

	negative := f < 0
	if negative {
		f = -f
	}

	if f >= toFixedLimit {
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if negative {
			return "-" + s
		}
		return s
	}

	exact := new(big.Float).SetFloat64(f).Text('f', exactFractionDigits)
	intPart, fraction, _ := strings.Cut(exact, ".")

	mantissa := intPart + fraction[:digits]
	if fraction[digits] >= '5' {
		mantissa = incrementDigits(mantissa)
	}

	point := len(mantissa) - digits
	out := mantissa[:point]
	if digits > 0 {
		out += "." + mantissa[point:]
	}

	if negative {
		return "-" + out
	}
	return out
}

func incrementDigits(digits string) string {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}
