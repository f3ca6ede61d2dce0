package utils

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	currencySymbol      = "$"
	amountDecimals      = 2
	inputMaxFractionLen = 3
)

// NumberFormatter escreve números com o agrupamento de milhar do idioma configurado
type NumberFormatter struct {
	tag     language.Tag
	printer *message.Printer
}

func NewNumberFormatter(locale string) (*NumberFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("utils: invalid display locale %q: %w", locale, err)
	}

	return &NumberFormatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}, nil
}

func (f *NumberFormatter) Locale() string {
	return f.tag.String()
}

// Currency formata um valor monetário, ex.: 1980 -> "$1,980.00", NaN -> "$NaN"
func (f *NumberFormatter) Currency(v float64) string {
	return currencySymbol + f.Amount(v)
}

// Amount formata v com exatamente duas casas decimais
func (f *NumberFormatter) Amount(v float64) string {
	return f.format(roundHalfAway(v, amountDecimals), number.Scale(amountDecimals))
}

// Input formata o valor de um campo como exibido no formulário (até três casas decimais)
func (f *NumberFormatter) Input(v float64) string {
	return f.format(roundHalfAway(v, inputMaxFractionLen), number.MaxFractionDigits(inputMaxFractionLen))
}

// roundHalfAway arredonda como ToFixed antes da formatação, que desempata para o par
func roundHalfAway(v float64, digits int) float64 {
	rounded, ok := ParseNumeric(ToFixed(v, digits))
	if !ok {
		return math.NaN()
	}
	return rounded
}

func (f *NumberFormatter) format(v float64, opts ...number.Option) string {
	sign := ""
	if math.Signbit(v) && !math.IsNaN(v) {
		sign = "-"
		v = math.Abs(v)
	}

	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 0):
		return sign + "∞"
	}

	return sign + f.printer.Sprint(number.Decimal(v, opts...))
}
