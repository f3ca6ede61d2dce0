// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Field identifica um dos campos numéricos do formulário
type Field string

const (
	FieldViews            Field = "views"
	FieldMonetizedPercent Field = "monetized_percent"
	FieldCPMLow           Field = "cpm_low"
	FieldCPMHigh          Field = "cpm_high"
)

var fields = []Field{FieldViews, FieldMonetizedPercent, FieldCPMLow, FieldCPMHigh}

func Fields() []Field {
	return append([]Field(nil), fields...)
}

func ParseField(s string) (Field, bool) {
	for _, f := range fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Label é o rótulo exibido no formulário
func (f Field) Label() string {
	switch f {
	case FieldViews:
		return "Total Views"
	case FieldMonetizedPercent:
		return "Monetized Views (%)"
	case FieldCPMLow:
		return "CPM Low"
	case FieldCPMHigh:
		return "CPM High"
	}
	return string(f)
}

// EarningsInput é o estado do formulário. É imutável: cada alteração devolve uma nova cópia.
type EarningsInput struct {
	Views             float64
	MonetizedPercent  float64
	CPMLow            float64
	CPMHigh           float64
	DisclaimerVisible bool
}

func (in EarningsInput) WithViews(v float64) EarningsInput {
	in.Views = v
	return in
}

func (in EarningsInput) WithMonetizedPercent(v float64) EarningsInput {
	in.MonetizedPercent = v
	return in
}

func (in EarningsInput) WithCPMLow(v float64) EarningsInput {
	in.CPMLow = v
	return in
}

func (in EarningsInput) WithCPMHigh(v float64) EarningsInput {
	in.CPMHigh = v
	return in
}

// With aplica o valor ao campo indicado. Campos desconhecidos não alteram o estado.
func (in EarningsInput) With(field Field, v float64) EarningsInput {
	switch field {
	case FieldViews:
		return in.WithViews(v)
	case FieldMonetizedPercent:
		return in.WithMonetizedPercent(v)
	case FieldCPMLow:
		return in.WithCPMLow(v)
	case FieldCPMHigh:
		return in.WithCPMHigh(v)
	}
	return in
}

func (in EarningsInput) Value(field Field) float64 {
	switch field {
	case FieldViews:
		return in.Views
	case FieldMonetizedPercent:
		return in.MonetizedPercent
	case FieldCPMLow:
		return in.CPMLow
	case FieldCPMHigh:
		return in.CPMHigh
	}
	return 0
}

// RawEarningsInput carrega o texto digitado em cada campo, antes da conversão
type RawEarningsInput struct {
	Views            NumericText `json:"views"`
	MonetizedPercent NumericText `json:"monetized_percent"`
	CPMLow           NumericText `json:"cpm_low"`
	CPMHigh          NumericText `json:"cpm_high"`
}

func (r RawEarningsInput) Value(field Field) string {
	switch field {
	case FieldViews:
		return string(r.Views)
	case FieldMonetizedPercent:
		return string(r.MonetizedPercent)
	case FieldCPMLow:
		return string(r.CPMLow)
	case FieldCPMHigh:
		return string(r.CPMHigh)
	}
	return ""
}

// NumericText aceita tanto "1,000,000" quanto 1000000 no JSON
type NumericText string

func (t *NumericText) UnmarshalJSON(data []byte) error {
	value := jsoniter.Get(data)
	switch value.ValueType() {
	case jsoniter.StringValue:
		*t = NumericText(value.ToString())
	case jsoniter.NilValue:
		*t = ""
	case jsoniter.NumberValue:
		*t = NumericText(bytes.TrimSpace(data))
	default:
		return fmt.Errorf("domain: numeric field must be a string or a number, got %s", data)
	}
	return nil
}
