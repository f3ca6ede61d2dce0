package widget

import (
	"fmt"

	"github.com/pkg/errors"
)

// Erros específicos para o contexto das sessões do widget
var (
	ErrWidgetIDRequired        = errors.New("widget ID is required")
	ErrWidgetNotFound          = errors.New("widget not found")
	ErrUnknownField            = errors.New("unknown field")
	ErrUnknownDisclaimerAction = errors.New("unknown disclaimer action")
	ErrInvalidNumericInput     = errors.New("invalid numeric input")
	ErrGenerateID              = errors.New("error generating widget ID")
	ErrRepositoryOperation     = errors.New("widget repository operation error")
)

// WidgetError é um erro com contexto adicional para as sessões
type WidgetError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	WidgetID string
	Details  string
}

func (e *WidgetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *WidgetError) Unwrap() error {
	return e.Err
}

func NewWidgetError(err error, code string, widgetID string, details string) *WidgetError {
	return &WidgetError{
		Err:      err,
		Code:     code,
		WidgetID: widgetID,
		Details:  details,
	}
}
