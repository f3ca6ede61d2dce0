package estimating

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/earnings-estimator-api/internal/domain"
)

var (
	ErrInvalidNumericInput = errors.New("invalid numeric input")
	ErrUnknownField        = errors.New("unknown field")
)

// InvalidInputError indica o campo cujo texto não pôde ser convertido em número
type InvalidInputError struct {
	Field domain.Field
	Raw   string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrInvalidNumericInput, e.Field, e.Raw)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidNumericInput
}
