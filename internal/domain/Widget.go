package domain

import "time"

// Widget é uma sessão do formulário montada por um cliente. Vive apenas em memória.
type Widget struct {
	ID        string
	State     EarningsInput
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

func (w *Widget) Expired(now time.Time) bool {
	return !w.ExpiresAt.IsZero() && !now.Before(w.ExpiresAt)
}

// Touch registra uma alteração e renova a validade da sessão
func (w *Widget) Touch(now time.Time, ttl time.Duration) {
	w.UpdatedAt = now
	w.ExpiresAt = now.Add(ttl)
}

type WidgetView struct {
	ID         string          `json:"id"`
	Disclaimer DisclaimerState `json:"disclaimer"`
	ExpiresAt  time.Time       `json:"expires_at"`
	EarningsEstimate
}

type WidgetSweepResult struct {
	Removed   int       `json:"removed"`
	Remaining int       `json:"remaining"`
	SweptAt   time.Time `json:"swept_at"`
}
