// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/earnings-estimator-api/internal/domain"
)

var (
	ErrWidgetExists   = errors.New("widget already exists")
	ErrWidgetNotFound = errors.New("widget not found")
)

//go:generate mockgen -source=widget.go -destination=mocks/widget.go -package=mocks

type WidgetRepository interface {
	Save(widget *domain.Widget) error
	// GetByID retorna nil, nil quando a sessão não existe
	GetByID(id string) (*domain.Widget, error)
	// Update aplica fn sobre uma cópia da sessão e grava o resultado se fn não retornar erro
	Update(id string, fn func(widget *domain.Widget) error) (*domain.Widget, error)
	Delete(id string) (bool, error)
	DeleteExpired(now time.Time) (int, error)
	Count() (int, error)
}

type widgetRepository struct {
	mu      sync.Mutex
	widgets map[string]domain.Widget
}

// NewWidgetRepository cria o repositório em memória das sessões do widget
func NewWidgetRepository() WidgetRepository {
	return &widgetRepository{
		widgets: make(map[string]domain.Widget),
	}
}

func (r *widgetRepository) Save(widget *domain.Widget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.widgets[widget.ID]; exists {
		return errors.Wrapf(ErrWidgetExists, "id %s", widget.ID)
	}

	r.widgets[widget.ID] = *widget
	return nil
}

func (r *widgetRepository) GetByID(id string) (*domain.Widget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	widget, ok := r.widgets[id]
	if !ok {
		return nil, nil
	}
	return &widget, nil
}

func (r *widgetRepository) Update(id string, fn func(widget *domain.Widget) error) (*domain.Widget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	widget, ok := r.widgets[id]
	if !ok {
		return nil, errors.Wrapf(ErrWidgetNotFound, "id %s", id)
	}

	if err := fn(&widget); err != nil {
		return nil, err
	}

	r.widgets[id] = widget
	return &widget, nil
}

func (r *widgetRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.widgets[id]; !ok {
		return false, nil
	}

	delete(r.widgets, id)
	return true, nil
}

func (r *widgetRepository) DeleteExpired(now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, widget := range r.widgets {
		if widget.Expired(now) {
			delete(r.widgets, id)
			removed++
		}
	}
	return removed, nil
}

func (r *widgetRepository) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.widgets), nil
}
