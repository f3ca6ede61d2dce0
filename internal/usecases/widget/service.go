package widget

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/earnings-estimator-api/infrastructure/repository"
	"github.com/vfg2006/earnings-estimator-api/internal/config"
	"github.com/vfg2006/earnings-estimator-api/internal/domain"
	"github.com/vfg2006/earnings-estimator-api/internal/usecases/estimating"
	"github.com/vfg2006/earnings-estimator-api/pkg/apiErrors"
	"github.com/vfg2006/earnings-estimator-api/pkg/log"
	"github.com/vfg2006/earnings-estimator-api/pkg/utils"
)

type WidgetService interface {
	Mount(ctx context.Context) (*domain.WidgetView, error)
	View(ctx context.Context, id string) (*domain.WidgetView, error)
	UpdateField(ctx context.Context, id string, field string, raw string) (*domain.WidgetView, error)
	ApplyDisclaimer(ctx context.Context, id string, action string) (*domain.WidgetView, error)
	Unmount(ctx context.Context, id string) error
}

type Service struct {
	repo       repository.WidgetRepository
	estimator  estimating.Estimator
	defaults   domain.EarningsInput
	ttl        time.Duration
	now        func() time.Time
	generateID func() (string, error)
}

func NewService(repo repository.WidgetRepository, estimator estimating.Estimator, cfg *config.Config) *Service {
	return &Service{
		repo:      repo,
		estimator: estimator,
		defaults: domain.EarningsInput{
			Views:            cfg.Estimator.DefaultViews,
			MonetizedPercent: cfg.Estimator.DefaultMonetized,
			CPMLow:           cfg.Estimator.DefaultCPMLow,
			CPMHigh:          cfg.Estimator.DefaultCPMHigh,
		},
		ttl:        cfg.Widget.TTL,
		now:        time.Now,
		generateID: utils.GenerateID,
	}
}

// Mount cria uma sessão nova com os valores iniciais do formulário e o aviso fechado
func (s *Service) Mount(ctx context.Context) (*domain.WidgetView, error) {
	id, err := s.generateID()
	if err != nil {
		return nil, NewWidgetError(ErrGenerateID, apiErrors.ErrInternalServer, "", err.Error())
	}

	now := s.now()
	widget := &domain.Widget{
		ID:        id,
		State:     s.defaults,
		CreatedAt: now,
	}
	widget.Touch(now, s.ttl)

	if err := s.repo.Save(widget); err != nil {
		return nil, NewWidgetError(ErrRepositoryOperation, apiErrors.ErrInternalServer, id, err.Error())
	}

	log.ForContext(ctx).WithField("widget_id", id).Info("widget: sessão montada")

	return s.view(widget), nil
}

func (s *Service) View(ctx context.Context, id string) (*domain.WidgetView, error) {
	if id == "" {
		return nil, NewWidgetError(ErrWidgetIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	widget, err := s.repo.GetByID(id)
	if err != nil {
		return nil, NewWidgetError(ErrRepositoryOperation, apiErrors.ErrInternalServer, id, err.Error())
	}

	if widget == nil || widget.Expired(s.now()) {
		return nil, NewWidgetError(ErrWidgetNotFound, apiErrors.ErrWidgetNotFound, id, "")
	}

	return s.view(widget), nil
}

// UpdateField converte o texto digitado e grava um novo estado com o campo alterado
func (s *Service) UpdateField(ctx context.Context, id string, fieldName string, raw string) (*domain.WidgetView, error) {
	field, ok := domain.ParseField(fieldName)
	if !ok {
		return nil, NewWidgetError(ErrUnknownField, apiErrors.ErrMissingRequiredData, id, fieldName)
	}

	value, err := s.estimator.Coerce(field, raw)
	if err != nil {
		if errors.Is(err, estimating.ErrInvalidNumericInput) {
			return nil, NewWidgetError(ErrInvalidNumericInput, apiErrors.ErrInvalidFormat, id, err.Error())
		}
		return nil, NewWidgetError(ErrUnknownField, apiErrors.ErrMissingRequiredData, id, err.Error())
	}

	widget, err := s.update(id, func(state domain.EarningsInput) domain.EarningsInput {
		return state.With(field, value)
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"widget_id": id,
		"field":     field,
	}).Debug("widget: campo atualizado")

	return s.view(widget), nil
}

func (s *Service) ApplyDisclaimer(ctx context.Context, id string, actionName string) (*domain.WidgetView, error) {
	action, ok := domain.ParseDisclaimerAction(actionName)
	if !ok {
		return nil, NewWidgetError(ErrUnknownDisclaimerAction, apiErrors.ErrMissingRequiredData, id, actionName)
	}

	widget, err := s.update(id, func(state domain.EarningsInput) domain.EarningsInput {
		return state.ApplyDisclaimer(action)
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"widget_id":  id,
		"disclaimer": widget.State.DisclaimerState(),
	}).Debug("widget: aviso alterado")

	return s.view(widget), nil
}

func (s *Service) Unmount(ctx context.Context, id string) error {
	if id == "" {
		return NewWidgetError(ErrWidgetIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	widget, err := s.repo.GetByID(id)
	if err != nil {
		return NewWidgetError(ErrRepositoryOperation, apiErrors.ErrInternalServer, id, err.Error())
	}

	if widget == nil {
		return NewWidgetError(ErrWidgetNotFound, apiErrors.ErrWidgetNotFound, id, "")
	}

	removed, err := s.repo.Delete(id)
	if err != nil {
		return NewWidgetError(ErrRepositoryOperation, apiErrors.ErrInternalServer, id, err.Error())
	}

	// Sessão expirada sai do repositório, mas responde como inexistente
	if !removed || widget.Expired(s.now()) {
		return NewWidgetError(ErrWidgetNotFound, apiErrors.ErrWidgetNotFound, id, "")
	}

	log.ForContext(ctx).WithField("widget_id", id).Info("widget: sessão desmontada")
	return nil
}

func (s *Service) update(id string, transition func(domain.EarningsInput) domain.EarningsInput) (*domain.Widget, error) {
	if id == "" {
		return nil, NewWidgetError(ErrWidgetIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	now := s.now()
	widget, err := s.repo.Update(id, func(w *domain.Widget) error {
		if w.Expired(now) {
			return ErrWidgetNotFound
		}
		w.State = transition(w.State)
		w.Touch(now, s.ttl)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrWidgetNotFound) || errors.Is(err, repository.ErrWidgetNotFound) {
			return nil, NewWidgetError(ErrWidgetNotFound, apiErrors.ErrWidgetNotFound, id, "")
		}
		return nil, NewWidgetError(ErrRepositoryOperation, apiErrors.ErrInternalServer, id, err.Error())
	}

	return widget, nil
}

func (s *Service) view(widget *domain.Widget) *domain.WidgetView {
	return &domain.WidgetView{
		ID:               widget.ID,
		Disclaimer:       widget.State.DisclaimerState(),
		ExpiresAt:        widget.ExpiresAt,
		EarningsEstimate: *s.estimator.Estimate(widget.State),
	}
}
