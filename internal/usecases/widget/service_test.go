package widget

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/earnings-estimator-api/infrastructure/repository"
	"github.com/vfg2006/earnings-estimator-api/infrastructure/repository/mocks"
	"github.com/vfg2006/earnings-estimator-api/internal/config"
	"github.com/vfg2006/earnings-estimator-api/internal/domain"
	"github.com/vfg2006/earnings-estimator-api/internal/usecases/estimating"
	"github.com/vfg2006/earnings-estimator-api/pkg/apiErrors"
	"github.com/vfg2006/earnings-estimator-api/pkg/log"
	"github.com/vfg2006/earnings-estimator-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

var (
	testNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	testTTL = 30 * time.Minute

	defaultState = domain.EarningsInput{
		Views:            1000000,
		MonetizedPercent: 60,
		CPMLow:           2,
		CPMHigh:          10,
	}
)

func newTestService(t *testing.T, repo repository.WidgetRepository, policy string) *Service {
	t.Helper()
	log.SetupTestLogger()

	formatter, err := utils.NewNumberFormatter("en-US")
	require.NoError(t, err)

	return &Service{
		repo:       repo,
		estimator:  estimating.NewService(formatter, policy),
		defaults:   defaultState,
		ttl:        testTTL,
		now:        func() time.Time { return testNow },
		generateID: func() (string, error) { return "w1", nil },
	}
}

// updateWith simula o repositório aplicando fn sobre uma cópia da sessão
func updateWith(stored domain.Widget) func(string, func(*domain.Widget) error) (*domain.Widget, error) {
	return func(_ string, fn func(*domain.Widget) error) (*domain.Widget, error) {
		w := stored
		if err := fn(&w); err != nil {
			return nil, err
		}
		return &w, nil
	}
}

func assertWidgetError(t *testing.T, err error, base error, code string) {
	t.Helper()

	var widgetErr *WidgetError
	require.ErrorAs(t, err, &widgetErr)
	assert.Equal(t, code, widgetErr.Code)
	assert.True(t, errors.Is(err, base), "esperado %v, obtido %v", base, err)
}

func TestService_Mount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWidgetRepository(ctrl)
	service := newTestService(t, mockRepo, config.InvalidInputPropagate)

	t.Run("Monta a sessão com os valores iniciais", func(t *testing.T) {
		mockRepo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(w *domain.Widget) error {
				assert.Equal(t, "w1", w.ID)
				assert.Equal(t, defaultState, w.State)
				assert.Equal(t, testNow, w.CreatedAt)
				return nil
			})

		view, err := service.Mount(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "w1", view.ID)
		assert.Equal(t, domain.DisclaimerHidden, view.Disclaimer)
		assert.Equal(t, testNow.Add(testTTL), view.ExpiresAt)
		assert.Equal(t, "$660.00", view.Panel(domain.ScenarioConservative).Display)
		assert.Equal(t, "$1,980.00", view.Panel(domain.ScenarioLikely).Display)
		assert.Equal(t, "$3,300.00", view.Panel(domain.ScenarioOptimistic).Display)
	})

	t.Run("Erro ao gerar o ID", func(t *testing.T) {
		failing := *service
		failing.generateID = func() (string, error) { return "", errors.New("entropy") }

		_, err := failing.Mount(context.Background())
		assertWidgetError(t, err, ErrGenerateID, apiErrors.ErrInternalServer)
	})

	t.Run("Erro do repositório", func(t *testing.T) {
		mockRepo.EXPECT().Save(gomock.Any()).Return(repository.ErrWidgetExists)

		_, err := service.Mount(context.Background())
		assertWidgetError(t, err, ErrRepositoryOperation, apiErrors.ErrInternalServer)
	})
}

func TestService_View(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWidgetRepository(ctrl)
	service := newTestService(t, mockRepo, config.InvalidInputPropagate)

	tests := []struct {
		name     string
		id       string
		setup    func()
		validate func(t *testing.T, view *domain.WidgetView, err error)
	}{
		{
			name: "Sessão ativa",
			id:   "w1",
			setup: func() {
				mockRepo.EXPECT().GetByID("w1").Return(&domain.Widget{
					ID:        "w1",
					State:     defaultState.ShowDisclaimer(),
					ExpiresAt: testNow.Add(time.Minute),
				}, nil)
			},
			validate: func(t *testing.T, view *domain.WidgetView, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.DisclaimerVisible, view.Disclaimer)
				assert.Equal(t, "1,000,000", view.Inputs.Views)
			},
		},
		{
			name: "Sessão inexistente",
			id:   "nope",
			setup: func() {
				mockRepo.EXPECT().GetByID("nope").Return(nil, nil)
			},
			validate: func(t *testing.T, view *domain.WidgetView, err error) {
				assert.Nil(t, view)
				assertWidgetError(t, err, ErrWidgetNotFound, apiErrors.ErrWidgetNotFound)
			},
		},
		{
			name: "Sessão expirada",
			id:   "old",
			setup: func() {
				mockRepo.EXPECT().GetByID("old").Return(&domain.Widget{
					ID:        "old",
					State:     defaultState,
					ExpiresAt: testNow,
				}, nil)
			},
			validate: func(t *testing.T, view *domain.WidgetView, err error) {
				assertWidgetError(t, err, ErrWidgetNotFound, apiErrors.ErrWidgetNotFound)
			},
		},
		{
			name:  "ID vazio",
			id:    "",
			setup: func() {},
			validate: func(t *testing.T, view *domain.WidgetView, err error) {
				assertWidgetError(t, err, ErrWidgetIDRequired, apiErrors.ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			view, err := service.View(context.Background(), tt.id)
			tt.validate(t, view, err)
		})
	}
}

func TestService_UpdateField(t *testing.T) {
	stored := domain.Widget{
		ID:        "w1",
		State:     defaultState,
		CreatedAt: testNow.Add(-time.Minute),
		ExpiresAt: testNow.Add(time.Minute),
	}

	t.Run("Texto com separadores de milhar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockWidgetRepository(ctrl)
		service := newTestService(t, mockRepo, config.InvalidInputPropagate)

		mockRepo.EXPECT().Update("w1", gomock.Any()).DoAndReturn(updateWith(stored))

		view, err := service.UpdateField(context.Background(), "w1", "views", "2,000,000")
		require.NoError(t, err)

		assert.Equal(t, "2,000,000", view.Inputs.Views)
		assert.Equal(t, "$1,320.00", view.Panel(domain.ScenarioConservative).Display)
		assert.Equal(t, testNow.Add(testTTL), view.ExpiresAt)
	})

	t.Run("propagate grava NaN e os três painéis mostram $NaN", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockWidgetRepository(ctrl)
		service := newTestService(t, mockRepo, config.InvalidInputPropagate)

		mockRepo.EXPECT().Update("w1", gomock.Any()).DoAndReturn(updateWith(stored))

		view, err := service.UpdateField(context.Background(), "w1", "views", "abc")
		require.NoError(t, err)
		for _, panel := range view.Panels {
			assert.Equal(t, "$NaN", panel.Display)
		}
	})

	t.Run("reject recusa sem tocar no repositório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockWidgetRepository(ctrl)
		service := newTestService(t, mockRepo, config.InvalidInputReject)

		view, err := service.UpdateField(context.Background(), "w1", "cpm_low", "abc")
		assert.Nil(t, view)
		assertWidgetError(t, err, ErrInvalidNumericInput, apiErrors.ErrInvalidFormat)
	})

	t.Run("Campo desconhecido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockWidgetRepository(ctrl)
		service := newTestService(t, mockRepo, config.InvalidInputPropagate)

		_, err := service.UpdateField(context.Background(), "w1", "likes", "1")
		assertWidgetError(t, err, ErrUnknownField, apiErrors.ErrMissingRequiredData)
	})

	t.Run("Sessão expirada não é alterada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockWidgetRepository(ctrl)
		service := newTestService(t, mockRepo, config.InvalidInputPropagate)

		expired := stored
		expired.ExpiresAt = testNow.Add(-time.Second)
		mockRepo.EXPECT().Update("w1", gomock.Any()).DoAndReturn(updateWith(expired))

		_, err := service.UpdateField(context.Background(), "w1", "views", "1")
		assertWidgetError(t, err, ErrWidgetNotFound, apiErrors.ErrWidgetNotFound)
	})

	t.Run("Sessão inexistente no repositório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockWidgetRepository(ctrl)
		service := newTestService(t, mockRepo, config.InvalidInputPropagate)

		mockRepo.EXPECT().Update("nope", gomock.Any()).
			Return(nil, errors.Wrap(repository.ErrWidgetNotFound, "id nope"))

		_, err := service.UpdateField(context.Background(), "nope", "views", "1")
		assertWidgetError(t, err, ErrWidgetNotFound, apiErrors.ErrWidgetNotFound)
	})
}

func TestService_ApplyDisclaimer(t *testing.T) {
	repo := repository.NewWidgetRepository()
	service := newTestService(t, repo, config.InvalidInputPropagate)
	ctx := context.Background()

	mounted, err := service.Mount(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.DisclaimerHidden, mounted.Disclaimer)

	view, err := service.ApplyDisclaimer(ctx, mounted.ID, "toggle")
	require.NoError(t, err)
	assert.Equal(t, domain.DisclaimerVisible, view.Disclaimer)

	view, err = service.ApplyDisclaimer(ctx, mounted.ID, "toggle")
	require.NoError(t, err)
	assert.Equal(t, domain.DisclaimerHidden, view.Disclaimer)

	view, err = service.ApplyDisclaimer(ctx, mounted.ID, "open")
	require.NoError(t, err)
	view, err = service.ApplyDisclaimer(ctx, mounted.ID, "open")
	require.NoError(t, err)
	assert.Equal(t, domain.DisclaimerVisible, view.Disclaimer)

	view, err = service.ApplyDisclaimer(ctx, mounted.ID, "close")
	require.NoError(t, err)
	assert.Equal(t, domain.DisclaimerHidden, view.Disclaimer)

	// O aviso não altera os painéis
	assert.Equal(t, mounted.Panels, view.Panels)

	_, err = service.ApplyDisclaimer(ctx, mounted.ID, "blink")
	assertWidgetError(t, err, ErrUnknownDisclaimerAction, apiErrors.ErrMissingRequiredData)
}

func TestService_Unmount(t *testing.T) {
	active := &domain.Widget{ID: "w1", State: defaultState, ExpiresAt: testNow.Add(time.Minute)}
	expired := &domain.Widget{ID: "w1", State: defaultState, ExpiresAt: testNow.Add(-time.Second)}

	tests := []struct {
		name     string
		id       string
		setup    func(mockRepo *mocks.MockWidgetRepository)
		validate func(t *testing.T, err error)
	}{
		{
			name: "Sessão ativa é removida",
			id:   "w1",
			setup: func(mockRepo *mocks.MockWidgetRepository) {
				mockRepo.EXPECT().GetByID("w1").Return(active, nil)
				mockRepo.EXPECT().Delete("w1").Return(true, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Sessão inexistente",
			id:   "w1",
			setup: func(mockRepo *mocks.MockWidgetRepository) {
				mockRepo.EXPECT().GetByID("w1").Return(nil, nil)
			},
			validate: func(t *testing.T, err error) {
				assertWidgetError(t, err, ErrWidgetNotFound, apiErrors.ErrWidgetNotFound)
			},
		},
		{
			name: "Sessão expirada é descartada e responde como inexistente",
			id:   "w1",
			setup: func(mockRepo *mocks.MockWidgetRepository) {
				mockRepo.EXPECT().GetByID("w1").Return(expired, nil)
				mockRepo.EXPECT().Delete("w1").Return(true, nil)
			},
			validate: func(t *testing.T, err error) {
				assertWidgetError(t, err, ErrWidgetNotFound, apiErrors.ErrWidgetNotFound)
			},
		},
		{
			name: "Removida por outra requisição entre a leitura e a remoção",
			id:   "w1",
			setup: func(mockRepo *mocks.MockWidgetRepository) {
				mockRepo.EXPECT().GetByID("w1").Return(active, nil)
				mockRepo.EXPECT().Delete("w1").Return(false, nil)
			},
			validate: func(t *testing.T, err error) {
				assertWidgetError(t, err, ErrWidgetNotFound, apiErrors.ErrWidgetNotFound)
			},
		},
		{
			name:  "ID vazio",
			id:    "",
			setup: func(mockRepo *mocks.MockWidgetRepository) {},
			validate: func(t *testing.T, err error) {
				assertWidgetError(t, err, ErrWidgetIDRequired, apiErrors.ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := mocks.NewMockWidgetRepository(ctrl)
			tt.setup(mockRepo)

			service := newTestService(t, mockRepo, config.InvalidInputPropagate)
			tt.validate(t, service.Unmount(context.Background(), tt.id))
		})
	}
}

func TestService_Unmount_SessaoExpiradaNoRepositorio(t *testing.T) {
	repo := repository.NewWidgetRepository()
	service := newTestService(t, repo, config.InvalidInputPropagate)

	mounted, err := service.Mount(context.Background())
	require.NoError(t, err)

	service.now = func() time.Time { return testNow.Add(testTTL) }

	err = service.Unmount(context.Background(), mounted.ID)
	assertWidgetError(t, err, ErrWidgetNotFound, apiErrors.ErrWidgetNotFound)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestNewService(t *testing.T) {
	cfg := &config.Config{}
	cfg.Estimator.DefaultViews = 5000
	cfg.Estimator.DefaultMonetized = 50
	cfg.Estimator.DefaultCPMLow = 1
	cfg.Estimator.DefaultCPMHigh = 3
	cfg.Widget.TTL = time.Minute

	formatter, err := utils.NewNumberFormatter("en-US")
	require.NoError(t, err)

	service := NewService(repository.NewWidgetRepository(), estimating.NewService(formatter, cfg.Estimator.InvalidInputPolicy), cfg)

	view, err := service.Mount(context.Background())
	require.NoError(t, err)
	assert.Len(t, view.ID, 12)
	assert.Equal(t, "5,000", view.Inputs.Views)
	assert.Equal(t, "1", view.Inputs.CPMLow)
}
