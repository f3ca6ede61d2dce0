package estimating

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/earnings-estimator-api/internal/config"
	"github.com/vfg2006/earnings-estimator-api/internal/domain"
	"github.com/vfg2006/earnings-estimator-api/pkg/utils"
)

type Estimator interface {
	// Coerce converte o texto de um campo. Com a política "reject", texto inválido gera InvalidInputError.
	Coerce(field domain.Field, raw string) (float64, error)

	// Estimate deriva os três painéis a partir do estado atual
	Estimate(input domain.EarningsInput) *domain.EarningsEstimate

	// EstimateRaw converte os quatro campos e deriva os painéis
	EstimateRaw(raw domain.RawEarningsInput) (*domain.EarningsEstimate, error)

	Disclaimer() domain.Disclaimer
}

type Service struct {
	formatter *utils.NumberFormatter
	policy    string
}

func NewService(formatter *utils.NumberFormatter, policy string) Estimator {
	if policy != config.InvalidInputReject {
		policy = config.InvalidInputPropagate
	}

	return &Service{
		formatter: formatter,
		policy:    policy,
	}
}

// NewServiceFromConfig monta o serviço com o idioma e a política configurados
func NewServiceFromConfig(cfg *config.Config) (Estimator, error) {
	formatter, err := utils.NewNumberFormatter(cfg.Estimator.DisplayLocale)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"locale":               formatter.Locale(),
		"invalid_input_policy": cfg.Estimator.InvalidInputPolicy,
	}).Info("Configuração do estimador carregada")

	return NewService(formatter, cfg.Estimator.InvalidInputPolicy), nil
}

func (s *Service) Coerce(field domain.Field, raw string) (float64, error) {
	if _, ok := domain.ParseField(string(field)); !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	value, ok := utils.ParseNumeric(utils.StripGrouping(raw))
	if !ok && s.policy == config.InvalidInputReject {
		return 0, &InvalidInputError{Field: field, Raw: raw}
	}

	return value, nil
}

func (s *Service) Estimate(input domain.EarningsInput) *domain.EarningsEstimate {
	scenarios := []struct {
		scenario domain.Scenario
		cpm      float64
	}{
		{domain.ScenarioConservative, input.CPMLow},
		{domain.ScenarioLikely, LikelyCPM(input.CPMLow, input.CPMHigh)},
		{domain.ScenarioOptimistic, input.CPMHigh},
	}

	panels := make([]domain.EarningsPanel, 0, len(scenarios))
	for _, sc := range scenarios {
		fixed := Calculate(input.Views, input.MonetizedPercent, sc.cpm)
		panels = append(panels, domain.EarningsPanel{
			Scenario:   sc.scenario,
			Label:      sc.scenario.Label(),
			CPM:        s.formatter.Input(sc.cpm),
			NetRevenue: fixed,
			Display:    s.formatter.Currency(reparse(fixed)),
		})
	}

	return &domain.EarningsEstimate{
		Inputs: s.inputView(input),
		Panels: panels,
	}
}

func (s *Service) EstimateRaw(raw domain.RawEarningsInput) (*domain.EarningsEstimate, error) {
	var input domain.EarningsInput
	for _, field := range domain.Fields() {
		value, err := s.Coerce(field, raw.Value(field))
		if err != nil {
			return nil, err
		}
		input = input.With(field, value)
	}

	return s.Estimate(input), nil
}

func (s *Service) Disclaimer() domain.Disclaimer {
	return domain.Disclaimer{
		Title: "Disclaimer & How This Is Calculated",
		Notice: "This calculator provides a rough estimate and actual earnings may vary depending on " +
			"multiple factors including region, viewer demographics, and YouTube's revenue sharing model.",
		Calculation: []string{
			"Monetized Views = Total Views × Monetized %.",
			"Gross Revenue = (Monetized Views ÷ 1000) × CPM.",
			fmt.Sprintf("Net Revenue = Gross Revenue × %.0f%%.", CreatorShare*100),
		},
		CreatorShare: CreatorShare,
	}
}

func (s *Service) inputView(input domain.EarningsInput) domain.InputView {
	return domain.InputView{
		Views:            s.formatter.Input(input.Views),
		MonetizedPercent: s.formatter.Input(input.MonetizedPercent),
		CPMLow:           s.formatter.Input(input.CPMLow),
		CPMHigh:          s.formatter.Input(input.CPMHigh),
	}
}

// reparse lê de volta o texto com duas casas, exatamente como o valor exibido é obtido
func reparse(fixed string) float64 {
	value, ok := utils.ParseNumeric(fixed)
	if !ok {
		return math.NaN()
	}
	return value
}
