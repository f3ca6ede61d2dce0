package domain

// Scenario identifica um dos painéis de resultado
type Scenario string

const (
	ScenarioConservative Scenario = "conservative"
	ScenarioLikely       Scenario = "likely"
	ScenarioOptimistic   Scenario = "optimistic"
)

func (s Scenario) Label() string {
	switch s {
	case ScenarioConservative:
		return "Conservative"
	case ScenarioLikely:
		return "Likely"
	case ScenarioOptimistic:
		return "Optimistic"
	}
	return string(s)
}

// EarningsPanel é um painel de resultado. Os valores seguem como texto porque podem ser NaN.
type EarningsPanel struct {
	Scenario   Scenario `json:"scenario"`
	Label      string   `json:"label"`
	CPM        string   `json:"cpm"`
	NetRevenue string   `json:"net_revenue"` // Duas casas decimais, sem agrupamento
	Display    string   `json:"display"`     // Ex.: $1,980.00
}

// InputView é o texto exibido em cada campo do formulário
type InputView struct {
	Views            string `json:"views"`
	MonetizedPercent string `json:"monetized_percent"`
	CPMLow           string `json:"cpm_low"`
	CPMHigh          string `json:"cpm_high"`
}

type EarningsEstimate struct {
	Inputs InputView       `json:"inputs"`
	Panels []EarningsPanel `json:"panels"`
}

func (e *EarningsEstimate) Panel(scenario Scenario) *EarningsPanel {
	for i := range e.Panels {
		if e.Panels[i].Scenario == scenario {
			return &e.Panels[i]
		}
	}
	return nil
}

func (v InputView) Value(field Field) string {
	switch field {
	case FieldViews:
		return v.Views
	case FieldMonetizedPercent:
		return v.MonetizedPercent
	case FieldCPMLow:
		return v.CPMLow
	case FieldCPMHigh:
		return v.CPMHigh
	}
	return ""
}
