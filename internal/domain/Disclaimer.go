package domain

// DisclaimerState é o estado do modal de aviso
type DisclaimerState string

const (
	DisclaimerHidden  DisclaimerState = "hidden"
	DisclaimerVisible DisclaimerState = "visible"
)

// DisclaimerAction é um gatilho do modal
type DisclaimerAction string

const (
	DisclaimerOpen   DisclaimerAction = "open"
	DisclaimerClose  DisclaimerAction = "close"
	DisclaimerToggle DisclaimerAction = "toggle"
)

func ParseDisclaimerAction(s string) (DisclaimerAction, bool) {
	switch a := DisclaimerAction(s); a {
	case DisclaimerOpen, DisclaimerClose, DisclaimerToggle:
		return a, true
	}
	return "", false
}

func (in EarningsInput) DisclaimerState() DisclaimerState {
	if in.DisclaimerVisible {
		return DisclaimerVisible
	}
	return DisclaimerHidden
}

func (in EarningsInput) ShowDisclaimer() EarningsInput {
	in.DisclaimerVisible = true
	return in
}

func (in EarningsInput) HideDisclaimer() EarningsInput {
	in.DisclaimerVisible = false
	return in
}

func (in EarningsInput) ToggleDisclaimer() EarningsInput {
	in.DisclaimerVisible = !in.DisclaimerVisible
	return in
}

// ApplyDisclaimer executa a ação sobre o modal
func (in EarningsInput) ApplyDisclaimer(action DisclaimerAction) EarningsInput {
	switch action {
	case DisclaimerOpen:
		return in.ShowDisclaimer()
	case DisclaimerClose:
		return in.HideDisclaimer()
	case DisclaimerToggle:
		return in.ToggleDisclaimer()
	}
	return in
}

// Disclaimer é o conteúdo do modal explicativo
type Disclaimer struct {
	Title        string   `json:"title"`
	Notice       string   `json:"notice"`
	Calculation  []string `json:"calculation"`
	CreatorShare float64  `json:"creator_share"`
}
