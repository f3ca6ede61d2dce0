package estimating

import "github.com/vfg2006/earnings-estimator-api/pkg/utils"

// CreatorShare é a parcela da receita bruta que fica com o criador (55%)
const CreatorShare = 0.55

// NetRevenue aplica a fórmula sem nenhum arredondamento intermediário.
// Entradas NaN propagam para o resultado.
func NetRevenue(views, monetizedPercent, cpm float64) float64 {
	monetizedViews := views * monetizedPercent / 100
	grossRevenue := (monetizedViews / 1000) * cpm
	return grossRevenue * CreatorShare
}

// Calculate devolve a receita líquida com exatamente duas casas decimais ("NaN" se não houver número)
func Calculate(views, monetizedPercent, cpm float64) string {
	return utils.ToFixed(NetRevenue(views, monetizedPercent, cpm), 2)
}

// LikelyCPM é o CPM usado no painel intermediário: a média entre o mínimo e o máximo
func LikelyCPM(cpmLow, cpmHigh float64) float64 {
	return (cpmLow + cpmHigh) / 2
}
