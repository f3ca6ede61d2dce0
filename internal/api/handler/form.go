package handler

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/vfg2006/earnings-estimator-api/internal/domain"
	"github.com/vfg2006/earnings-estimator-api/internal/usecases/estimating"
	"github.com/vfg2006/earnings-estimator-api/pkg/log"
)

//go:embed templates/form.html
var templatesFS embed.FS

var formTemplate = template.Must(template.ParseFS(templatesFS, "templates/form.html"))

const disclaimerParam = "disclaimer"

type formField struct {
	Name  string
	Label string
	Value string
	Error string
}

type formPage struct {
	Fields         []formField
	Panels         []domain.EarningsPanel
	Disclaimer     domain.Disclaimer
	ShowDisclaimer bool
	OpenURL        string
	CloseURL       string
}

// RenderForm desenha o formulário. Os campos vêm da query string; campos ausentes usam os valores iniciais.
func RenderForm(service estimating.Estimator, defaults domain.EarningsInput) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		state := defaults
		fieldErrors := make(map[domain.Field]string)
		for _, field := range domain.Fields() {
			if !query.Has(string(field)) {
				continue
			}

			value, err := service.Coerce(field, query.Get(string(field)))
			if err != nil {
				fieldErrors[field] = "Enter a number"
				continue
			}
			state = state.With(field, value)
		}

		if query.Get(disclaimerParam) == "1" {
			state = state.ShowDisclaimer()
		}

		estimate := service.Estimate(state)

		page := formPage{
			Panels:         estimate.Panels,
			Disclaimer:     service.Disclaimer(),
			ShowDisclaimer: state.DisclaimerVisible,
			OpenURL:        withDisclaimer(query, true),
			CloseURL:       withDisclaimer(query, false),
		}

		for _, field := range domain.Fields() {
			ff := formField{
				Name:  string(field),
				Label: field.Label(),
				Value: estimate.Inputs.Value(field),
			}
			if msg, invalid := fieldErrors[field]; invalid {
				ff.Value = query.Get(string(field))
				ff.Error = msg
			}
			page.Fields = append(page.Fields, ff)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := formTemplate.Execute(w, page); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("form: erro ao desenhar o formulário")
		}
	})
}

func withDisclaimer(query url.Values, visible bool) string {
	next := url.Values{}
	for key, values := range query {
		next[key] = append([]string(nil), values...)
	}

	if visible {
		next.Set(disclaimerParam, "1")
	} else {
		next.Del(disclaimerParam)
	}

	if len(next) == 0 {
		return "/"
	}
	return "/?" + next.Encode()
}
