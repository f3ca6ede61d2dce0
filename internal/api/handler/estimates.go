package handler

import (
	"net/http"

	"github.com/vfg2006/earnings-estimator-api/internal/domain"
	"github.com/vfg2006/earnings-estimator-api/internal/usecases/estimating"
	"github.com/vfg2006/earnings-estimator-api/pkg/apiErrors"
	"github.com/vfg2006/earnings-estimator-api/pkg/log"
)

// CreateEstimate calcula os três painéis a partir do texto dos quatro campos
func CreateEstimate(service estimating.Estimator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.RawEarningsInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("estimates: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		estimate, err := service.EstimateRaw(req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"views":        estimate.Inputs.Views,
			"conservative": estimate.Panels[0].Display,
		}).Debug("estimates: estimativa calculada")

		writeJSON(w, r, http.StatusOK, estimate)
	})
}

func GetDisclaimer(service estimating.Estimator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Disclaimer())
	})
}
