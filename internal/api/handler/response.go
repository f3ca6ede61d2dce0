package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/earnings-estimator-api/internal/usecases/estimating"
	"github.com/vfg2006/earnings-estimator-api/internal/usecases/widget"
	"github.com/vfg2006/earnings-estimator-api/pkg/apiErrors"
	"github.com/vfg2006/earnings-estimator-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros dos casos de uso para o formato padronizado da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var widgetErr *widget.WidgetError
	if errors.As(err, &widgetErr) {
		details := map[string]string{}
		if widgetErr.WidgetID != "" {
			details["widget_id"] = widgetErr.WidgetID
		}

		if apiErrors.StatusFor(widgetErr.Code) >= http.StatusInternalServerError {
			logger.Error("widget: falha ao processar requisição")
		} else {
			logger.Warn("widget: requisição recusada")
		}

		apiErrors.WriteError(w, widgetErr.Code, widgetErr.Error(), details)
		return
	}

	var inputErr *estimating.InvalidInputError
	if errors.As(err, &inputErr) {
		logger.Warn("estimates: texto inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, inputErr.Error(), map[string]string{
			"field": string(inputErr.Field),
			"value": inputErr.Raw,
		})
		return
	}

	logger.Error("Erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}
