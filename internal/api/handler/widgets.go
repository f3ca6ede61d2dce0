package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/earnings-estimator-api/internal/domain"
	"github.com/vfg2006/earnings-estimator-api/internal/usecases/widget"
	"github.com/vfg2006/earnings-estimator-api/pkg/apiErrors"
)

type UpdateFieldRequest struct {
	Value domain.NumericText `json:"value"`
}

func MountWidget(service widget.WidgetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, err := service.Mount(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.Header().Set("Location", "/v1/widgets/"+view.ID)
		writeJSON(w, r, http.StatusCreated, view)
	})
}

func GetWidget(service widget.WidgetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		view, err := service.View(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}

// UpdateWidgetField recebe o texto digitado em um campo e devolve os painéis recalculados
func UpdateWidgetField(service widget.WidgetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		var req UpdateFieldRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		view, err := service.UpdateField(r.Context(), params.ByName("id"), params.ByName("field"), string(req.Value))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}

func ChangeDisclaimer(service widget.WidgetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		view, err := service.ApplyDisclaimer(r.Context(), params.ByName("id"), params.ByName("action"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}

func UnmountWidget(service widget.WidgetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Unmount(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
