package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/attendance-insight-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AppraisalHandler interface {
	Appraise(w http.ResponseWriter, r *http.Request)
}

type appraisalHandlerImpl struct {
	appraisalService appraisal.AppraisalService
}

func NewAppraisalHandler(appraisalService appraisal.AppraisalService) AppraisalHandler {
	return &appraisalHandlerImpl{
		appraisalService: appraisalService,
	}
}

// Appraise implements AppraisalHandler. The evaluation period is selected
// with the same slicer query parameters as the ledger reads.
func (h *appraisalHandlerImpl) Appraise(w http.ResponseWriter, r *http.Request) {
	snapshotID := chi.URLParam(r, "snapshotID")

	filter, err := parseFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req appraisal.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode appraisal request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.appraisalService.Appraise(r.Context(), snapshotID, filter, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
