package export_lanes

import (
	"io"
	"net/http"

	"github.com/m04kA/SMC-PoolService/internal/api/handlers"
)

const exportFileName = "lanes.csv"

type Handler struct {
	service LaneService
	logger  Logger
}

func NewHandler(service LaneService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/lanes/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	csv, err := h.service.ExportCSV(r.Context())
	if err != nil {
		h.logger.Error("GET /lanes/export - Failed to export lanes: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, csv); err != nil {
		h.logger.Warn("GET /lanes/export - Failed to write response: %v", err)
	}
}
