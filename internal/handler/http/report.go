package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/protrack-ops/floor-backend-go/internal/domain/report"
	"github.com/protrack-ops/floor-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ArchiveCSV(w http.ResponseWriter, r *http.Request)
	ArchiveXLSX(w http.ResponseWriter, r *http.Request)
	ShareAttendance(w http.ResponseWriter, r *http.Request)
	ShareProduction(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// ArchiveCSV implements ReportHandler.
func (h *reportHandlerImpl) ArchiveCSV(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.ArchiveCSV(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Download(w, export.Filename, export.ContentType, export.Data)
}

// ArchiveXLSX implements ReportHandler.
func (h *reportHandlerImpl) ArchiveXLSX(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.ArchiveXLSX(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Download(w, export.Filename, export.ContentType, export.Data)
}

// ShareAttendance implements ReportHandler.
func (h *reportHandlerImpl) ShareAttendance(w http.ResponseWriter, r *http.Request) {
	share, err := h.reportService.ShareAttendance(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, share)
}

// ShareProduction implements ReportHandler.
func (h *reportHandlerImpl) ShareProduction(w http.ResponseWriter, r *http.Request) {
	share, err := h.reportService.ShareProduction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, share)
}
