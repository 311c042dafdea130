package http

import (
	"net/http"

	"github.com/fintradify/attendance-backend-go/internal/domain/report"
	"github.com/fintradify/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	Range(w http.ResponseWriter, r *http.Request)
	MyRange(w http.ResponseWriter, r *http.Request)
	RangeCSV(w http.ResponseWriter, r *http.Request)
	MyRangeCSV(w http.ResponseWriter, r *http.Request)
	RangeExcel(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Overview implements ReportHandler.
func (h *reportHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Overview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Range implements ReportHandler.
func (h *reportHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Range(r.Context(), rangeRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyRange implements ReportHandler.
func (h *reportHandlerImpl) MyRange(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.MyRange(r.Context(), rangeRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RangeCSV implements ReportHandler.
func (h *reportHandlerImpl) RangeCSV(w http.ResponseWriter, r *http.Request) {
	filename, data, err := h.reportService.RangeCSV(r.Context(), rangeRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, filename, "text/csv; charset=utf-8", data)
}

// MyRangeCSV implements ReportHandler.
func (h *reportHandlerImpl) MyRangeCSV(w http.ResponseWriter, r *http.Request) {
	filename, data, err := h.reportService.MyRangeCSV(r.Context(), rangeRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, filename, "text/csv; charset=utf-8", data)
}

// RangeExcel implements ReportHandler.
func (h *reportHandlerImpl) RangeExcel(w http.ResponseWriter, r *http.Request) {
	filename, data, err := h.reportService.RangeExcel(r.Context(), rangeRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func rangeRequestFromQuery(r *http.Request) report.RangeRequest {
	return report.RangeRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
}
