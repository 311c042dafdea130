package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fintradify/attendance-backend-go/internal/domain/salaryslip"
	"github.com/fintradify/attendance-backend-go/internal/handler/http/response"
)

type SalarySlipHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetMySlips(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type salarySlipHandlerImpl struct {
	salarySlipService salaryslip.SalarySlipService
}

func NewSalarySlipHandler(salarySlipService salaryslip.SalarySlipService) SalarySlipHandler {
	return &salarySlipHandlerImpl{
		salarySlipService: salarySlipService,
	}
}

// Create implements SalarySlipHandler.
func (h *salarySlipHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req salaryslip.CreateSalarySlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salarySlipService.CreateSlip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary slip created", result)
}

// List implements SalarySlipHandler.
func (h *salarySlipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.salarySlipService.ListSlips(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMySlips implements SalarySlipHandler.
func (h *salarySlipHandlerImpl) GetMySlips(w http.ResponseWriter, r *http.Request) {
	result, err := h.salarySlipService.GetMySlips(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Download implements SalarySlipHandler.
func (h *salarySlipHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	filename, pdf, err := h.salarySlipService.DownloadSlip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, filename, "application/pdf", pdf)
}
