package http

import (
	"encoding/json"
	"net/http"

	"github.com/fintradify/attendance-backend-go/internal/domain/attendance"
	"github.com/fintradify/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Punch implements AttendanceHandler.
func (h *attendanceHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Punch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListAttendance(r.Context(), rangeFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetMyAttendance(r.Context(), rangeFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func rangeFilterFromQuery(r *http.Request) attendance.RangeFilter {
	var filter attendance.RangeFilter
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	return filter
}
