package handler

import (
	"net/http"
	"strconv"

	"hospital-appointment-service/internal/usecase"
	"hospital-appointment-service/pkg/response"

	"github.com/gorilla/mux"
)

type ActivityEventHandler struct {
	eventUsecase usecase.ActivityEventUsecase
}

func NewActivityEventHandler(eventUsecase usecase.ActivityEventUsecase) *ActivityEventHandler {
	return &ActivityEventHandler{
		eventUsecase: eventUsecase,
	}
}

func (h *ActivityEventHandler) GetActivityEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid activity event ID", nil)
		return
	}

	event, err := h.eventUsecase.GetActivityEvent(r.Context(), eventID)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get activity event")
		return
	}

	response.Success(w, http.StatusOK, "Activity event retrieved successfully", event)
}

// GetActivityEvents accepts an optional ?type= filter
func (h *ActivityEventHandler) GetActivityEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventUsecase.GetActivityEvents(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		response.InternalServerError(w, "Failed to get activity events")
		return
	}

	response.Success(w, http.StatusOK, "Activity events retrieved successfully", events)
}
