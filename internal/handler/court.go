// internal/handler/court.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arenalabs/courtbook/internal/service"
)

type CourtHandler struct {
	courts       *service.CourtService
	availability *service.AvailabilityService
	bookings     *service.BookingService
}

func NewCourtHandler(
	courts *service.CourtService,
	availability *service.AvailabilityService,
	bookings *service.BookingService,
) *CourtHandler {
	return &CourtHandler{courts: courts, availability: availability, bookings: bookings}
}

func (h *CourtHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Patch("/", h.Update)
		r.Delete("/", h.Deactivate)

		r.Get("/availability", h.GetSchedule)
		r.Post("/availability", h.SetAvailability)
		r.Get("/availability/dates", h.SpecificDates)
		r.Post("/availability/replicate", h.Replicate)
		r.Post("/availability/copy/{sourceId}", h.CopyFrom)
		r.Post("/availability/slot", h.AddTimeSlot)
		r.Delete("/availability/slot", h.RemoveTimeSlot)
		r.Post("/premium-slots", h.SetPremiumSlots)

		r.Get("/available-times", h.AvailableTimes)
	})
	return r
}

func (h *CourtHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	includeInactive := r.URL.Query().Get("includeInactive") == "true"
	courts, err := h.courts.FindAll(r.Context(), orgID, includeInactive)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, courts)
}

func (h *CourtHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input service.CreateCourtInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	court, err := h.courts.Create(r.Context(), orgID, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, court)
}

func (h *CourtHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid court id")
		return
	}

	court, err := h.courts.FindByID(r.Context(), orgID, id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, court)
}

func (h *CourtHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid court id")
		return
	}

	var input service.UpdateCourtInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	court, err := h.courts.Update(r.Context(), orgID, id, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, court)
}

func (h *CourtHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid court id")
		return
	}

	if err := h.courts.Deactivate(r.Context(), orgID, id); err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type setAvailabilityRequest struct {
	Days         []service.DayRules `json:"days"`
	SpecificDate string             `json:"specificDate"`
}

func (h *CourtHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid court id")
		return
	}

	var req setAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	schedule, err := h.availability.SetAvailability(r.Context(), orgID, id, req.Days, req.SpecificDate)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, schedule)
}

func (h *CourtHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid court id")
		return
	}

	schedule, err := h.availability.GetSchedule(r.Context(), orgID, id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, schedule)
}

func (h *CourtHandler) SpecificDates(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid court id")
		return
	}

	dates, err := h.availability.SpecificDates(r.Context(), orgID, id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string][]string{"dates": dates})
}

type replicateRequest struct {
	WeekdaySlots   []string `json:"weekdaySlots"`
	WeekendSlots   []string `json:"weekendSlots"`
	WeekdayPremium []string `json:"weekdayPremiumSlots"`
	WeekendPremium []string `json:"weekendPremiumSlots"`
}

func (h *CourtHandler) Replicate(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid court id")
		return
	}

	var req replicateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	schedule, err := h.availability.ReplicateWeekdayWeekend(r.Context(), orgID, id,
		req.WeekdaySlots, req.WeekendSlots, req.WeekdayPremium, req.WeekendPremium)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, schedule)
}

func (h *CourtHandler) CopyFrom(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	targetID, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid court id")
		return
	}
	sourceID, err := pathUUID(r, "sourceId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid source court id")
		return
	}

	copied, err := h.availability.CopyFrom(r.Context(), orgID, sourceID, targetID)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int{"copied": copied})
}

type timeSlotRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`
	TimeSlot  string `json:"timeSlot"`
}

func (h *CourtHandler) AddTimeSlot(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid court id")
		return
	}

	var req timeSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.availability.AddTimeSlot(r.Context(), orgID, id, req.DayOfWeek, req.TimeSlot); err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *CourtHandler) RemoveTimeSlot(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid court id")
		return
	}

	var req timeSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.availability.RemoveTimeSlot(r.Context(), orgID, id, req.DayOfWeek, req.TimeSlot); err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type premiumSlotsRequest struct {
	Slots     []service.PremiumSlotRef `json:"slots"`
	IsPremium bool                     `json:"isPremium"`
}

func (h *CourtHandler) SetPremiumSlots(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid court id")
		return
	}

	var req premiumSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.availability.SetPremium(r.Context(), orgID, id, req.Slots, req.IsPremium)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

// AvailableTimes is the booking calendar view: configured slots overlaid
// with the day's bookings.
func (h *CourtHandler) AvailableTimes(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid court id")
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		respondWithError(w, http.StatusBadRequest, "date query parameter is required")
		return
	}

	view, err := h.bookings.FindAvailability(r.Context(), orgID, id, date)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}
