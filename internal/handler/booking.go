// internal/handler/booking.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arenalabs/courtbook/internal/model"
	"github.com/arenalabs/courtbook/internal/repository"
	"github.com/arenalabs/courtbook/internal/service"
	"github.com/arenalabs/courtbook/internal/timeslot"
)

type BookingHandler struct {
	bookings *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/mine", h.ListMine)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Patch("/", h.Update)
		r.Delete("/", h.Cancel)
		r.Get("/price", h.Price)
	})
	return r
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	userID, ok := userIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input service.CreateBookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookings.Create(r.Context(), orgID, userID, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	filter, err := bookingFilterFrom(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	bookings, err := h.bookings.ListAll(r.Context(), orgID, filter)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	userID, ok := userIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	bookings, err := h.bookings.ListMine(r.Context(), orgID, userID)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	booking, err := h.bookings.FindByID(r.Context(), orgID, id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var input service.UpdateBookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookings.Update(r.Context(), orgID, id, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	booking, err := h.bookings.Cancel(r.Context(), orgID, id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Price(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	booking, err := h.bookings.FindByID(r.Context(), orgID, id)
	if err != nil {
		handleError(w, err)
		return
	}
	price, err := h.bookings.PriceFor(r.Context(), orgID, booking)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]*float64{"price": price})
}

func bookingFilterFrom(r *http.Request) (repository.BookingFilter, error) {
	var filter repository.BookingFilter
	q := r.URL.Query()

	if v := q.Get("courtId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, err
		}
		filter.CourtID = id
	}
	if v := q.Get("userId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, err
		}
		filter.UserID = id
	}
	if v := q.Get("date"); v != "" {
		date, err := timeslot.ParseDate(v)
		if err != nil {
			return filter, err
		}
		filter.Date = date
	}
	if v := q.Get("status"); v != "" {
		filter.Status = model.BookingStatus(v)
	}
	return filter, nil
}
