// internal/handler/class.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arenalabs/courtbook/internal/service"
)

type ClassHandler struct {
	classes *service.ClassService
}

func NewClassHandler(classes *service.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

func (h *ClassHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Patch("/", h.Update)
		r.Delete("/", h.Deactivate)
		r.Post("/students/{studentId}", h.AddStudent)
		r.Delete("/students/{studentId}", h.RemoveStudent)
	})
	return r
}

func (h *ClassHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	includeInactive := r.URL.Query().Get("includeInactive") == "true"
	classes, err := h.classes.FindAll(r.Context(), orgID, includeInactive)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, classes)
}

func (h *ClassHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input service.CreateClassInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	class, err := h.classes.Create(r.Context(), orgID, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, class)
}

func (h *ClassHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid class id")
		return
	}

	class, err := h.classes.FindByID(r.Context(), orgID, id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, class)
}

func (h *ClassHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid class id")
		return
	}

	var input service.UpdateClassInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	class, err := h.classes.Update(r.Context(), orgID, id, input)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, class)
}

func (h *ClassHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid class id")
		return
	}

	if err := h.classes.Deactivate(r.Context(), orgID, id); err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *ClassHandler) AddStudent(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	classID, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid class id")
		return
	}
	studentID, err := pathUUID(r, "studentId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid student id")
		return
	}

	class, err := h.classes.AddStudent(r.Context(), orgID, classID, studentID)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, class)
}

func (h *ClassHandler) RemoveStudent(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFrom(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	classID, err := pathUUID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid class id")
		return
	}
	studentID, err := pathUUID(r, "studentId")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid student id")
		return
	}

	class, err := h.classes.RemoveStudent(r.Context(), orgID, classID, studentID)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, class)
}
