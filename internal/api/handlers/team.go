package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/eren460540/ZyraZoo/internal/api/middleware"
	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/service"
	"github.com/go-chi/chi/v5"
)

type TeamHandler struct {
	teamService *service.TeamService
}

func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

type setSlotRequest struct {
	Animal   string `json:"animal"`
	Mutation string `json:"mutation"`
}

type equipFoodRequest struct {
	Food string `json:"food"`
}

func (h *TeamHandler) View(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	views, err := h.teamService.View(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [TeamHandler.View]: %v", err)
		http.Error(w, "Failed to load team", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"slots": views})
}

func (h *TeamHandler) SetSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		http.Error(w, "Invalid position", http.StatusBadRequest)
		return
	}

	var req setSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.teamService.SetSlot(r.Context(), userID, position, req.Animal, req.Mutation)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPosition),
			errors.Is(err, service.ErrUnknownAnimal),
			errors.Is(err, domain.ErrInvalidMutation),
			errors.Is(err, service.ErrWrongRole):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrAnimalNotOwned):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, service.ErrProfileNotFound):
			http.Error(w, "Profile not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [TeamHandler.SetSlot]: %v", err)
			http.Error(w, "Failed to set slot", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *TeamHandler) ClearSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		http.Error(w, "Invalid position", http.StatusBadRequest)
		return
	}

	if err := h.teamService.ClearSlot(r.Context(), userID, position); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPosition):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrProfileNotFound):
			http.Error(w, "Profile not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [TeamHandler.ClearSlot]: %v", err)
			http.Error(w, "Failed to clear slot", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandler) EquipFood(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		http.Error(w, "Invalid position", http.StatusBadRequest)
		return
	}

	var req equipFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.teamService.EquipFood(r.Context(), userID, position, req.Food)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPosition), errors.Is(err, service.ErrUnknownFood):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrSlotEmpty), errors.Is(err, service.ErrFoodNotOwned):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, service.ErrProfileNotFound):
			http.Error(w, "Profile not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [TeamHandler.EquipFood]: %v", err)
			http.Error(w, "Failed to equip food", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *TeamHandler) UnequipFood(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		http.Error(w, "Invalid position", http.StatusBadRequest)
		return
	}

	if err := h.teamService.UnequipFood(r.Context(), userID, position); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPosition):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrSlotEmpty):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, service.ErrProfileNotFound):
			http.Error(w, "Profile not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [TeamHandler.UnequipFood]: %v", err)
			http.Error(w, "Failed to unequip food", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
