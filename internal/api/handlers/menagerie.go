package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/eren460540/ZyraZoo/internal/api/middleware"
	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/economy"
	"github.com/eren460540/ZyraZoo/internal/service"
)

type MenagerieHandler struct {
	menagerieService *service.MenagerieService
}

func NewMenagerieHandler(menagerieService *service.MenagerieService) *MenagerieHandler {
	return &MenagerieHandler{menagerieService: menagerieService}
}

type fuseRequest struct {
	Animal   string `json:"animal"`
	Mutation string `json:"mutation"`
}

type sellAnimalsRequest struct {
	Animal   string `json:"animal"`
	Mutation string `json:"mutation"`
	Amount   int    `json:"amount"`
}

type sellFoodRequest struct {
	Food   string `json:"food"`
	Amount int    `json:"amount"`
}

func (h *MenagerieHandler) Hunt(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.menagerieService.Hunt(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHuntOnCooldown):
			http.Error(w, err.Error(), http.StatusTooManyRequests)
		case errors.Is(err, service.ErrNotEnoughCoins), errors.Is(err, service.ErrNotEnoughEnergy):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, service.ErrProfileNotFound):
			http.Error(w, "Profile not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [MenagerieHandler.Hunt]: %v", err)
			http.Error(w, "Failed to hunt", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *MenagerieHandler) Fuse(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req fuseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.menagerieService.Fuse(r.Context(), userID, req.Animal, req.Mutation)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownAnimal),
			errors.Is(err, domain.ErrInvalidMutation),
			errors.Is(err, economy.ErrTerminalMutation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrNotEnoughToFuse):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, service.ErrProfileNotFound):
			http.Error(w, "Profile not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [MenagerieHandler.Fuse]: %v", err)
			http.Error(w, "Failed to fuse", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *MenagerieHandler) SellAnimals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req sellAnimalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.menagerieService.SellAnimals(r.Context(), userID, req.Animal, req.Mutation, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownAnimal), errors.Is(err, domain.ErrInvalidMutation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrNotEnoughToSell):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, service.ErrProfileNotFound):
			http.Error(w, "Profile not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [MenagerieHandler.SellAnimals]: %v", err)
			http.Error(w, "Failed to sell animals", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *MenagerieHandler) SellFood(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req sellFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.menagerieService.SellFood(r.Context(), userID, req.Food, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownFood):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrFoodEquipped), errors.Is(err, service.ErrNotEnoughToSell):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, service.ErrProfileNotFound):
			http.Error(w, "Profile not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [MenagerieHandler.SellFood]: %v", err)
			http.Error(w, "Failed to sell food", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *MenagerieHandler) Zoo(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.menagerieService.Zoo(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [MenagerieHandler.Zoo]: %v", err)
		http.Error(w, "Failed to load zoo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"animals": entries})
}

func (h *MenagerieHandler) Foods(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	holdings, err := h.menagerieService.Foods(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [MenagerieHandler.Foods]: %v", err)
		http.Error(w, "Failed to load foods", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"foods": holdings})
}
