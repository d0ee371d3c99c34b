package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/eren460540/ZyraZoo/internal/api/middleware"
	"github.com/eren460540/ZyraZoo/internal/config"
	"github.com/eren460540/ZyraZoo/internal/domain"
	"github.com/eren460540/ZyraZoo/internal/engine"
	"github.com/eren460540/ZyraZoo/internal/service"
)

type BattleHandler struct {
	battleService *service.BattleService
	cfg           *config.Config
}

func NewBattleHandler(battleService *service.BattleService, cfg *config.Config) *BattleHandler {
	return &BattleHandler{battleService: battleService, cfg: cfg}
}

func (h *BattleHandler) Battle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	view, err := h.battleService.Battle(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBattleOnCooldown):
			http.Error(w, err.Error(), http.StatusTooManyRequests)
		case errors.Is(err, domain.ErrIncompleteTeam), errors.Is(err, domain.ErrRoleMismatch):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, service.ErrProfileNotFound):
			http.Error(w, "Profile not found", http.StatusNotFound)
		case errors.Is(err, engine.ErrSearchExhausted):
			log.Printf("ERROR [BattleHandler.Battle]: %v", err)
			http.Error(w, "No opponent found, try again", http.StatusServiceUnavailable)
		default:
			log.Printf("ERROR [BattleHandler.Battle]: %v", err)
			http.Error(w, "Failed to battle", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

func (h *BattleHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := h.cfg.HistoryPageSize
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= h.cfg.HistoryPageSize {
			limit = parsed
		}
	}
	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	records, err := h.battleService.History(r.Context(), userID, limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [BattleHandler.History]: %v", err)
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"battles": records,
		"limit":   limit,
		"offset":  offset,
	})
}
