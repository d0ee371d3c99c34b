package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/eren460540/ZyraZoo/internal/catalog"
	"github.com/eren460540/ZyraZoo/internal/service"
)

type CatalogHandler struct {
	catalog          *catalog.Catalog
	menagerieService *service.MenagerieService
}

func NewCatalogHandler(cat *catalog.Catalog, menagerieService *service.MenagerieService) *CatalogHandler {
	return &CatalogHandler{catalog: cat, menagerieService: menagerieService}
}

func (h *CatalogHandler) ListAnimals(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"animals": h.catalog.Animals()})
}

func (h *CatalogHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"foods": h.catalog.Foods()})
}

// Index exposes the global per-species counters alongside spawn chances
func (h *CatalogHandler) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := h.menagerieService.Index(r.Context())
	if err != nil {
		log.Printf("ERROR [CatalogHandler.Index]: %v", err)
		http.Error(w, "Failed to load index", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"entries": entries})
}
