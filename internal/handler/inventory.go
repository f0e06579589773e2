package handler

import (
	"net/http"

	"github.com/osse101/GildedRose_Go/internal/catalog"
	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/simulation"
)

// Advance request bounds. The validate tags on AdvanceRequest must match.
const (
	DefaultAdvanceDays = 1
	MaxAdvanceDays     = 3650
	MaxAdvanceItems    = 1000
)

// AdvanceRequest carries the stock to age and how many days to age it
type AdvanceRequest struct {
	Days  int             `json:"days" validate:"omitempty,min=1,max=3650"`
	Items []catalog.Entry `json:"items" validate:"required,min=1,max=1000,dive"`
}

// AdvanceResponse is the stock at the end of the last simulated day
type AdvanceResponse struct {
	Day   int                   `json:"day"`
	Items []simulation.ItemView `json:"items"`
}

// HandleAdvanceInventory ages the posted items by the requested number of days
func HandleAdvanceInventory(svc simulation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AdvanceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Advance inventory"); err != nil {
			return
		}
		if req.Days == 0 {
			req.Days = DefaultAdvanceDays
		}

		items := make([]domain.Item, 0, len(req.Items))
		for i, entry := range req.Items {
			item, err := entry.ToItem()
			if err != nil {
				log.Warn("Invalid item in advance request", "index", i, "error", err)
				status, msg := mapServiceErrorToUserMessage(err)
				respondError(w, status, msg)
				return
			}
			items = append(items, item)
		}

		last, err := svc.Final(r.Context(), items, req.Days)
		if err != nil {
			log.Error("Failed to advance inventory", "error", err, "days", req.Days)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Inventory advanced", "items", len(items), "days", req.Days)

		respondJSON(w, http.StatusOK, AdvanceResponse{
			Day:   last.Day,
			Items: simulation.ViewsOf(last.Items),
		})
	}
}
