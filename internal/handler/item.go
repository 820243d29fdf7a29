package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/repository"
)

// ItemSummary is an item as shown in diagnostics reports
type ItemSummary struct {
	ID       domain.ItemID `json:"id"`
	Name     string        `json:"name"`
	Category string        `json:"category,omitempty"`
}

// ItemResponse is the full catalog record for one item
type ItemResponse struct {
	ItemSummary
	Type         string   `json:"type"`
	Capabilities []string `json:"capabilities"`
}

// categoryTitle renders an inventory type such as "questitem" for display.
// cases.Caser is stateful, so one is built per call.
func categoryTitle(itemType string) string {
	return cases.Title(language.English).String(itemType)
}

// summarize describes id, falling back to the raw identifier for unknown items
func summarize(catalog repository.Catalog, id domain.ItemID) ItemSummary {
	item, err := catalog.GetItem(id)
	if err != nil {
		return ItemSummary{ID: id, Name: id.String()}
	}
	return ItemSummary{ID: id, Name: item.Name, Category: categoryTitle(item.Type)}
}

// HandleGetItem returns the catalog record for the {id} path parameter
func (h *Handler) HandleGetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := domain.ParseItemID(chi.URLParam(r, ParamItemID))
		if err != nil {
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		catalog := h.svc.Catalog()
		item, err := catalog.GetItem(id)
		if err != nil {
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, ItemResponse{
			ItemSummary:  summarize(catalog, item.ID),
			Type:         item.Type,
			Capabilities: item.CapabilityNames(),
		})
	}
}
