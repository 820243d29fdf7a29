package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
	"github.com/osse101/ItemRandomizer_Go/internal/logger"
	"github.com/osse101/ItemRandomizer_Go/internal/randomizer"
)

// ScenariosResponse lists the available scenarios and the live randomizers
type ScenariosResponse struct {
	Scenarios []domain.Scenario   `json:"scenarios"`
	Active    domain.Scenario     `json:"active,omitempty"`
	Contexts  []randomizer.Status `json:"contexts"`
}

// PreviewRequest carries the preview path and query parameters
type PreviewRequest struct {
	Scenario string `validate:"required,max=64,scenario"`
	Strategy string `validate:"required,strategy"`
}

// PreviewSlotResponse is one pool position before and after randomization
type PreviewSlotResponse struct {
	Position int         `json:"position"`
	Source   ItemSummary `json:"source"`
	Result   ItemSummary `json:"result"`
	Changed  bool        `json:"changed"`
}

// PreviewResponse is a preview report with items resolved for display
type PreviewResponse struct {
	Scenario   domain.Scenario       `json:"scenario"`
	Strategy   randomizer.Kind       `json:"strategy"`
	Changed    int                   `json:"changed"`
	Slots      []PreviewSlotResponse `json:"slots"`
	Categories map[string]int        `json:"categories"`
}

// HandleListScenarios returns every scenario with a pool file and the state of
// each randomization context
func (h *Handler) HandleListScenarios() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scenarios, err := h.svc.Scenarios()
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgScenariosFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListScenariosFailed)
			return
		}

		// Idle until a scenario is loaded
		active, _ := h.svc.Scenario()

		respondJSON(w, http.StatusOK, ScenariosResponse{
			Scenarios: scenarios,
			Active:    active,
			Contexts:  h.svc.Status(),
		})
	}
}

// HandlePreview runs a fresh strategy over a scenario's default pool.
// The strategy query parameter defaults to default_world.
func (h *Handler) HandlePreview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		req := PreviewRequest{
			Scenario: chi.URLParam(r, ParamScenario),
			Strategy: strings.TrimSpace(r.URL.Query().Get(QueryStrategy)),
		}
		if req.Strategy == "" {
			req.Strategy = string(randomizer.KindDefaultWorld)
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			fields := FormatValidationError(err)
			// Include the closest strategy name when there is one
			if _, ok := fields[QueryStrategy]; ok {
				if _, kindErr := randomizer.ParseKind(req.Strategy); kindErr != nil {
					fields[QueryStrategy] = kindErr.Error()
				}
			}
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: fields,
			})
			return
		}

		kind, err := randomizer.ParseKind(req.Strategy)
		if err != nil {
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		preview, err := h.svc.Preview(r.Context(), domain.Scenario(req.Scenario), kind)
		if err != nil {
			status, msg := mapServiceError(err)
			if status == http.StatusInternalServerError {
				log.Error(LogMsgPreviewFailed, "scenario", req.Scenario, "strategy", kind, "error", err)
				msg = ErrMsgPreviewFailed
			}
			respondError(w, status, msg)
			return
		}

		resp := h.buildPreviewResponse(preview)
		log.Debug(LogMsgPreviewServed, "scenario", req.Scenario, "strategy", kind, "changed", resp.Changed)
		respondJSON(w, http.StatusOK, resp)
	}
}

func (h *Handler) buildPreviewResponse(p *randomizer.Preview) PreviewResponse {
	catalog := h.svc.Catalog()
	resp := PreviewResponse{
		Scenario:   p.Scenario,
		Strategy:   p.Strategy,
		Changed:    p.Changed,
		Slots:      make([]PreviewSlotResponse, 0, len(p.Slots)),
		Categories: make(map[string]int),
	}
	for _, slot := range p.Slots {
		result := summarize(catalog, slot.Result)
		resp.Slots = append(resp.Slots, PreviewSlotResponse{
			Position: slot.Position,
			Source:   summarize(catalog, slot.Source),
			Result:   result,
			Changed:  slot.Source != slot.Result,
		})
		if result.Category != "" {
			resp.Categories[result.Category]++
		}
	}
	return resp
}
