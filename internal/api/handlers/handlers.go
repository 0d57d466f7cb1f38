package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/altolabs/cashplan/internal/api/middleware"
	"github.com/altolabs/cashplan/internal/classify"
	"github.com/altolabs/cashplan/internal/domain"
	"github.com/altolabs/cashplan/internal/explain"
	"github.com/altolabs/cashplan/internal/planner"
)

// PlanHandler handles plan orchestration endpoints.
type PlanHandler struct {
	engine         *planner.Engine
	explainer      explain.Explainer
	explainTimeout time.Duration
	log            zerolog.Logger
}

// NewPlanHandler creates a new plan handler. explainer may be nil, in which
// case the deterministic explanation is always used.
func NewPlanHandler(engine *planner.Engine, explainer explain.Explainer, explainTimeout time.Duration, log zerolog.Logger) *PlanHandler {
	return &PlanHandler{
		engine:         engine,
		explainer:      explainer,
		explainTimeout: explainTimeout,
		log:            log,
	}
}

// OrchestratePlan handles POST /orchestrate/plan. Intent routing lives here:
// the question intent answers with guardrail text only, every planning intent
// runs the rescheduling engine. An explanation override, when configured,
// may replace the explanation bullets but never the changes or metrics.
func (h *PlanHandler) OrchestratePlan(w http.ResponseWriter, r *http.Request) {
	var payload domain.RequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var plan domain.Plan
	if payload.Intent.Name == domain.IntentQuestion {
		plan = h.engine.AnswerQuestion(payload)
	} else {
		plan = h.engine.BuildPlan(payload)
	}

	if h.explainer != nil {
		plan.Explain = h.overrideExplain(r.Context(), payload, plan.Explain)
	}

	middleware.WriteJSON(w, http.StatusOK, plan)
}

// overrideExplain asks the configured explainer for alternate bullets and
// falls back to the deterministic ones on any failure.
func (h *PlanHandler) overrideExplain(ctx context.Context, payload domain.RequestPayload, fallback []string) []string {
	ctx, cancel := context.WithTimeout(ctx, h.explainTimeout)
	defer cancel()

	bullets, err := h.explainer.Explain(ctx, explain.Summarize(payload))
	if err != nil {
		h.log.Warn().Err(err).Msg("Explanation override failed, using deterministic explanation")
		return fallback
	}
	if len(bullets) == 0 {
		return fallback
	}
	return bullets
}

// IngestHandler handles transaction feed ingestion endpoints.
type IngestHandler struct {
	log zerolog.Logger
}

// NewIngestHandler creates a new ingest handler.
func NewIngestHandler(log zerolog.Logger) *IngestHandler {
	return &IngestHandler{log: log}
}

// TransformFeed handles POST /ingest/plaid-transform. It classifies the
// aggregator feed into cash events and composes a full agent payload around
// them, carrying the classifier's suggested default policy. Cards and BNPL
// plans are not part of the feed and start empty.
func (h *IngestHandler) TransformFeed(w http.ResponseWriter, r *http.Request) {
	var feed domain.TransactionFeed
	if err := json.NewDecoder(r.Body).Decode(&feed); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cashIn, cashOut := classify.Transactions(feed)

	h.log.Info().
		Int("added", len(feed.Added)).
		Int("cash_in", len(cashIn)).
		Int("cash_out", len(cashOut)).
		Msg("Transaction feed classified")

	payload := domain.RequestPayload{
		User:      domain.User{ID: "usr_demo", TZ: "America/New_York", Currency: "USD"},
		Policy:    classify.DefaultPolicy(),
		CashIn:    cashIn,
		CashOut:   cashOut,
		Cards:     []domain.Card{},
		BNPLPlans: []map[string]any{},
		Intent: domain.Intent{
			Name:   domain.IntentFeeProof,
			Params: map[string]any{"days": 30, "lock": []string{"Rent"}},
		},
	}

	middleware.WriteJSON(w, http.StatusOK, payload)
}
