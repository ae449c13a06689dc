// Package engine composes the evaluator, estimator, cascade and conflict
// resolvers and the action plan into a single entitlement bundle. A
// resolution is a pure function of the request and the static catalogue;
// the only outward call is the optional batched valuation fetch. Engines
// are safe for concurrent use.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"benefits-engine/internal/cascade"
	"benefits-engine/internal/catalogue"
	"benefits-engine/internal/conflict"
	"benefits-engine/internal/estimate"
	"benefits-engine/internal/metrics"
	"benefits-engine/internal/model"
	"benefits-engine/internal/plan"
	"benefits-engine/internal/rules"
)

// Valuer fetches precise figures from the external valuation service. It
// returns nil on any failure; the engine then keeps its heuristic
// estimates.
type Valuer interface {
	Fetch(ctx context.Context, person *model.PersonData, schemeIDs []string) *model.ExternalValuation
}

// Engine resolves screening requests against a loaded catalogue.
type Engine struct {
	cat    *catalogue.Catalogue
	valuer Valuer
	log    *zap.Logger
}

// New builds an Engine. valuer may be nil when no valuation service is
// configured.
func New(cat *catalogue.Catalogue, valuer Valuer, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{cat: cat, valuer: valuer, log: log}
}

// Screen resolves one request into a bundle. It never fails: partial
// person data yields fewer or lower-confidence entitlements, and a bundle
// with zero eligible schemes is a valid result.
func (e *Engine) Screen(ctx context.Context, req *model.ScreeningRequest) *model.ScreeningResponse {
	start := time.Now()
	person := &req.Person

	candidates := e.cat.CandidatesFor(req.Situations, person.Nation)
	results := rules.Evaluate(candidates, person, req.Situations, e.cat.Rates)

	eligibleIDs := make([]string, 0, len(results))
	confidence := make(map[string]string, len(results))
	for _, r := range results {
		eligibleIDs = append(eligibleIDs, r.ID)
		confidence[r.ID] = r.Confidence
	}

	var ext *model.ExternalValuation
	if e.valuer != nil && len(eligibleIDs) > 0 {
		ext = e.valuer.Fetch(ctx, person, eligibleIDs)
	}

	entitlements := make(map[string]model.Entitlement, len(eligibleIDs))
	for _, id := range eligibleIDs {
		def := e.cat.Scheme(id)
		entitlements[id] = model.Entitlement{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Value:       estimate.Estimate(def, person, e.cat.Rates, ext),
			Confidence:  confidence[id],
			Difficulty:  def.Difficulty,
			ApplyMethod: def.ApplyMethod,
			ApplyURL:    def.ApplyURL,
			Documents:   def.Documents,
			Timeline:    def.Timeline,
		}
	}

	resolver := &cascade.Resolver{
		Definition: e.cat.Scheme,
		Edges:      e.cat.Dependencies(),
		HighValue:  func(id string) int { return entitlements[id].Value.High },
		Order:      e.cat.Order,
	}
	partition := resolver.Resolve(eligibleIDs)

	bundle := model.Bundle{
		GatewayEntitlements:     make([]model.Entitlement, 0, len(partition.Gateways)),
		CascadedGroups:          make([]model.CascadedGroup, 0, len(partition.Groups)),
		IndependentEntitlements: make([]model.Entitlement, 0, len(partition.Independent)),
		Conflicts:               []model.ConflictResolution{},
		ActionPlan:              []model.ActionPlanStep{},
	}

	for _, id := range partition.Gateways {
		ent := entitlements[id]
		if n := resolver.DependentCount(id, eligibleIDs); n > 0 {
			ent.WhyThisMatters = fmt.Sprintf(
				"An award of %s can unlock %d more of your entitlements, so it is worth claiming first.",
				ent.Name, n)
		}
		bundle.GatewayEntitlements = append(bundle.GatewayEntitlements, ent)
	}

	for _, g := range partition.Groups {
		group := model.CascadedGroup{
			GatewayID:    g.GatewayID,
			GatewayName:  entitlements[g.GatewayID].Name,
			Entitlements: make([]model.Entitlement, 0, len(g.Dependents)),
		}
		for _, d := range g.Dependents {
			group.Entitlements = append(group.Entitlements, entitlements[d])
		}
		bundle.CascadedGroups = append(bundle.CascadedGroups, group)
	}

	for _, id := range partition.Independent {
		bundle.IndependentEntitlements = append(bundle.IndependentEntitlements, entitlements[id])
	}

	// The cascade partition is total, so summing the three partitions
	// counts every eligible scheme exactly once.
	for _, ent := range bundle.GatewayEntitlements {
		bundle.TotalValue.Low += ent.Value.Low
		bundle.TotalValue.High += ent.Value.High
	}
	for _, g := range bundle.CascadedGroups {
		for _, ent := range g.Entitlements {
			bundle.TotalValue.Low += ent.Value.Low
			bundle.TotalValue.High += ent.Value.High
		}
	}
	for _, ent := range bundle.IndependentEntitlements {
		bundle.TotalValue.Low += ent.Value.Low
		bundle.TotalValue.High += ent.Value.High
	}

	conflicts := (&conflict.Resolver{Rates: e.cat.Rates, Definition: e.cat.Scheme}).
		Resolve(eligibleIDs, e.cat.Conflicts(), person, ext)
	if conflicts != nil {
		bundle.Conflicts = conflicts
	}

	bundle.ActionPlan = plan.Build(
		bundle.GatewayEntitlements,
		bundle.CascadedGroups,
		bundle.IndependentEntitlements,
		e.cat.TimeCritical(req.Situations))

	elapsed := time.Since(start)
	now := time.Now().UTC()
	metrics.ScreeningResolved(elapsed, len(eligibleIDs))
	e.log.Info("screening resolved",
		zap.Int("candidates", len(candidates)),
		zap.Int("eligible", len(eligibleIDs)),
		zap.Int("gateways", len(bundle.GatewayEntitlements)),
		zap.Int("conflicts", len(bundle.Conflicts)),
		zap.Duration("duration", elapsed))

	return &model.ScreeningResponse{
		ScreeningMetadata: model.ScreeningMetadata{
			ScreeningID:          uuid.New().String(),
			ScreeningStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			ScreeningCompletedAt: now.Format(time.RFC3339),
			ScreeningDurationMs:  elapsed.Milliseconds(),
			SchemesConsidered:    len(candidates),
			SchemesEligible:      len(eligibleIDs),
		},
		Bundle: bundle,
	}
}
