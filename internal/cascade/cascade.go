// Package cascade partitions the eligible schemes into realized gateways,
// cascaded groups and independents. The resolver is pure and deterministic:
// identical inputs produce identical partitions regardless of input order.
package cascade

import (
	"sort"

	"benefits-engine/internal/model"
)

// Resolver carries the read-only lookups the partition needs. HighValue is
// the estimated annual high value used for ownership priority; Order is the
// catalogue position used to break value ties deterministically.
type Resolver struct {
	Definition func(id string) *model.SchemeDefinition
	Edges      []model.DependencyEdge
	HighValue  func(id string) int
	Order      func(id string) int
}

// Group lists the dependents owned by one realized gateway.
type Group struct {
	GatewayID  string
	Dependents []string
}

// Result is the three-way partition. Every eligible id appears exactly once
// across Gateways, all Groups, and Independent.
type Result struct {
	Gateways    []string
	Groups      []Group
	Independent []string
}

// Resolve partitions eligibleIDs.
//
// A gateway is realized only when at least one of its dependency edges
// points at another eligible scheme; a gateway with no eligible dependents
// behaves as an ordinary independent entitlement. When two realized
// gateways both point at the same dependent, the higher-valued gateway
// claims it.
func (r *Resolver) Resolve(eligibleIDs []string) Result {
	eligible := make(map[string]bool, len(eligibleIDs))
	for _, id := range eligibleIDs {
		eligible[id] = true
	}

	// Adjacency restricted to eligible gateways and eligible dependents.
	adj := make(map[string][]string)
	for _, e := range r.Edges {
		if e.From == e.To {
			continue
		}
		if !eligible[e.From] || !eligible[e.To] {
			continue
		}
		def := r.Definition(e.From)
		if def == nil || !def.IsGateway {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
	}

	gateways := make([]string, 0, len(adj))
	for id := range adj {
		gateways = append(gateways, id)
	}
	// Ownership priority: highest estimated value first, catalogue order on
	// ties.
	sort.Slice(gateways, func(i, j int) bool {
		vi, vj := r.HighValue(gateways[i]), r.HighValue(gateways[j])
		if vi != vj {
			return vi > vj
		}
		return r.Order(gateways[i]) < r.Order(gateways[j])
	})

	placed := make(map[string]bool, len(eligibleIDs))
	var res Result
	for _, g := range gateways {
		if !placed[g] {
			placed[g] = true
			res.Gateways = append(res.Gateways, g)
		}
		var deps []string
		for _, d := range adj[g] {
			if placed[d] {
				continue
			}
			placed[d] = true
			deps = append(deps, d)
		}
		if len(deps) == 0 {
			continue
		}
		r.sortByValue(deps)
		res.Groups = append(res.Groups, Group{GatewayID: g, Dependents: deps})
	}

	for _, id := range eligibleIDs {
		if !placed[id] {
			placed[id] = true
			res.Independent = append(res.Independent, id)
		}
	}
	r.sortByValue(res.Independent)
	return res
}

// DependentCount returns how many eligible schemes a gateway would unlock,
// before ownership dedup. Used for the gateway's "why this matters" note.
func (r *Resolver) DependentCount(gatewayID string, eligibleIDs []string) int {
	eligible := make(map[string]bool, len(eligibleIDs))
	for _, id := range eligibleIDs {
		eligible[id] = true
	}
	n := 0
	for _, e := range r.Edges {
		if e.From == gatewayID && e.To != gatewayID && eligible[e.To] {
			n++
		}
	}
	return n
}

func (r *Resolver) sortByValue(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		vi, vj := r.HighValue(ids[i]), r.HighValue(ids[j])
		if vi != vj {
			return vi > vj
		}
		return r.Order(ids[i]) < r.Order(ids[j])
	})
}
