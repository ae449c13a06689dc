// Package catalogue loads the static scheme catalogue and rate table and
// builds the read-only indexes the engine resolves against. Everything here
// is immutable after Load; concurrent resolutions share one Catalogue with
// no synchronization.
package catalogue

import (
	_ "embed"
	"fmt"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"benefits-engine/internal/model"
)

//go:embed data/catalogue.json
var catalogueJSON []byte

type catalogueFile struct {
	Schemes      []model.SchemeDefinition    `json:"schemes"`
	Dependencies []model.DependencyEdge      `json:"dependencies"`
	Conflicts    []model.ConflictEdge        `json:"conflicts"`
	Situations   []model.SituationDefinition `json:"situations"`
}

// Catalogue is the loaded, indexed scheme data plus the rate table.
type Catalogue struct {
	Rates *RateTable

	schemes     map[string]*model.SchemeDefinition
	schemeOrder map[string]int
	deps        []model.DependencyEdge
	conflicts   []model.ConflictEdge
	situations  map[string]*model.SituationDefinition
}

// Load parses the embedded catalogue and rate table. Edges referencing a
// scheme id that does not exist are skipped with a warning: the catalogue is
// externally maintained data and a bad edge must not take the service down.
func Load(log *zap.Logger) (*Catalogue, error) {
	var file catalogueFile
	if err := json.Unmarshal(catalogueJSON, &file); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}
	rates, err := loadRates()
	if err != nil {
		return nil, err
	}
	return build(file, rates, log)
}

func build(file catalogueFile, rates *RateTable, log *zap.Logger) (*Catalogue, error) {
	if log == nil {
		log = zap.NewNop()
	}

	c := &Catalogue{
		Rates:       rates,
		schemes:     make(map[string]*model.SchemeDefinition, len(file.Schemes)),
		schemeOrder: make(map[string]int, len(file.Schemes)),
		situations:  make(map[string]*model.SituationDefinition, len(file.Situations)),
	}

	for i := range file.Schemes {
		s := &file.Schemes[i]
		if _, dup := c.schemes[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scheme id %q in catalogue", s.ID)
		}
		c.schemes[s.ID] = s
		c.schemeOrder[s.ID] = i
	}

	for _, d := range file.Dependencies {
		if _, ok := c.schemes[d.From]; !ok {
			log.Warn("skipping dependency edge with unknown scheme", zap.String("from", d.From), zap.String("to", d.To))
			continue
		}
		if _, ok := c.schemes[d.To]; !ok {
			log.Warn("skipping dependency edge with unknown scheme", zap.String("from", d.From), zap.String("to", d.To))
			continue
		}
		c.deps = append(c.deps, d)
	}

	for _, e := range file.Conflicts {
		if _, ok := c.schemes[e.Between[0]]; !ok {
			log.Warn("skipping conflict edge with unknown scheme", zap.String("id", e.Between[0]))
			continue
		}
		if _, ok := c.schemes[e.Between[1]]; !ok {
			log.Warn("skipping conflict edge with unknown scheme", zap.String("id", e.Between[1]))
			continue
		}
		c.conflicts = append(c.conflicts, e)
	}

	for i := range file.Situations {
		s := &file.Situations[i]
		c.situations[s.ID] = s
	}

	log.Info("catalogue loaded",
		zap.Int("schemes", len(c.schemes)),
		zap.Int("dependencies", len(c.deps)),
		zap.Int("conflicts", len(c.conflicts)),
		zap.Int("situations", len(c.situations)),
		zap.String("tax_year", rates.TaxYear))
	return c, nil
}

// Scheme returns the definition for id, or nil if unknown.
func (c *Catalogue) Scheme(id string) *model.SchemeDefinition {
	return c.schemes[id]
}

// SchemeCount returns the number of catalogue entries.
func (c *Catalogue) SchemeCount() int {
	return len(c.schemes)
}

// Order returns the catalogue position of a scheme id, used as the
// deterministic tie-break when values are equal.
func (c *Catalogue) Order(id string) int {
	if i, ok := c.schemeOrder[id]; ok {
		return i
	}
	return len(c.schemeOrder)
}

// Dependencies returns the validated dependency edge list.
func (c *Catalogue) Dependencies() []model.DependencyEdge {
	return c.deps
}

// Conflicts returns the validated conflict edge list.
func (c *Catalogue) Conflicts() []model.ConflictEdge {
	return c.conflicts
}

// Situation returns the definition for a situation id, or nil if unknown.
// Unknown ids are not an error: the conversation layer may know situations
// this catalogue version does not.
func (c *Catalogue) Situation(id string) *model.SituationDefinition {
	return c.situations[id]
}

// TimeCritical reports whether any of the given situations is flagged
// time-critical.
func (c *Catalogue) TimeCritical(situationIDs []string) bool {
	for _, id := range situationIDs {
		if s := c.situations[id]; s != nil && s.TimeCritical {
			return true
		}
	}
	return false
}

// CandidatesFor resolves situation ids to the deduplicated candidate scheme
// list (primary then secondary), filtered to schemes available in the
// person's nation. Order is deterministic: catalogue order of first mention.
func (c *Catalogue) CandidatesFor(situationIDs []string, nation string) []*model.SchemeDefinition {
	seen := make(map[string]bool)
	var out []*model.SchemeDefinition
	add := func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		s := c.schemes[id]
		if s == nil || !s.AvailableIn(nation) {
			return
		}
		out = append(out, s)
	}
	for _, sid := range situationIDs {
		if s := c.situations[sid]; s != nil {
			for _, id := range s.Primary {
				add(id)
			}
		}
	}
	for _, sid := range situationIDs {
		if s := c.situations[sid]; s != nil {
			for _, id := range s.Secondary {
				add(id)
			}
		}
	}
	return out
}
