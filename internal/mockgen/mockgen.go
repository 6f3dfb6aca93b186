// Package mockgen fabricates plausible lead records from the static
// reference tables. It backs the demo experience when no real customer data
// has been uploaded.
//
// Generation is a pure function of the filters and the injected random
// source: no shared state is read or written, so a seeded Generator is fully
// reproducible in tests.
package mockgen

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edurishi/sales-assistant/internal/model"
	"github.com/edurishi/sales-assistant/internal/refdata"
	"github.com/edurishi/sales-assistant/internal/scoring"
)

// Filters narrows generation to a geography and/or business classification.
// Empty fields are resolved randomly from the reference tables.
type Filters struct {
	City         string
	State        string
	BusinessType string
	Subcategory  string
}

// Generator produces mock leads from an injectable random source and clock.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// Option customizes a Generator.
type Option func(*Generator)

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a Generator. A nil rng gets a time-seeded source.
func New(rng *rand.Rand, opts ...Option) *Generator {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	g := &Generator{rng: rng, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Lead builds one mock lead honoring the filters.
//
// Geography resolution: a city implies its state; a state picks a random
// city; neither picks a random state then city. Classification resolution:
// a missing business type is drawn uniformly, then a missing subcategory is
// drawn from that type. The score is computed by the scoring engine from the
// generated fields, never drawn at random.
func (g *Generator) Lead(f Filters) model.Lead {
	city, state := g.resolveGeography(f.City, f.State)
	businessType := f.BusinessType
	if businessType == "" {
		businessType = pick(g.rng, refdata.BusinessTypeNames())
	}
	subcategory := f.Subcategory
	if subcategory == "" {
		if subs := refdata.Subcategories(businessType); len(subs) > 0 {
			subcategory = pick(g.rng, subs)
		}
	}

	companyName := g.companyName(businessType, city)
	contactPerson := pick(g.rng, refdata.FirstNames) + " " + pick(g.rng, refdata.LastNames)
	profession := pick(g.rng, professionsFor(businessType))
	productInterested := strings.Join(g.sampleProducts(businessType), ", ")
	budget := g.budget(businessType)
	source := pick(g.rng, refdata.LeadSources)

	now := g.now()
	createdAt := now.AddDate(0, 0, -g.intBetween(1, 60))
	var lastContacted *time.Time
	if g.rng.Float64() < 0.7 {
		t := now.AddDate(0, 0, -g.intBetween(0, 30))
		lastContacted = &t
	}

	rec := model.Record{
		Budget:            fmt.Sprintf("%d", budget),
		ProductInterested: productInterested,
	}
	score := scoring.Score(rec)
	status, color := scoring.StatusForScore(score)

	return model.Lead{
		ID:                  uuid.New().String(),
		Name:                companyName,
		ContactPerson:       contactPerson,
		Profession:          profession,
		Email:               g.email(contactPerson, companyName),
		Phone:               g.phone(),
		City:                city,
		State:               state,
		Location:            city + ", " + state,
		BusinessType:        businessType,
		BusinessSubcategory: subcategory,
		ProductInterested:   productInterested,
		Budget:              float64(budget),
		Source:              source,
		SourceDetail:        "Generated from " + source,
		Score:               score,
		Status:              status,
		StatusColor:         color,
		CreatedAt:           createdAt,
		LastContacted:       lastContacted,
		Notes:               fmt.Sprintf("This lead is interested in %s for their %s business.", productInterested, strings.ToLower(businessType)),
	}
}

// Fetch simulates pulling count leads from an external source. Despite the
// name there is no network involved: this is a bulk convenience over Lead
// and must stay a clearly-labeled simulation.
func (g *Generator) Fetch(f Filters, count int) []model.Lead {
	leads := make([]model.Lead, 0, count)
	for i := 0; i < count; i++ {
		leads = append(leads, g.Lead(f))
	}
	return leads
}

// LeadsByCity generates count leads for a known city. An unknown city yields
// nil, mirroring a lookup miss rather than an error.
func (g *Generator) LeadsByCity(city string, count int, businessType string) []model.Lead {
	state := refdata.StateForCity(city)
	if state == "" {
		return nil
	}
	return g.Fetch(Filters{City: city, State: state, BusinessType: businessType}, count)
}

func (g *Generator) resolveGeography(city, state string) (string, string) {
	if city != "" && state == "" {
		state = refdata.StateForCity(city)
	}
	if state != "" && city == "" {
		if cities := refdata.CitiesIn(state); len(cities) > 0 {
			city = pick(g.rng, cities)
		}
	}
	if state == "" && city == "" {
		state = pick(g.rng, refdata.States())
		city = pick(g.rng, refdata.CitiesIn(state))
	}
	return city, state
}

func (g *Generator) companyName(businessType, city string) string {
	templates, ok := refdata.CompanyNameTemplates[businessType]
	if !ok {
		templates = refdata.CompanyNameTemplates[pick(g.rng, refdata.BusinessTypeNames())]
	}
	tmpl := pick(g.rng, templates)
	name := pick(g.rng, refdata.HonorificWords)
	out := strings.ReplaceAll(tmpl, "{city}", city)
	return strings.ReplaceAll(out, "{name}", name)
}

// phone returns an Indian mobile number in the +91 XXXX XXX XXX shape.
func (g *Generator) phone() string {
	return fmt.Sprintf("+91 %d%d %d %d",
		g.intBetween(7, 9),
		g.intBetween(100, 999),
		g.intBetween(100, 999),
		g.intBetween(100, 999),
	)
}

// email derives an address from the contact name; half the time it uses the
// company's own domain, otherwise a common free-mail domain.
func (g *Generator) email(name, company string) string {
	namePart := strings.ReplaceAll(strings.ToLower(name), " ", ".")
	if g.rng.Float64() > 0.5 {
		companyPart := strings.ReplaceAll(strings.ToLower(company), " ", "")
		companyPart = strings.ReplaceAll(companyPart, "'", "")
		return namePart + "@" + companyPart + ".com"
	}
	return namePart + "@" + pick(g.rng, refdata.EmailDomains)
}

func (g *Generator) budget(businessType string) int {
	r, ok := refdata.BudgetRanges[businessType]
	if !ok {
		r = refdata.DefaultBudgetRange
	}
	return g.intBetween(r.Min, r.Max)
}

// sampleProducts picks 1-3 distinct products for the business type,
// falling back to the Educational list for unknown types.
func (g *Generator) sampleProducts(businessType string) []string {
	products, ok := refdata.ProductInterests[businessType]
	if !ok {
		products = refdata.ProductInterests["Educational"]
	}
	k := g.intBetween(1, min(3, len(products)))
	perm := g.rng.Perm(len(products))
	out := make([]string, 0, k)
	for _, idx := range perm[:k] {
		out = append(out, products[idx])
	}
	return out
}

// intBetween returns a uniform integer in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func pick(rng *rand.Rand, list []string) string {
	return list[rng.IntN(len(list))]
}

func professionsFor(businessType string) []string {
	if p, ok := refdata.Professions[businessType]; ok {
		return p
	}
	return refdata.Professions["Educational"]
}
