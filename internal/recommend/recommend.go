package recommend

import (
	"strings"

	"github.com/edurishi/sales-assistant/internal/model"
)

// maxRecommendations caps the suggestion list.
const maxRecommendations = 3

// professionProducts maps a normalized profession (lowercased, spaces as
// underscores) to its preferred product codes.
var professionProducts = map[string][]string{
	"school_relationship_manager": {"ELAP", "MDL", "PBL", "ICT", "AI tutor", "Simulation", "E2MP"},
	"admin_dept":                  {"ELAP", "MDL", "PBL", "ICT", "AI Workshop", "LMS", "AI software", "AI tutor"},
	"admin_head":                  {"ELAP", "MDL", "PBL", "ICT", "AI Workshop", "AI tutor", "Simulation", "Franchise Proposal"},
	"ceo":                         {"AI software", "E2MP", "Franchise Proposal", "Tech Franchise", "Entrepreneurship_Workshop"},
	"vc":                          {"AI tutor", "E2MP workshop", "E2MP software", "Simulations", "AI software"},
	"principal":                   {"ELAP", "MDL", "PBL", "ICT", "AI Workshop", "Franchise Proposal", "Tech Franchise"},
	"teacher":                     {"ELAP", "PBL", "AI Workshop", "E2MP", "AI tutor", "Simulation"},
	"it_director":                 {"AI software", "LMS", "ICT", "Simulations", "E2MP software"},
	"academic_coordinator":        {"ELAP", "MDL", "PBL", "AI tutor", "E2MP workshop"},
	"software_engineer":           {"AI software", "E2MP software", "Entrepreneurship_Workshop"},
	"marketing_manager":           {"Digital Marketing Masterclass", "LMS", "Entrepreneurship_Workshop"},
	"business_owner":              {"AI software", "Entrepreneurship_Workshop", "Franchise Proposal"},
	"education_consultant":        {"ELAP", "MDL", "PBL", "ICT", "AI Workshop", "LMS", "E2MP"},
}

// genericProducts is the last-resort fallback, appended in order.
var genericProducts = []string{
	"ELAP", "MDL", "PBL", "ICT", "AI Workshop",
	"AI_Tutor", "AI_Simulation", "AI_Integration_Workshop", "Entrepreneurship_Workshop",
}

// Recommendation is one suggested product, expanded from the catalog when an
// entry exists.
type Recommendation struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Brochure    string `json:"brochure"`
	Video       string `json:"video"`
	Pricing     string `json:"pricing"`
}

// Engine produces product suggestions against a fixed catalog.
type Engine struct {
	catalog Catalog
}

// NewEngine wraps a catalog. A nil catalog gets the built-in one.
func NewEngine(catalog Catalog) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Engine{catalog: catalog}
}

// Recommend returns up to three product entries for a record, assembled in
// strict priority order with deduplication:
//
//  1. codes from product_interested that exist in the catalog, in listed order
//  2. codes from product_pitched not already included
//  3. the record's profession's static list
//  4. the generic fallback list
//
// Layers 2-4 only run while the list is still short. Codes that survive
// truncation but have no catalog entry still appear, with placeholder text
// and empty links.
func (e *Engine) Recommend(rec model.Record) []Recommendation {
	var codes []string

	for _, code := range splitCodes(rec.ProductInterested) {
		if _, ok := e.catalog[code]; ok {
			codes = appendUnique(codes, code)
		}
	}

	if len(codes) < maxRecommendations {
		for _, code := range splitCodes(rec.ProductPitched) {
			if _, ok := e.catalog[code]; ok {
				codes = appendUnique(codes, code)
			}
		}
	}

	if len(codes) < maxRecommendations {
		profession := strings.ReplaceAll(strings.ToLower(rec.Profession), " ", "_")
		for _, code := range professionProducts[profession] {
			codes = appendUnique(codes, code)
		}
	}

	if len(codes) < maxRecommendations {
		for _, code := range genericProducts {
			codes = appendUnique(codes, code)
		}
	}

	if len(codes) > maxRecommendations {
		codes = codes[:maxRecommendations]
	}

	out := make([]Recommendation, 0, len(codes))
	for _, code := range codes {
		out = append(out, e.expand(code))
	}
	return out
}

// expand resolves a code against the catalog, substituting placeholder
// details when the code has no entry.
func (e *Engine) expand(code string) Recommendation {
	p, ok := e.catalog[code]
	if !ok {
		return Recommendation{
			Code:        code,
			Name:        code,
			Description: "Custom educational solution",
			Pricing:     "Contact for pricing",
		}
	}
	pricing := p.Pricing
	if pricing == "" {
		pricing = "Contact for pricing"
	}
	return Recommendation{
		Code:        code,
		Name:        p.Name,
		Description: p.Description,
		Brochure:    p.Brochure,
		Video:       p.Video,
		Pricing:     pricing,
	}
}

func splitCodes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func appendUnique(codes []string, code string) []string {
	for _, c := range codes {
		if c == code {
			return codes
		}
	}
	return append(codes, code)
}
