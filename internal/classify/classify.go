// Package classify infers a business type from free-text profession and
// company-name fields using ordered keyword rules.
package classify

import "strings"

// rule pairs a category with the substrings that select it.
type rule struct {
	category string
	keywords []string
}

// professionRules are evaluated against the lowercased profession, in order.
// The ordering is load-bearing: earlier rules win ties, and the profession
// pass runs before the company-name pass. The two tables intentionally carry
// slightly different category orderings; keep them as they are.
var professionRules = []rule{
	{"Educational", []string{"principal", "teacher", "academic", "school", "college", "university", "education"}},
	{"Industrial", []string{"engineer", "manufacturing", "production", "industrial"}},
	{"Publishers", []string{"editor", "publisher", "publication", "content", "media"}},
	{"Technology", []string{"software", "tech", "it", "digital", "computer"}},
	{"Healthcare", []string{"doctor", "medical", "health", "hospital", "clinic"}},
	{"Retail", []string{"retail", "store", "shop", "sales", "merchant"}},
	{"Government", []string{"government", "official", "public", "municipal", "department"}},
}

// companyRules are evaluated against the lowercased company name when the
// profession pass produced nothing.
var companyRules = []rule{
	{"Educational", []string{"school", "college", "university", "academy", "institute", "education"}},
	{"Industrial", []string{"industry", "manufacturing", "factory", "production", "mill"}},
	{"Publishers", []string{"publication", "press", "media", "publisher", "news"}},
	{"Technology", []string{"tech", "software", "digital", "computer", "it solutions"}},
	{"Healthcare", []string{"hospital", "clinic", "medical", "healthcare", "pharmacy"}},
	{"Retail", []string{"store", "retail", "shop", "mart", "supermarket"}},
	{"Government", []string{"government", "department", "ministry", "municipal", "corporation"}},
}

// BusinessType infers a business type from a profession and a company name.
// Profession is consulted first, then the company name. Returns "" when
// nothing matches; callers treat that as unclassified rather than an error.
func BusinessType(profession, companyName string) string {
	if cat := match(professionRules, strings.ToLower(profession)); cat != "" {
		return cat
	}
	return match(companyRules, strings.ToLower(companyName))
}

func match(rules []rule, text string) string {
	if text == "" {
		return ""
	}
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.category
			}
		}
	}
	return ""
}
