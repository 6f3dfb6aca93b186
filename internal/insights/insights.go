// Package insights derives human-readable observations, sales scripts, and
// exportable client packages from customer records.
package insights

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/edurishi/sales-assistant/internal/model"
)

var budgetPrinter = message.NewPrinter(language.English)

// Profile extends a raw record with the optional demographic fields some
// import sources carry.
type Profile struct {
	model.Record
	Age       int
	Interests string
}

// Customer returns short observations about a customer. Each insight is a
// standalone sentence fragment suitable for list display. Missing fields
// contribute nothing.
func Customer(p Profile) []string {
	var out []string

	if p.Profession != "" {
		out = append(out, "Professional in "+p.Profession)
	}

	if p.Age > 0 {
		generation := "Baby Boomer"
		switch {
		case p.Age < 25:
			generation = "Gen Z"
		case p.Age < 40:
			generation = "Millennial"
		case p.Age < 55:
			generation = "Gen X"
		}
		out = append(out, fmt.Sprintf("%s (%d years old)", generation, p.Age))
	}

	if p.Location != "" {
		out = append(out, "Based in "+p.Location)
	}

	if p.Interests != "" {
		interests := splitList(p.Interests)
		if len(interests) > 3 {
			interests = interests[:3]
		}
		if len(interests) > 0 {
			out = append(out, "Interested in "+strings.Join(interests, ", "))
		}
	}

	if budget, err := strconv.ParseFloat(p.Budget, 64); err == nil && budget > 0 {
		tier := "Premium buyer"
		switch {
		case budget < 1000:
			tier = "Budget-conscious"
		case budget < 5000:
			tier = "Mid-range buyer"
		}
		out = append(out, budgetPrinter.Sprintf("%s ($%.0f budget)", tier, budget))
	}

	return out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
