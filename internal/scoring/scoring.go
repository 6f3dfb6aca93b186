// Package scoring computes lead interest scores and status tiers.
//
// The score is a weighted additive sum of four independently-capped
// components (budget 30, engagement 25, product interest 25, decision
// timeline 20), rounded and clamped to [0,100]. Every component degrades to
// a default when its inputs are absent; nothing here returns an error.
package scoring

import (
	"math"
	"strconv"
	"strings"

	"github.com/edurishi/sales-assistant/internal/model"
)

// Component caps and weights.
const (
	budgetCeiling   = 500000 // budget at or above this earns the full budget component
	budgetWeight    = 30
	budgetDefault   = 10 // absent or unparseable budget
	engagementCap   = 25
	productWeight   = 8
	productCap      = 25
	maxScore        = 100
)

// Breakdown reports the individual component scores alongside the final
// clamped score.
type Breakdown struct {
	Budget     float64 `json:"budget"`
	Engagement float64 `json:"engagement"`
	Product    float64 `json:"product"`
	Timeline   float64 `json:"timeline"`
	Final      int     `json:"final"`
}

// Score computes the lead score for a record.
func Score(rec model.Record) int {
	return ScoreBreakdown(rec).Final
}

// ScoreBreakdown computes the lead score with per-component detail.
func ScoreBreakdown(rec model.Record) Breakdown {
	b := Breakdown{
		Budget:     budgetComponent(rec.Budget),
		Engagement: engagementComponent(rec),
		Product:    productComponent(rec.ProductInterested),
		Timeline:   timelineComponent(rec.DecisionTimeline),
	}

	total := b.Budget + b.Engagement + b.Product + b.Timeline
	final := int(math.Round(total))
	if final > maxScore {
		final = maxScore
	}
	if final < 0 {
		final = 0
	}
	b.Final = final
	return b
}

// budgetComponent scales the budget linearly against budgetCeiling, capped at
// budgetWeight. An absent or unparseable budget earns a flat budgetDefault.
func budgetComponent(raw string) float64 {
	budget, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return budgetDefault
	}
	return math.Min(budget/budgetCeiling*budgetWeight, budgetWeight)
}

// engagementComponent sums the engagement signals, capped at engagementCap.
func engagementComponent(rec model.Record) float64 {
	var score float64
	if rec.EmailOpened > 0 {
		score += 5
	}
	if rec.EmailReplied > 0 {
		score += 10
	}
	if rec.MeetingsAttended > 0 {
		score += 15
	}
	return math.Min(score, engagementCap)
}

// productComponent counts comma-separated product interests, capped at
// productCap. An empty field contributes nothing.
func productComponent(interested string) float64 {
	if strings.TrimSpace(interested) == "" {
		return 0
	}
	n := len(strings.Split(interested, ","))
	return math.Min(float64(n)*productWeight, productCap)
}

// timelineComponent matches urgency keywords against the lowercased
// decision-timeline text. The first matching bracket wins.
func timelineComponent(timeline string) float64 {
	t := strings.ToLower(timeline)
	switch {
	case containsAny(t, "immediate", "urgent", "1 week"):
		return 20
	case containsAny(t, "month", "30 day"):
		return 15
	case containsAny(t, "quarter", "3 month"):
		return 10
	case containsAny(t, "year", "12 month"):
		return 5
	default:
		return 0
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// StatusForScore maps a score to its status tier and display color.
// Thresholds are evaluated highest-first and never overlap.
func StatusForScore(score int) (status, color string) {
	switch {
	case score >= 80:
		return "Hot", "#FF4500"
	case score >= 60:
		return "Warm", "#FFA500"
	case score >= 40:
		return "Lukewarm", "#FFD700"
	case score >= 20:
		return "Cool", "#87CEEB"
	default:
		return "Cold", "#ADD8E6"
	}
}
