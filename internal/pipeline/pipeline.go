// Package pipeline models deals moving through the fixed sales funnel:
// stage probabilities, deal creation from leads, bucketed stage transitions,
// and pipeline/forecast aggregation.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/edurishi/sales-assistant/internal/model"
)

// stageProbabilities is the canonical stage → win probability mapping.
var stageProbabilities = map[string]int{
	model.StageLeadQualification: 10,
	model.StageNeedsAssessment:   30,
	model.StageProposal:          50,
	model.StageNegotiation:       70,
	model.StageClosedWon:         100,
	model.StageClosedLost:        0,
}

// StageProbability returns the win probability for a stage. Unknown stage
// names default to the lowest-probability behavior rather than failing.
func StageProbability(stage string) int {
	if p, ok := stageProbabilities[stage]; ok {
		return p
	}
	return 10
}

// DealOptions overrides the defaults applied when deriving a deal from a
// lead. Zero values mean "use the default".
type DealOptions struct {
	Name   string
	Amount float64
	Stage  string
	Now    time.Time // defaults to time.Now
}

// NewDeal derives a deal from a lead snapshot. The name defaults to
// "<lead name> - <month year>", the amount to the lead's budget, the stage
// to Lead Qualification, and the expected close date to 30 days out.
// Probability is always set from the stage.
func NewDeal(lead model.Lead, opts DealOptions) model.Deal {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	name := opts.Name
	if name == "" {
		name = fmt.Sprintf("%s - %s", lead.Name, now.Format("Jan 2006"))
	}

	amount := opts.Amount
	if amount == 0 {
		amount = lead.Budget
	}

	stage := opts.Stage
	if stage == "" {
		stage = model.StageLeadQualification
	}

	return model.Deal{
		ID:                uuid.New().String(),
		Name:              name,
		LeadID:            lead.ID,
		LeadName:          lead.Name,
		Amount:            amount,
		Stage:             stage,
		Probability:       StageProbability(stage),
		CreatedAt:         now,
		ExpectedCloseDate: now.AddDate(0, 0, 30).Format(model.CloseDateFormat),
		Products:          splitProducts(lead.ProductInterested),
		Owner:             lead.Owner,
		LastActivity:      now,
	}
}

// Pipeline indexes deal IDs by their current stage. Every deal ID lives in
// exactly one bucket, matching the deal's Stage field.
type Pipeline struct {
	stages  []string
	byStage map[string][]string
}

// New creates a Pipeline over the fixed stage list.
func New() *Pipeline {
	p := &Pipeline{
		stages:  model.Stages(),
		byStage: make(map[string][]string),
	}
	for _, s := range p.stages {
		p.byStage[s] = nil
	}
	return p
}

// Stages returns the ordered stage names.
func (p *Pipeline) Stages() []string {
	out := make([]string, len(p.stages))
	copy(out, p.stages)
	return out
}

// DealIDs returns a copy of the deal IDs currently bucketed in a stage.
func (p *Pipeline) DealIDs(stage string) []string {
	ids := p.byStage[stage]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Add places a newly created deal in its stage's bucket.
func (p *Pipeline) Add(deal *model.Deal) {
	p.byStage[deal.Stage] = append(p.byStage[deal.Stage], deal.ID)
}

// Transition moves a deal to a new stage: the ID leaves the old bucket,
// joins the new one, and the deal's probability and last-activity timestamp
// are refreshed. The buckets are never left in an intermediate state; a deal
// missing from its recorded bucket aborts before anything is touched.
func (p *Pipeline) Transition(deal *model.Deal, newStage string, now time.Time) error {
	if deal == nil {
		return eris.New("pipeline: nil deal")
	}
	oldStage := deal.Stage
	if newStage == oldStage {
		return nil
	}

	idx := indexOf(p.byStage[oldStage], deal.ID)
	if idx < 0 {
		return eris.Errorf("pipeline: deal %s not bucketed in stage %q", deal.ID, oldStage)
	}

	p.byStage[oldStage] = append(p.byStage[oldStage][:idx], p.byStage[oldStage][idx+1:]...)
	p.byStage[newStage] = append(p.byStage[newStage], deal.ID)

	deal.Stage = newStage
	deal.Probability = StageProbability(newStage)
	deal.LastActivity = now

	zap.L().Info("pipeline: deal stage updated",
		zap.String("deal_id", deal.ID),
		zap.String("from", oldStage),
		zap.String("to", newStage),
		zap.Int("probability", deal.Probability),
	)
	return nil
}

// StageSummary aggregates the deals currently in one stage.
type StageSummary struct {
	Count          int     `json:"count"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formatted_value"`
}

// Summary holds per-stage deal counts and amounts plus grand totals.
type Summary struct {
	TotalDeals int                     `json:"total_deals"`
	TotalValue float64                 `json:"total_value"`
	Stages     map[string]StageSummary `json:"stages"`
}

// Summarize builds a Summary from the current buckets and the given deals.
// It reads but never mutates, so repeated calls yield identical results.
func (p *Pipeline) Summarize(deals map[string]*model.Deal) Summary {
	s := Summary{Stages: make(map[string]StageSummary, len(p.stages))}

	for _, stage := range p.stages {
		var stageValue float64
		count := 0
		for _, id := range p.byStage[stage] {
			deal, ok := deals[id]
			if !ok {
				continue
			}
			stageValue += deal.Amount
			count++
		}
		s.Stages[stage] = StageSummary{
			Count:          count,
			Value:          stageValue,
			FormattedValue: model.FormatCurrency(stageValue, ""),
		}
		s.TotalDeals += count
		s.TotalValue += stageValue
	}
	return s
}

func splitProducts(s string) []string {
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

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
