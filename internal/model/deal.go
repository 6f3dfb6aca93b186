package model

import "time"

// Pipeline stages, in funnel order.
const (
	StageLeadQualification = "Lead Qualification"
	StageNeedsAssessment   = "Needs Assessment"
	StageProposal          = "Proposal/Price Quote"
	StageNegotiation       = "Negotiation/Review"
	StageClosedWon         = "Closed Won"
	StageClosedLost        = "Closed Lost"
)

// Stages returns the fixed ordered stage list. Callers get a fresh slice.
func Stages() []string {
	return []string{
		StageLeadQualification,
		StageNeedsAssessment,
		StageProposal,
		StageNegotiation,
		StageClosedWon,
		StageClosedLost,
	}
}

// CloseDateFormat is the wire format for a deal's expected-close date.
// The date stays a string so that malformed values can be skipped during
// forecasting instead of rejected at creation.
const CloseDateFormat = "2006-01-02"

// Deal is a tracked sales opportunity derived from a lead. It references the
// originating lead by ID but does not own it. Probability is always the
// canonical value for the current stage and is never set independently.
type Deal struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	LeadID            string    `json:"lead_id"`
	LeadName          string    `json:"lead_name,omitempty"`
	Amount            float64   `json:"amount"`
	Stage             string    `json:"stage"`
	Probability       int       `json:"probability"`
	CreatedAt         time.Time `json:"created_at"`
	ExpectedCloseDate string    `json:"expected_close_date,omitempty"`
	Products          []string  `json:"products,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	Owner             string    `json:"owner,omitempty"`
	LastActivity      time.Time `json:"last_activity"`
}

// FormattedAmount renders the deal amount with the default currency symbol.
func (d *Deal) FormattedAmount() string {
	return FormatCurrency(d.Amount, "")
}
