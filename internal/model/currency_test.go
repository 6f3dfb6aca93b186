package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency_DefaultSymbol(t *testing.T) {
	assert.Equal(t, "₹ 1,200.00", FormatCurrency(1200, ""))
	assert.Equal(t, "₹ 0.00", FormatCurrency(0, ""))
	assert.Equal(t, "₹ 750,000.00", FormatCurrency(750000, ""))
}

func TestFormatCurrency_WesternSymbols(t *testing.T) {
	assert.Equal(t, "$1,200.00", FormatCurrency(1200, "$"))
	assert.Equal(t, "€99.50", FormatCurrency(99.5, "€"))
}

func TestDeal_FormattedAmount(t *testing.T) {
	d := Deal{Amount: 120000}
	assert.Equal(t, "₹ 120,000.00", d.FormattedAmount())
}

func TestStages_OrderedAndStable(t *testing.T) {
	stages := Stages()
	assert.Equal(t, []string{
		StageLeadQualification,
		StageNeedsAssessment,
		StageProposal,
		StageNegotiation,
		StageClosedWon,
		StageClosedLost,
	}, stages)

	// callers can't mutate the canonical list
	stages[0] = "Tampered"
	assert.Equal(t, StageLeadQualification, Stages()[0])
}
