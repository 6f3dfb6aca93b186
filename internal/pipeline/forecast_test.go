package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edurishi/sales-assistant/internal/model"
)

func forecastDeal(id string, amount float64, probability int, closeDate string) *model.Deal {
	return &model.Deal{
		ID:                id,
		Name:              "Deal " + id,
		Amount:            amount,
		Probability:       probability,
		ExpectedCloseDate: closeDate,
		Stage:             model.StageProposal,
	}
}

func TestBuildForecast_WeightedTotals(t *testing.T) {
	now := time.Date(2026, 4, 10, 15, 30, 0, 0, time.UTC)
	deals := []*model.Deal{
		forecastDeal("a", 100000, 50, "2026-04-20"),
		forecastDeal("b", 40000, 70, "2026-05-01"),
	}

	f := BuildForecast(deals, 90, now)
	require.Len(t, f.Deals, 2)
	assert.Equal(t, 140000.0, f.TotalPotential)
	assert.InDelta(t, 78000.0, f.TotalWeighted, 0.001) // 50000 + 28000
	assert.Equal(t, "₹ 140,000.00", f.FormattedPotential)
	assert.Equal(t, "₹ 78,000.00", f.FormattedWeighted)
	assert.Equal(t, 90, f.HorizonDays)
	assert.Equal(t, "2026-07-09", f.EndDate)
}

func TestBuildForecast_WindowBoundaries(t *testing.T) {
	now := time.Date(2026, 4, 10, 23, 59, 0, 0, time.UTC)
	deals := []*model.Deal{
		forecastDeal("today", 1000, 100, "2026-04-10"),
		forecastDeal("last-day", 1000, 100, "2026-04-40"), // invalid, skipped
		forecastDeal("end", 1000, 100, "2026-05-10"),
		forecastDeal("past", 1000, 100, "2026-04-09"),
		forecastDeal("beyond", 1000, 100, "2026-05-11"),
	}

	f := BuildForecast(deals, 30, now)
	ids := make([]string, 0, len(f.Deals))
	for _, d := range f.Deals {
		ids = append(ids, d.ID)
	}
	assert.ElementsMatch(t, []string{"today", "end"}, ids)
}

func TestBuildForecast_UnparseableDatesSkipped(t *testing.T) {
	now := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	deals := []*model.Deal{
		forecastDeal("ok", 5000, 50, "2026-04-15"),
		forecastDeal("blank", 5000, 50, ""),
		forecastDeal("garbage", 5000, 50, "next tuesday"),
	}

	f := BuildForecast(deals, 30, now)
	require.Len(t, f.Deals, 1)
	assert.Equal(t, "ok", f.Deals[0].ID)
	assert.Equal(t, 5000.0, f.TotalPotential)
}

func TestBuildForecast_ZeroHorizonUsesDefault(t *testing.T) {
	now := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	f := BuildForecast(nil, 0, now)
	assert.Equal(t, DefaultForecastHorizonDays, f.HorizonDays)
	assert.Equal(t, "2026-07-09", f.EndDate)
	assert.Equal(t, "₹ 0.00", f.FormattedPotential)
}

func TestBuildForecast_ZeroProbabilityContributesNothing(t *testing.T) {
	now := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	deals := []*model.Deal{forecastDeal("lost", 90000, 0, "2026-04-20")}

	f := BuildForecast(deals, 30, now)
	require.Len(t, f.Deals, 1)
	assert.Equal(t, 90000.0, f.TotalPotential)
	assert.Equal(t, 0.0, f.TotalWeighted)
}
