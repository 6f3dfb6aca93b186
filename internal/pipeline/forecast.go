package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/edurishi/sales-assistant/internal/model"
)

// ForecastDeal is one deal's contribution to a forecast.
type ForecastDeal struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Amount         float64 `json:"amount"`
	Probability    int     `json:"probability"`
	WeightedAmount float64 `json:"weighted_amount"`
	CloseDate      string  `json:"close_date"`
	Stage          string  `json:"stage"`
}

// Forecast is a probability-weighted projection of deal value expected to
// close within the horizon.
type Forecast struct {
	Deals             []ForecastDeal `json:"deals"`
	TotalPotential    float64        `json:"total_potential"`
	TotalWeighted     float64        `json:"total_weighted"`
	FormattedPotential string        `json:"formatted_potential"`
	FormattedWeighted  string        `json:"formatted_weighted"`
	HorizonDays       int            `json:"horizon_days"`
	EndDate           string         `json:"end_date"`
}

// DefaultForecastHorizonDays is the standard forecast window.
const DefaultForecastHorizonDays = 90

// BuildForecast projects the deals whose expected-close date falls within
// [today, today+horizon]. Each included deal contributes
// amount * probability/100 to the weighted total. Deals with missing or
// unparseable close dates are silently excluded; that is data hygiene, not
// an error.
func BuildForecast(deals []*model.Deal, horizonDays int, now time.Time) Forecast {
	if horizonDays <= 0 {
		horizonDays = DefaultForecastHorizonDays
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := today.AddDate(0, 0, horizonDays)

	f := Forecast{
		HorizonDays: horizonDays,
		EndDate:     end.Format(model.CloseDateFormat),
	}

	skipped := 0
	for _, deal := range deals {
		closeDate, err := time.ParseInLocation(model.CloseDateFormat, deal.ExpectedCloseDate, now.Location())
		if err != nil {
			skipped++
			continue
		}
		if closeDate.Before(today) || closeDate.After(end) {
			continue
		}

		weighted := deal.Amount * float64(deal.Probability) / 100
		f.Deals = append(f.Deals, ForecastDeal{
			ID:             deal.ID,
			Name:           deal.Name,
			Amount:         deal.Amount,
			Probability:    deal.Probability,
			WeightedAmount: weighted,
			CloseDate:      deal.ExpectedCloseDate,
			Stage:          deal.Stage,
		})
		f.TotalPotential += deal.Amount
		f.TotalWeighted += weighted
	}

	f.FormattedPotential = model.FormatCurrency(f.TotalPotential, "")
	f.FormattedWeighted = model.FormatCurrency(f.TotalWeighted, "")

	if skipped > 0 {
		zap.L().Debug("forecast: skipped deals with unparseable close dates",
			zap.Int("skipped", skipped),
		)
	}
	return f
}
