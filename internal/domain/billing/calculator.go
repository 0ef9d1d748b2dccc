// Package billing prices a parking session from its timestamps.
package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

const centsPlaces = 2

var secondsPerHour = decimal.NewFromInt(3600)

// elapsedSeconds is end-start in decimal seconds, clamped at zero when end
// precedes start.
func elapsedSeconds(start, end time.Time) decimal.Decimal {
	d := end.Sub(start)
	if d <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(d.Nanoseconds()).Shift(-9)
}

// Cost is round(max(0, hours) * hourlyRate, 2), rounding half away from zero.
// The rate is applied before dividing by 3600 so the only rounding is the final one.
func Cost(start, end time.Time, hourlyRate decimal.Decimal) decimal.Decimal {
	return elapsedSeconds(start, end).Mul(hourlyRate).DivRound(secondsPerHour, centsPlaces)
}

// DurationHours is the billed duration rounded to 2 places, as reported back to the caller.
func DurationHours(start, end time.Time) decimal.Decimal {
	return elapsedSeconds(start, end).DivRound(secondsPerHour, centsPlaces)
}

// Calculator is the injectable form of Cost for use cases.
type Calculator interface {
	Cost(start, end time.Time, hourlyRate decimal.Decimal) decimal.Decimal
}

type HourlyCalculator struct{}

func NewHourlyCalculator() Calculator {
	return HourlyCalculator{}
}

func (HourlyCalculator) Cost(start, end time.Time, hourlyRate decimal.Decimal) decimal.Decimal {
	return Cost(start, end, hourlyRate)
}
