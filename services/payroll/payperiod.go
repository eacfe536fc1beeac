package payroll

import (
	"math"
	"time"

	"sweetdots/models"
)

// PeriodLength is the fixed biweekly cycle length.
const PeriodLength = 14

// PaydayOffset is how many days after a period ends the money lands.
const PaydayOffset = 3

// AnchorDate is a known historical pay-period boundary. Every future
// boundary is an exact multiple of PeriodLength days after it.
var AnchorDate = time.Date(2026, time.January, 18, 0, 0, 0, 0, time.Local)

// Midnight strips the time-of-day component.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CurrentPeriod derives the next period end and payday for the given "now".
// The period end is strictly in the future, except before the anchor, where
// the anchor itself is the first period end.
func CurrentPeriod(now time.Time) models.PayPeriod {
	today := Midnight(now)
	anchor := Midnight(AnchorDate.In(now.Location()))

	daysSinceAnchor := int(today.Sub(anchor).Hours() / 24)

	periodEnd := anchor
	if daysSinceAnchor >= 0 {
		periodsPassed := daysSinceAnchor / PeriodLength
		periodEnd = anchor.AddDate(0, 0, (periodsPassed+1)*PeriodLength)
	}
	payDay := periodEnd.AddDate(0, 0, PaydayOffset)

	return models.PayPeriod{
		PeriodEnd:       periodEnd,
		PayDay:          payDay,
		DaysUntilPayday: daysUntil(today, payDay),
	}
}

// daysUntil counts whole days from today (already at midnight) to payDay.
// Both sides are normalized, so there is no off-by-one near midnight.
func daysUntil(today, payDay time.Time) int {
	return int(math.Ceil(payDay.Sub(today).Hours() / 24))
}

// Estimate computes the weekly pay estimate for the given hours and rates.
func Estimate(hours, hourlyRate, tipsPerHour float64) models.PayEstimate {
	base := hours * hourlyRate
	tips := hours * tipsPerHour
	return models.PayEstimate{
		WeeklyHours:   hours,
		BasePay:       base,
		EstimatedTips: tips,
		TotalEarnings: base + tips,
	}
}
