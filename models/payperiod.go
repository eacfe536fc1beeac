package models

import "time"

// PayPeriod describes the current biweekly cycle. Both dates are derived
// from the anchor on every request and never persisted.
type PayPeriod struct {
	PeriodEnd       time.Time `json:"periodEnd"`
	PayDay          time.Time `json:"payDay"`
	DaysUntilPayday int       `json:"daysUntilPayday"`
}

// PayEstimate is the result of the per-employee pay calculator.
type PayEstimate struct {
	WeeklyHours   float64 `json:"weeklyHours"`
	BasePay       float64 `json:"basePay"`
	EstimatedTips float64 `json:"estimatedTips"`
	TotalEarnings float64 `json:"totalEarnings"`
}
