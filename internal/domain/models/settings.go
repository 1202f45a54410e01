package models

import "time"

// Settings holds the global business-operation parameters of a shop.
// Every field is a plain value; the schedule engine treats blank optional
// fields as "not configured" and falls back per its documented rules.
//
// Weekday sets use time.Weekday numbering (Sunday = 0 .. Saturday = 6).
//
// Fields:
//   - CutoffTime: latest "HH:MM" an order can be placed for same-day dispatch.
//   - SaturdayCutoff / SundayCutoff: optional weekend-specific cutoffs.
//   - LeadTime: extra business days added before dispatch (0-30).
//   - ClosedDays: weekdays on which the business does not dispatch.
//   - CourierDays: weekdays on which the courier does not deliver.
//   - HolidayCountry: optional bank-holiday calendar code (see internal/holiday).
//   - CustomHolidays: merchant-entered one-off non-operating days.
//   - Timezone: optional IANA identifier used to localize "now".
//   - Currency: ISO 4217 code used for money placeholders.
//   - ThresholdMinor: free-shipping threshold in minor currency units.
type Settings struct {
	Shop           string          `json:"shop" validate:"required" example:"demo.myshopify.com"`
	CutoffTime     string          `json:"cutoff_time" validate:"omitempty,hhmm" example:"14:00"`
	SaturdayCutoff string          `json:"saturday_cutoff" validate:"omitempty,hhmm" example:"12:00"`
	SundayCutoff   string          `json:"sunday_cutoff" validate:"omitempty,hhmm" example:""`
	LeadTime       int             `json:"lead_time" validate:"gte=0,lte=30" example:"0"`
	ClosedDays     []time.Weekday  `json:"closed_days" validate:"max=6,dive,gte=0,lte=6" example:"0,6"`
	CourierDays    []time.Weekday  `json:"courier_days" validate:"max=7,dive,gte=0,lte=6" example:"0"`
	HolidayCountry string          `json:"holiday_country" validate:"omitempty,uppercase,len=2" example:"GB"`
	CustomHolidays []CustomHoliday `json:"custom_holidays" validate:"dive"`
	Timezone       string          `json:"timezone" validate:"omitempty,tzlocation" example:"Europe/London"`
	Currency       string          `json:"currency" validate:"omitempty,iso4217" example:"USD"`
	ThresholdMinor int64           `json:"threshold_minor" validate:"gte=0" example:"5000"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CustomHoliday is a merchant-entered one-off non-operating day.
// Date is an ISO "YYYY-MM-DD" string; holiday membership tests compare on it.
type CustomHoliday struct {
	Date  string `json:"date" validate:"required,isodate" example:"2026-12-24"`
	Label string `json:"label,omitempty" example:"Inventory count"`
}

// DefaultSettings returns the parameters used for a shop that has never
// saved configuration: 14:00 cutoff, weekends closed, no Sunday courier
// delivery, no holiday calendar.
func DefaultSettings(shop string) *Settings {
	return &Settings{
		Shop:        shop,
		CutoffTime:  "14:00",
		ClosedDays:  []time.Weekday{time.Saturday, time.Sunday},
		CourierDays: []time.Weekday{time.Sunday},
		Currency:    "USD",
	}
}
