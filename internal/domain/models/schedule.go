package models

import "time"

// Schedule is the computed delivery schedule for one evaluation: concrete
// calendar dates plus the countdown target instant. It is produced fresh per
// evaluation and never cached or mutated in place.
//
// Fields:
//   - ShippingDate: the date dispatch occurs after resolving cutoff, closed
//     days, holidays and lead time.
//   - DeliveryMin / DeliveryMax: the estimated arrival window.
//   - ExpressDate: arrival one courier-eligible day after dispatch.
//   - CutoffAt: the instant the shipping date's cutoff passes; a live
//     countdown display ticks toward this value.
type Schedule struct {
	ShippingDate time.Time `json:"shipping_date"`
	DeliveryMin  time.Time `json:"delivery_min"`
	DeliveryMax  time.Time `json:"delivery_max"`
	ExpressDate  time.Time `json:"express_date"`
	CutoffAt     time.Time `json:"cutoff_at"`
}
