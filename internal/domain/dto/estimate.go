package dto

import (
	"time"

	"github.com/merchware/shipcast/internal/domain/models"
	"github.com/merchware/shipcast/internal/message"
)

// EstimateRequest is the body of POST /api/v1/estimate, sent by the
// storefront widget for one product page view. At is optional and pins the
// evaluation instant; when absent the server clock is used.
type EstimateRequest struct {
	Shop           string         `json:"shop" binding:"required" example:"demo.myshopify.com"`
	Product        models.Product `json:"product"`
	CartTotalMinor int64          `json:"cart_total_minor" example:"3550"`
	Target         string         `json:"target" binding:"omitempty,oneof=html text" example:"html"`
	At             *time.Time     `json:"at,omitempty"`
}

// EstimateResponse carries the rendered message and the schedule it was
// rendered from. Configured is false when the shop never saved settings and
// defaults were used.
type EstimateResponse struct {
	Message        string      `json:"message" example:"Order within 2h 10m for delivery <strong>Mar 5–9</strong>"`
	ExpressMessage string      `json:"express_message,omitempty"`
	RuleID         string      `json:"rule_id,omitempty"`
	RuleName       string      `json:"rule_name,omitempty" example:"Standard delivery"`
	Fallback       bool        `json:"fallback"` // true when the fallback rule matched
	Configured     bool        `json:"configured"`
	Schedule       ScheduleDTO `json:"schedule"`
}

// ScheduleDTO is the wire form of a computed schedule. Dates are ISO
// "YYYY-MM-DD"; CutoffAt is RFC 3339 and marks the instant a countdown
// targets. Arrival is the display form of the delivery window.
type ScheduleDTO struct {
	ShippingDate string    `json:"shipping_date" example:"2026-03-02"`
	DeliveryMin  string    `json:"delivery_min" example:"2026-03-05"`
	DeliveryMax  string    `json:"delivery_max" example:"2026-03-09"`
	ExpressDate  string    `json:"express_date" example:"2026-03-03"`
	CutoffAt     time.Time `json:"cutoff_at"`
	Arrival      string    `json:"arrival" example:"Mar 5–9"`
}

// NewScheduleDTO converts a computed schedule to its wire form.
func NewScheduleDTO(s models.Schedule) ScheduleDTO {
	const iso = "2006-01-02"
	return ScheduleDTO{
		ShippingDate: s.ShippingDate.Format(iso),
		DeliveryMin:  s.DeliveryMin.Format(iso),
		DeliveryMax:  s.DeliveryMax.Format(iso),
		ExpressDate:  s.ExpressDate.Format(iso),
		CutoffAt:     s.CutoffAt,
		Arrival:      message.FormatWindow(s.DeliveryMin, s.DeliveryMax),
	}
}
