package models

import "time"

// Rule pairs product match criteria with the message and schedule overrides
// to apply when a product matches.
//
// Match is a CEL expression over a `product` variable (see internal/match).
// A blank Match marks the fallback rule: it applies to any product no other
// rule matched.
type Rule struct {
	ID        string       `json:"id" validate:"omitempty,uuid4" example:"7b1f3c2e-45c7-4f7e-9c2b-9f4a4f4c1a11"`
	Shop      string       `json:"shop" validate:"required" example:"demo.myshopify.com"`
	Position  int          `json:"position" validate:"gte=0" example:"0"`
	Name      string       `json:"name" validate:"required,max=120" example:"Standard delivery"`
	Match     string       `json:"match" example:"product.price >= 5000 || 'fragile' in product.tags"`
	Settings  RuleSettings `json:"settings"`
	Active    bool         `json:"active" example:"true"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// RuleSettings carries the per-rule configuration. Each of the four override
// categories (cutoff times, lead time, closed days, courier days) has its own
// flag and its own rule-local value; a nil value under an active flag means
// "absent" and resolution falls back to the global setting for that category
// alone. The categories are resolved independently of each other.
type RuleSettings struct {
	OverrideCutoffTimes bool    `json:"override_cutoff_times"`
	CutoffTime          *string `json:"cutoff_time,omitempty" validate:"omitempty,hhmm" example:"16:30"`
	SaturdayCutoff      *string `json:"saturday_cutoff,omitempty" validate:"omitempty,hhmm"`
	SundayCutoff        *string `json:"sunday_cutoff,omitempty" validate:"omitempty,hhmm"`

	OverrideLeadTime bool `json:"override_lead_time"`
	LeadTime         *int `json:"lead_time,omitempty" validate:"omitempty,gte=0,lte=30" example:"2"`

	OverrideClosedDays bool           `json:"override_closed_days"`
	ClosedDays         []time.Weekday `json:"closed_days,omitempty" validate:"omitempty,max=6,dive,gte=0,lte=6"`

	OverrideCourierDays bool           `json:"override_courier_days"`
	CourierDays         []time.Weekday `json:"courier_days,omitempty" validate:"omitempty,max=7,dive,gte=0,lte=6"`

	// Delivery window in courier-eligible days after the shipping date.
	EtaMin int `json:"eta_delivery_days_min" validate:"gte=0" example:"3"`
	EtaMax int `json:"eta_delivery_days_max" validate:"gte=0,gtefield=EtaMin" example:"5"`

	// Template is the merchant-authored message. Recognized placeholders:
	// {arrival} {express} {countdown} {threshold} {remaining} {cart_total},
	// the line-break marker {lb} and **bold** spans.
	Template string `json:"template" validate:"max=2000" example:"Order within {countdown} to get it **{arrival}**"`

	// ExpressTemplate, when set, renders a second message advertising the
	// express option. Same placeholder set as Template.
	ExpressTemplate string `json:"express_template,omitempty" validate:"max=2000" example:"Need it sooner? Express gets it to you {express}"`
}

// IsFallback reports whether the rule has no match criteria and therefore
// applies to any product not matched by another rule.
func (r *Rule) IsFallback() bool { return r.Match == "" }
