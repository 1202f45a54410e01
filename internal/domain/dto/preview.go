package dto

import (
	"time"

	"github.com/merchware/shipcast/internal/domain/models"
)

// PreviewRequest is the body of POST /api/v1/preview, sent by the admin UI
// to show a merchant what every rule would display for a product. At pins
// the evaluation instant for deterministic previews.
type PreviewRequest struct {
	Shop           string         `json:"shop" binding:"required" example:"demo.myshopify.com"`
	Product        models.Product `json:"product"`
	CartTotalMinor int64          `json:"cart_total_minor" example:"3550"`
	Target         string         `json:"target" binding:"omitempty,oneof=html text" example:"html"`
	At             *time.Time     `json:"at,omitempty"`
}

// PreviewResponse lists one entry per active rule, in position order.
type PreviewResponse struct {
	Results []RulePreview `json:"results"`
}

// RulePreview shows what one rule would render. Matched marks the rule the
// storefront would actually pick for this product.
type RulePreview struct {
	RuleID         string      `json:"rule_id"`
	RuleName       string      `json:"rule_name" example:"Standard delivery"`
	Matched        bool        `json:"matched"`
	Message        string      `json:"message"`
	ExpressMessage string      `json:"express_message,omitempty"`
	Schedule       ScheduleDTO `json:"schedule"`
}

// CountryOption is one entry of GET /api/v1/countries, populating the
// holiday-calendar selector.
type CountryOption struct {
	Code string `json:"code" example:"GB"`
	Name string `json:"name" example:"United Kingdom"`
}
