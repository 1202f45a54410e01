package models

// Product carries the storefront facts a rule's match expression can test.
// The zero value is a valid "unknown product" and only matches fallback rules.
type Product struct {
	ID          string   `json:"id" example:"gid://shopify/Product/42"`
	Handle      string   `json:"handle" example:"aluminum-water-bottle"`
	Title       string   `json:"title" example:"Aluminum Water Bottle"`
	Vendor      string   `json:"vendor" example:"Hydra Co"`
	Type        string   `json:"type" example:"Drinkware"`
	Tags        []string `json:"tags" example:"outdoor,fragile"`
	PriceMinor  int64    `json:"price_minor" example:"2499"`
	Collections []string `json:"collections" example:"summer,featured"`
}

// Facts returns the CEL activation for match expressions. Slices are copied
// so a compiled program can never alias caller-owned memory.
func (p Product) Facts() map[string]any {
	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)
	collections := make([]string, len(p.Collections))
	copy(collections, p.Collections)

	return map[string]any{
		"product": map[string]any{
			"id":          p.ID,
			"handle":      p.Handle,
			"title":       p.Title,
			"vendor":      p.Vendor,
			"type":        p.Type,
			"tags":        tags,
			"price":       p.PriceMinor,
			"collections": collections,
		},
	}
}
