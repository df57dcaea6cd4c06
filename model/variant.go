package model

// Variant is the read-only catalog view of a purchasable SKU.
type Variant struct {
	ID             uint64 `db:"id" json:"id"`
	ProductID      uint64 `db:"product_id" json:"product_id"`
	SKU            string `db:"sku" json:"sku"`
	Title          string `db:"title" json:"title"`
	PriceCents     int64  `db:"price_cents" json:"price_cents"`
	Currency       string `db:"currency" json:"currency"`
	TrackInventory bool   `db:"track_inventory" json:"track_inventory"`
}

type VariantListItem struct {
	Variant
	AvailableStock int64 `db:"available_stock" json:"available_stock"`
}

type VariantListResponse struct {
	Items      []VariantListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}
