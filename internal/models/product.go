package models

import "time"

// ProductImage is a catalog image attached to a product
type ProductImage struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	AltText  string `json:"altText,omitempty"`
	Position int    `json:"position"`
	IsMain   bool   `json:"isMain"`
}

// ProductVariant is a sellable variation of a product (size, colour, etc.)
type ProductVariant struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	SKU      string         `json:"sku,omitempty"`
	Options  map[string]any `json:"options,omitempty"`
	Price    float64        `json:"price"`
	Quantity int            `json:"quantity"`
	ImageURL string         `json:"imageUrl,omitempty"`
	InStock  bool           `json:"inStock"`
}

// Product represents a catalog product
type Product struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	ShortDescription string           `json:"shortDescription,omitempty"`
	Category         string           `json:"category,omitempty"`
	Subcategory      string           `json:"subcategory,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	Price            float64          `json:"price"`
	CompareAtPrice   *float64         `json:"compareAtPrice,omitempty"`
	CostPrice        *float64         `json:"costPrice,omitempty"`
	MinPrice         *float64         `json:"minPrice,omitempty"`
	HasVariants      bool             `json:"hasVariants"`
	VariantOptions   map[string]any   `json:"variantOptions,omitempty"`
	TrackInventory   bool             `json:"trackInventory"`
	Quantity         int              `json:"quantity"`
	AllowBackorder   bool             `json:"allowBackorder"`
	Status           string           `json:"status"`
	InStock          bool             `json:"inStock"`
	Images           []ProductImage   `json:"images,omitempty"`
	Variants         []ProductVariant `json:"variants,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}
