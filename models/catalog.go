// ABOUTME: Catalog view models for categories and products
// ABOUTME: Field names mirror the storefront API serializers

package models

// Category is a storefront product category.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	ImageURL    string `json:"image_url"`
}

// Product is a ready-to-wear catalog item.
type Product struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        Decimal  `json:"price"`
	Slug         string   `json:"slug"`
	ImageURL     string   `json:"image_url"`
	Measurements string   `json:"measurements"`
	Category     Category `json:"category"`
}

// ProductList is the paginated products response.
type ProductList struct {
	Count   int       `json:"count"`
	Results []Product `json:"results"`
}
