package model

import "github.com/shopspring/decimal"

// MenuCategory is one section of a restaurant's menu document. The
// persisted menu field is a JSON array of these. Both Items and each
// item's Price are optional; consumers must tolerate their absence.
type MenuCategory struct {
	Name  string     `json:"name,omitempty"`
	Items []MenuItem `json:"items,omitempty"`
}

// MenuItem is a single dish within a category.
type MenuItem struct {
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}
