package catalog

import (
	"errors"
	"time"
)

// Category enumerates the apparel lines the shop tracks.
type Category string

const (
	// CategoryHoodie covers hooded sweatshirts.
	CategoryHoodie Category = "Hoodie"
	// CategoryTShirt covers printed and plain tees.
	CategoryTShirt Category = "T-shirt"
	// CategoryPants covers trousers and joggers.
	CategoryPants Category = "Pants"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryHoodie, CategoryTShirt, CategoryPants}
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryHoodie, CategoryTShirt, CategoryPants:
		return true
	}
	return false
}

// Status enumerates the lifecycle states of a product record.
type Status string

const (
	// StatusInStock means the item sits on the shop floor, sellable.
	StatusInStock Status = "In Stock"
	// StatusBooked means a buyer has reserved the item.
	StatusBooked Status = "Booked"
	// StatusNotDelivered marks a manually flagged failed handover.
	// It is never produced by Advance; the operator sets it through edit.
	StatusNotDelivered Status = "Not Delivered"
	// StatusDelivered means the item reached the buyer.
	StatusDelivered Status = "Delivered"
	// StatusOutOfStock means the last unit has been delivered.
	StatusOutOfStock Status = "Out of Stock"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusInStock, StatusBooked, StatusNotDelivered, StatusDelivered, StatusOutOfStock:
		return true
	}
	return false
}

// Product models one tracked inventory line.
type Product struct {
	ID             string    `json:"id"`
	ItemName       string    `json:"itemName"`
	Category       Category  `json:"category"`
	InvestmentCost float64   `json:"investmentCost"`
	SellingPrice   float64   `json:"sellingPrice"`
	StockQuantity  int       `json:"stockQuantity"`
	Status         Status    `json:"status"`
	IsTrash        bool      `json:"isTrash"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Draft carries the operator-supplied fields for a new product.
type Draft struct {
	ItemName       string
	Category       Category
	InvestmentCost float64
	SellingPrice   float64
	StockQuantity  int
	Status         Status
}

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("catalog: product not found")

// ErrInvalidCategory indicates a category outside the closed enumeration.
var ErrInvalidCategory = errors.New("catalog: unknown category")

// ErrInvalidStatus indicates a status outside the closed enumeration.
var ErrInvalidStatus = errors.New("catalog: unknown status")
