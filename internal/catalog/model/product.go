// Package model defines the catalog's persistence entities.
package model

import "time"

// Product is a catalog item. CategoryID and BrandID are denormalized ids
// rather than owned references; they are resolved by explicit lookup in
// the owning stores, which keeps the Product, Category and Brand stores
// free of ownership cycles. Both references are immutable after creation.
type Product struct {
	ID            int64
	Name          string
	Description   string
	Price         int64 // price in cents
	StockQuantity int32
	CategoryID    int64
	BrandID       int64
	CreatedAt     time.Time
	ModifiedAt    time.Time
}
