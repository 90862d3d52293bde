package model

// Brand is a leaf entity referenced by Product via BrandID.
type Brand struct {
	ID   int64
	Name string
}

// Category is a leaf entity referenced by Product via CategoryID.
type Category struct {
	ID   int64
	Name string
}
