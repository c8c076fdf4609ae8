package models

import "time"

const (
	// PriceCeiling is the maximum purchase price the store accepts.
	// Larger values are clamped, never rejected.
	PriceCeiling = 999999.99

	// BottleVolumeML is the fixed bottle volume. There is no per-bottle
	// volume column.
	BottleVolumeML = 750

	// StatusInStorage is the only bottle status; no consumption workflow
	// exists.
	StatusInStorage = "in_storage"
)

// Bottle is one inventory unit of the collection.
type Bottle struct {
	ID           int64
	Name         string
	Producer     string
	Vintage      int
	Region       string
	Price        float64
	PurchaseDate *time.Time
}

// Location is the optional shelving assignment of a bottle. At most one
// location row exists per bottle.
type Location struct {
	BottleID int64
	Shelf    string
	Rack     string
	Cellar   string
	Quantity int
}

// Empty reports whether all three shelving labels are blank. An empty
// location is never persisted.
func (l Location) Empty() bool {
	return l.Shelf == "" && l.Rack == "" && l.Cellar == ""
}

// BottleRow is a bottle left-joined with its location, plus the
// display-only fields the shell expects. Each fetch produces fresh
// copies; rows share no state with the store.
type BottleRow struct {
	Bottle
	Shelf  string
	Rack   string
	Cellar string

	Status       string
	SerialNumber string
	VolumeML     int
}

// BottleFields is the insert/update payload supplied by the shell.
type BottleFields struct {
	Name         string  `json:"name"`
	Producer     string  `json:"producer"`
	Vintage      int     `json:"vintage_year"`
	Region       string  `json:"region"`
	Price        float64 `json:"price"`
	PurchaseDate string  `json:"purchase_date"` // "2006-01-02", empty means no date
	Shelf        string  `json:"shelf"`
	Rack         string  `json:"rack"`
	Cellar       string  `json:"cellar"`
}

// HasLocation reports whether any shelving label is set.
func (f BottleFields) HasLocation() bool {
	return f.Shelf != "" || f.Rack != "" || f.Cellar != ""
}

// ClampedPrice returns the price limited to PriceCeiling. The ceiling is
// enforced here as well as at the shell, since it is a store invariant.
func (f BottleFields) ClampedPrice() float64 {
	if f.Price > PriceCeiling {
		return PriceCeiling
	}
	return f.Price
}
