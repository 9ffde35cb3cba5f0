package venue

import (
	"errors"
	"math"
)

var (
	ErrNegativePrice     = errors.New("Cannot be negative")
	ErrInvalidPrice      = errors.New("Invalid number format")
	ErrPriceRangeReverse = errors.New("Min price cannot exceed Max price")
)

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func NewPriceRange(minPrice, maxPrice float64) (PriceRange, error) {
	if !finite(minPrice) || !finite(maxPrice) {
		return PriceRange{}, ErrInvalidPrice
	}
	if minPrice < 0 || maxPrice < 0 {
		return PriceRange{}, ErrNegativePrice
	}
	if minPrice > maxPrice {
		return PriceRange{}, ErrPriceRangeReverse
	}
	return PriceRange{Min: minPrice, Max: maxPrice}, nil
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
