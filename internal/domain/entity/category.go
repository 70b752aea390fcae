package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
)

// DefaultCategoryNames are seeded once with IsCustom = false
var DefaultCategoryNames = []string{
	"transportation",
	"groceries",
	"dining",
	"bills",
	"subscription",
	"utilities",
	"rent",
	"loan",
	"gym",
	"salary",
	"gift",
	"side-hustle",
	"refund",
	"payback",
}

// Category labels transactions, budgets and bills. Names are unique by
// convention only.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      *string   `json:"icon"`
	Color     *string   `json:"color"`
	IsCustom  bool      `json:"isCustom"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCategory holds the caller supplied fields of a category
type NewCategory struct {
	Name     string
	Icon     *string
	Color    *string
	IsCustom bool
}

// Validate checks the category input
func (c NewCategory) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errs.ErrEmptyName
	}
	return nil
}
