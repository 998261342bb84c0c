package entity

import "github.com/shopspring/decimal"

// LimitSet holds a user's per-category monthly spending limits. A category
// absent from the mapping has no limit configured.
type LimitSet struct {
	UserID int64
	Limits map[Category]decimal.Decimal
}

// NewLimitSet creates an empty LimitSet for the given user.
func NewLimitSet(userID int64) *LimitSet {
	return &LimitSet{
		UserID: userID,
		Limits: make(map[Category]decimal.Decimal),
	}
}

// Get returns the limit configured for the category, if any.
func (s *LimitSet) Get(category Category) (decimal.Decimal, bool) {
	if s == nil || s.Limits == nil {
		return decimal.Zero, false
	}
	limit, ok := s.Limits[category]
	return limit, ok
}

// Set stores the limit for the category.
func (s *LimitSet) Set(category Category, amount decimal.Decimal) {
	if s.Limits == nil {
		s.Limits = make(map[Category]decimal.Decimal)
	}
	s.Limits[category] = amount
}

// Scaled returns a copy with every configured limit multiplied by the given
// number of months. Used to compare multi-month spending against monthly
// ceilings.
func (s *LimitSet) Scaled(months int64) *LimitSet {
	if s == nil {
		return nil
	}
	scaled := NewLimitSet(s.UserID)
	factor := decimal.NewFromInt(months)
	for category, limit := range s.Limits {
		scaled.Limits[category] = limit.Mul(factor)
	}
	return scaled
}
