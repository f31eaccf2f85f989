package directory

import (
	"context"
	"fmt"
	"strings"

	"localbiz-insights/internal/domain/entity"
)

// MaxRating is the upper bound of the rating scale.
const MaxRating = 5.0

// Repository is the read side of the catalog.
type Repository interface {
	All() []entity.Listing
	Find(id string) (entity.Listing, bool)
}

// Filter narrows List. Zero values disable the corresponding criterion.
// Text criteria match case-insensitively by substring.
type Filter struct {
	Category  string
	Location  string
	MinRating float64
}

// Validate rejects a minimum rating outside the rating scale.
func (f Filter) Validate() error {
	if f.MinRating < 0 || f.MinRating > MaxRating {
		return &entity.ValidationError{Field: "min_rating", Message: "must be between 0 and 5"}
	}
	return nil
}

func (f Filter) matches(l entity.Listing) bool {
	if !containsFold(l.Category, f.Category) {
		return false
	}
	if !containsFold(l.Address, f.Location) {
		return false
	}
	return l.Rating >= f.MinRating
}

func containsFold(s, substr string) bool {
	substr = strings.TrimSpace(substr)
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Service provides the directory use cases over a Repository.
type Service struct {
	Repo Repository
}

// List returns the listings that satisfy filter, in catalog order.
// The result is never nil.
func (s *Service) List(_ context.Context, filter Filter) ([]entity.Listing, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	all := s.Repo.All()
	out := make([]entity.Listing, 0, len(all))
	for _, l := range all {
		if filter.matches(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

// Get returns the listing with the given id, or ErrListingNotFound.
func (s *Service) Get(_ context.Context, id string) (entity.Listing, error) {
	l, ok := s.Repo.Find(strings.TrimSpace(id))
	if !ok {
		return entity.Listing{}, fmt.Errorf("get listing %q: %w", id, ErrListingNotFound)
	}
	return l, nil
}
