package entity

import "strings"

// Listing is one business in the directory catalog.
type Listing struct {
	ID          string
	Name        string
	Category    string
	Rating      float64
	ReviewCount int
	Address     string
	Image       string
	HasWebsite  bool
	HasPhone    bool
	IsOnline    bool
}

// Profile projects the listing onto the fields an analysis needs.
func (l Listing) Profile() BusinessProfile {
	return BusinessProfile{
		Name:        l.Name,
		Category:    l.Category,
		Rating:      l.Rating,
		ReviewCount: l.ReviewCount,
		Address:     l.Address,
		HasWebsite:  l.HasWebsite,
		HasPhone:    l.HasPhone,
	}
}

// Validate checks the fields the directory relies on for lookup and display.
func (l Listing) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return &ValidationError{Field: "id", Message: "listing id is required"}
	}
	if strings.TrimSpace(l.Name) == "" {
		return &ValidationError{Field: "name", Message: "listing name is required"}
	}
	if l.ReviewCount < 0 {
		return &ValidationError{Field: "review_count", Message: "review count cannot be negative"}
	}
	return nil
}
