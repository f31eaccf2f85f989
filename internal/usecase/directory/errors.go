// Package directory implements the read-only business directory: listing
// catalog entries with optional filters and looking one up by id.
package directory

import (
	"fmt"

	"localbiz-insights/internal/domain/entity"
)

// ErrListingNotFound indicates that no catalog entry has the requested id.
// It matches entity.ErrNotFound with errors.Is.
var ErrListingNotFound = fmt.Errorf("listing %w", entity.ErrNotFound)
