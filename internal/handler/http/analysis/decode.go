package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"localbiz-insights/internal/handler/http/respond"
)

// decodeProfile reads and validates a ProfileRequest body.
func decodeProfile(r *http.Request) (ProfileRequest, error) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return req, respond.NewAppError(http.StatusRequestEntityTooLarge, "request body too large", err)
		}
		return req, respond.NewAppError(http.StatusBadRequest, "invalid request body", fmt.Errorf("decode profile: %w", err))
	}
	if err := req.validate(); err != nil {
		return req, respond.NewAppError(http.StatusBadRequest, err.Error(), nil)
	}
	return req, nil
}
