package business

import (
	"errors"
	"net/http"

	"localbiz-insights/internal/handler/http/respond"
	"localbiz-insights/internal/usecase/directory"
)

type GetHandler struct{ Svc *directory.Service }

// ServeHTTP returns one catalog entry.
// @Summary      Get a business
// @Tags         businesses
// @Produce      json
// @Param        id path string true "Listing ID"
// @Success      200 {object} DTO
// @Failure      404 {object} map[string]string "Listing not found"
// @Router       /api/businesses/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(l))
}

func statusFor(err error) int {
	if errors.Is(err, directory.ErrListingNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
