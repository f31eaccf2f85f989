package business

import (
	"errors"
	"net/http"
	"strconv"

	"localbiz-insights/internal/domain/entity"
	"localbiz-insights/internal/handler/http/respond"
	"localbiz-insights/internal/usecase/directory"
)

type ListHandler struct{ Svc *directory.Service }

// ServeHTTP lists catalog entries.
// @Summary      List businesses
// @Description  Lists the directory in catalog order. category and location match case-insensitively by substring; location is matched against the address.
// @Tags         businesses
// @Produce      json
// @Param        category   query string false "Category substring"
// @Param        location   query string false "Address substring"
// @Param        min_rating query number false "Minimum rating" minimum(0) maximum(5)
// @Success      200 {array} DTO
// @Failure      400 {object} map[string]string "Invalid min_rating"
// @Router       /api/businesses [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := directory.Filter{
		Category: q.Get("category"),
		Location: q.Get("location"),
	}
	if raw := q.Get("min_rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, errors.New("invalid min_rating"))
			return
		}
		filter.MinRating = v
	}

	list, err := h.Svc.List(r.Context(), filter)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, entity.ErrValidationFailed) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, l := range list {
		out = append(out, toDTO(l))
	}
	respond.JSON(w, http.StatusOK, out)
}
