package transport

import (
	"net/http"
)

// ListVariants handler
// @Summary List variants
// @Tags Catalog
// @Produce json
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Per page" default(10)
// @Success 200 {object} model.VariantListResponse
// @Router /variants [get]
func (s *RestHandler) ListVariants(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeError(w, err)
		return
	}
	perPage, err := queryInt(r, "per_page", 10)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ProductApp.ListVariants(r.Context(), int(page), int(perPage))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetVariant handler
// @Summary Get variant
// @Tags Catalog
// @Produce json
// @Param id path int true "Variant ID"
// @Success 200 {object} model.VariantListItem
// @Failure 404 {object} transport.Response
// @Router /variants/{id} [get]
func (s *RestHandler) GetVariant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.ProductApp.GetVariant(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CheckAvailability handler
// @Summary Check availability
// @Tags Catalog
// @Produce json
// @Param id path int true "Variant ID"
// @Param qty query int false "Required quantity"
// @Success 200 {object} model.Availability
// @Router /variants/{id}/availability [get]
func (s *RestHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	qty, err := queryInt(r, "qty", 1)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.StockApp.CheckAvailability(r.Context(), id, qty)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
