package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/model"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
)

// Checkout handler
// @Summary Checkout
// @Description Turns the cart into an order in one transaction. Guests must send an email.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body model.CheckoutRequest true "Checkout"
// @Success 200 {object} model.Order
// @Failure 400 {object} transport.Response
// @Failure 409 {object} transport.Response
// @Router /checkout [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}
	handle, ok := s.resolveCart(w, r)
	if !ok {
		return
	}

	order, err := s.CheckoutApp.Commit(r.Context(), handle, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, order)
}

// ListMyOrders handler
// @Summary My orders
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Router /account/orders [get]
func (s *RestHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())
	orders, err := s.OrderApp.ListMyOrders(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, orders)
}

// GetMyOrder handler
// @Summary My order
// @Tags Account
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.Order
// @Failure 404 {object} transport.Response
// @Router /account/orders/{id} [get]
func (s *RestHandler) GetMyOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	userID, _ := utilsContext.GetUserID(r.Context())
	order, err := s.OrderApp.GetMyOrder(r.Context(), userID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, order)
}
