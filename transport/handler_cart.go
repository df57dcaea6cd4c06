package transport

import (
	"net/http"
	"time"

	"github.com/muhammadheryan/storefront/model"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
)

// resolveCart finds or creates the caller's cart. A freshly issued guest token is sent back as a cookie.
func (s *RestHandler) resolveCart(w http.ResponseWriter, r *http.Request) (*model.CartHandle, bool) {
	handle, err := s.CartApp.ResolveCart(r.Context(), utilsContext.GetSession(r.Context()))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	if handle.Issued {
		http.SetCookie(w, s.cartCookie(handle.Token))
	}
	return handle, true
}

func (s *RestHandler) cartCookie(token string) *http.Cookie {
	c := &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if s.cookieTTL > 0 {
		c.MaxAge = int(s.cookieTTL / time.Second)
	}
	return c
}

func (s *RestHandler) expiredCartCookie() *http.Cookie {
	c := s.cartCookie("")
	c.MaxAge = -1
	return c
}

// writeCart answers a cart mutation with the cart as it now stands.
func (s *RestHandler) writeCart(w http.ResponseWriter, r *http.Request, handle *model.CartHandle) {
	res, err := s.CartApp.GetCart(r.Context(), handle)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetCart handler
// @Summary Current cart
// @Description Resolves the caller's cart, creating a guest cart and cookie when none exists.
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartResponse
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	handle, ok := s.resolveCart(w, r)
	if !ok {
		return
	}
	s.writeCart(w, r, handle)
}

// ClearCart handler
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartResponse
// @Router /cart [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	handle, ok := s.resolveCart(w, r)
	if !ok {
		return
	}
	if err := s.CartApp.ClearCart(r.Context(), handle); err != nil {
		writeError(w, err)
		return
	}
	s.writeCart(w, r, handle)
}

// AddCartItem handler
// @Summary Add item
// @Description Adds quantity to the variant's line and reserves stock for it.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.AddCartItemRequest true "Item"
// @Success 200 {object} model.CartResponse
// @Failure 409 {object} transport.Response "insufficient stock, detail carries sku/requested/available"
// @Router /cart/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req model.AddCartItemRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}
	handle, ok := s.resolveCart(w, r)
	if !ok {
		return
	}
	if _, err := s.CartApp.AddItem(r.Context(), handle, &req); err != nil {
		writeError(w, err)
		return
	}
	s.writeCart(w, r, handle)
}

// UpdateCartItem handler
// @Summary Set item quantity
// @Description Zero removes the line.
// @Tags Cart
// @Accept json
// @Produce json
// @Param itemId path int true "Cart item ID"
// @Param request body model.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} model.CartResponse
// @Router /cart/items/{itemId} [patch]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.UpdateCartItemRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}
	handle, ok := s.resolveCart(w, r)
	if !ok {
		return
	}
	if err := s.CartApp.UpdateQuantity(r.Context(), handle, itemID, req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	s.writeCart(w, r, handle)
}

// RemoveCartItem handler
// @Summary Remove item
// @Tags Cart
// @Produce json
// @Param itemId path int true "Cart item ID"
// @Success 200 {object} model.CartResponse
// @Router /cart/items/{itemId} [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeError(w, err)
		return
	}
	handle, ok := s.resolveCart(w, r)
	if !ok {
		return
	}
	if err := s.CartApp.RemoveItem(r.Context(), handle, itemID); err != nil {
		writeError(w, err)
		return
	}
	s.writeCart(w, r, handle)
}

// ApplyCoupon handler
// @Summary Apply coupon
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.ApplyCouponRequest true "Coupon"
// @Success 200 {object} model.CartResponse
// @Failure 404 {object} transport.Response
// @Router /cart/coupon [post]
func (s *RestHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req model.ApplyCouponRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}
	handle, ok := s.resolveCart(w, r)
	if !ok {
		return
	}
	if err := s.CartApp.ApplyCoupon(r.Context(), handle, req.Code); err != nil {
		writeError(w, err)
		return
	}
	s.writeCart(w, r, handle)
}

// RemoveCoupon handler
// @Summary Remove coupon
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartResponse
// @Router /cart/coupon [delete]
func (s *RestHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	handle, ok := s.resolveCart(w, r)
	if !ok {
		return
	}
	if err := s.CartApp.RemoveCoupon(r.Context(), handle); err != nil {
		writeError(w, err)
		return
	}
	s.writeCart(w, r, handle)
}
