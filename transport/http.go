package transport

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	cartapp "github.com/muhammadheryan/storefront/application/cart"
	checkoutapp "github.com/muhammadheryan/storefront/application/checkout"
	orderapp "github.com/muhammadheryan/storefront/application/order"
	productapp "github.com/muhammadheryan/storefront/application/product"
	stockapp "github.com/muhammadheryan/storefront/application/stock"
	userapp "github.com/muhammadheryan/storefront/application/user"
	warehouseapp "github.com/muhammadheryan/storefront/application/warehouse"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/metrics"
	validatorx "github.com/muhammadheryan/storefront/utils/validator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	CartApp      cartapp.CartApp
	CheckoutApp  checkoutapp.CheckoutApp
	OrderApp     orderapp.OrderApp
	ProductApp   productapp.ProductApp
	StockApp     stockapp.StockApp
	WarehouseApp warehouseapp.WarehouseApp

	cookieName string
	cookieTTL  time.Duration
}

type Options struct {
	CartCookieName string
	CartCookieTTL  time.Duration
	InternalAPIKey string
	// Metrics serves /metrics; nil falls back to the default prometheus registry.
	Metrics     http.Handler
	HTTPMetrics *metrics.HTTPMetrics
}

// Response is the envelope of every JSON body the API writes.
type Response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Detail  any    `json:"detail,omitempty"`
}

func NewTransport(rh *RestHandler, opts Options) http.Handler {
	rh.cookieName = opts.CartCookieName
	if rh.cookieName == "" {
		rh.cookieName = "cart_token"
	}
	rh.cookieTTL = opts.CartCookieTTL

	metricsHandler := opts.Metrics
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	router := mux.NewRouter()
	router.Use(LoggingMiddleware(opts.HTTPMetrics))

	// Swagger UI and metrics
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.Handle("/metrics", metricsHandler).Methods(http.MethodGet)

	// service-to-service routes
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(opts.InternalAPIKey))
	internal.HandleFunc("/cart/{id}/expire", rh.ExpireCart).Methods(http.MethodPost)

	// operator routes
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(InternalMiddleware(opts.InternalAPIKey))
	admin.HandleFunc("/stock/set", rh.SetStock).Methods(http.MethodPost)
	admin.HandleFunc("/stock/adjust", rh.AdjustStock).Methods(http.MethodPost)
	admin.HandleFunc("/stock/transfer", rh.TransferStock).Methods(http.MethodPost)
	admin.HandleFunc("/stock/{variantId}", rh.GetStock).Methods(http.MethodGet)
	admin.HandleFunc("/stock/{variantId}/movements", rh.ListMovements).Methods(http.MethodGet)
	admin.HandleFunc("/stock/{variantId}/reconcile", rh.Reconcile).Methods(http.MethodGet)
	admin.HandleFunc("/warehouses/{id}/activate", rh.ActivateWarehouse).Methods(http.MethodPost)
	admin.HandleFunc("/warehouses/{id}/deactivate", rh.DeactivateWarehouse).Methods(http.MethodPost)

	// shopper routes, guests included
	shop := router.PathPrefix("/").Subrouter()
	shop.Use(SessionMiddleware(rh.UserApp, rh.cookieName))

	shop.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	shop.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	shop.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)

	shop.HandleFunc("/variants", rh.ListVariants).Methods(http.MethodGet)
	shop.HandleFunc("/variants/{id}", rh.GetVariant).Methods(http.MethodGet)
	shop.HandleFunc("/variants/{id}/availability", rh.CheckAvailability).Methods(http.MethodGet)

	shop.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	shop.HandleFunc("/cart", rh.ClearCart).Methods(http.MethodDelete)
	shop.HandleFunc("/cart/items", rh.AddCartItem).Methods(http.MethodPost)
	shop.HandleFunc("/cart/items/{itemId}", rh.UpdateCartItem).Methods(http.MethodPatch)
	shop.HandleFunc("/cart/items/{itemId}", rh.RemoveCartItem).Methods(http.MethodDelete)
	shop.HandleFunc("/cart/coupon", rh.ApplyCoupon).Methods(http.MethodPost)
	shop.HandleFunc("/cart/coupon", rh.RemoveCoupon).Methods(http.MethodDelete)
	shop.HandleFunc("/checkout", rh.Checkout).Methods(http.MethodPost)

	account := shop.PathPrefix("/account").Subrouter()
	account.Use(RequireUser)
	account.HandleFunc("/orders", rh.ListMyOrders).Methods(http.MethodGet)
	account.HandleFunc("/orders/{id}", rh.GetMyOrder).Methods(http.MethodGet)

	return router
}

// decodeRequest reads a JSON body into dst and validates it. An empty body decodes to the zero value.
func decodeRequest(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !stderrors.Is(err, io.EOF) {
		return invalidRequest()
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		if fields := validatorx.Describe(err); fields != nil {
			return errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, fields)
		}
		return invalidRequest()
	}
	return nil
}

func pathID(r *http.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		return 0, invalidRequest()
	}
	return id, nil
}

// queryInt returns def when the parameter is absent and an error when it is not a number.
func queryInt(r *http.Request, name string, def int64) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalidRequest()
	}
	return v, nil
}

func invalidRequest() error {
	return errors.SetCustomError(constant.ErrInvalidRequest)
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError never leaks storage errors; anything that is not a CustomError is reported as internal.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(errors.Normalize("[HTTP]", err), &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), Response{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
		Detail:  ce.Detail(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
