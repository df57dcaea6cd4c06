package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/model"
)

// SetStock handler
// @Summary Set on-hand
// @Description Records an ADJUSTMENT movement for the difference.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SetStockRequest true "Level"
// @Success 200 {object} model.StockLevel
// @Router /admin/stock/set [post]
func (s *RestHandler) SetStock(w http.ResponseWriter, r *http.Request) {
	var req model.SetStockRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}
	level, err := s.StockApp.SetOnHand(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, level)
}

// AdjustStock handler
// @Summary Adjust on-hand
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AdjustStockRequest true "Adjustment"
// @Success 200 {object} model.StockLevel
// @Router /admin/stock/adjust [post]
func (s *RestHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req model.AdjustStockRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}
	level, err := s.StockApp.AdjustOnHand(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, level)
}

// TransferStock handler
// @Summary Transfer stock between warehouses
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.TransferStockRequest true "Transfer"
// @Success 200 {object} transport.Response
// @Router /admin/stock/transfer [post]
func (s *RestHandler) TransferStock(w http.ResponseWriter, r *http.Request) {
	var req model.TransferStockRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.WarehouseApp.TransferStock(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// GetStock handler
// @Summary Stock levels per warehouse
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param variantId path int true "Variant ID"
// @Success 200 {array} model.StockLevel
// @Router /admin/stock/{variantId} [get]
func (s *RestHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	variantID, err := pathID(r, "variantId")
	if err != nil {
		writeError(w, err)
		return
	}
	levels, err := s.StockApp.ReadAllWarehouses(r.Context(), variantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, levels)
}

// ListMovements handler
// @Summary Ledger movements
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param variantId path int true "Variant ID"
// @Param warehouse_id query int true "Warehouse ID"
// @Param limit query int false "Limit"
// @Success 200 {array} model.StockMovement
// @Router /admin/stock/{variantId}/movements [get]
func (s *RestHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	variantID, err := pathID(r, "variantId")
	if err != nil {
		writeError(w, err)
		return
	}
	warehouseID, err := queryInt(r, "warehouse_id", 0)
	if err != nil || warehouseID <= 0 {
		writeError(w, invalidRequest())
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, err)
		return
	}
	movements, err := s.StockApp.ListMovements(r.Context(), variantID, uint64(warehouseID), int(limit))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, movements)
}

// Reconcile handler
// @Summary Reconcile counters with the ledger
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param variantId path int true "Variant ID"
// @Success 200 {object} model.ReconcileReport
// @Router /admin/stock/{variantId}/reconcile [get]
func (s *RestHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	variantID, err := pathID(r, "variantId")
	if err != nil {
		writeError(w, err)
		return
	}
	report, err := s.StockApp.Reconcile(r.Context(), variantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, report)
}

// ActivateWarehouse handler
// @Summary Activate warehouse
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Warehouse ID"
// @Success 200 {object} transport.Response
// @Router /admin/warehouses/{id}/activate [post]
func (s *RestHandler) ActivateWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.WarehouseApp.ActivateWarehouse(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// DeactivateWarehouse handler
// @Summary Deactivate warehouse
// @Description Refused while the warehouse still holds reservations.
// @Tags Admin
// @Security BearerAuth
// @Param id path int true "Warehouse ID"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /admin/warehouses/{id}/deactivate [post]
func (s *RestHandler) DeactivateWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.WarehouseApp.DeactivateWarehouse(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ExpireCart is called by the expiration consumer. It is idempotent; a fresh or missing cart is left alone.
func (s *RestHandler) ExpireCart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	expired, err := s.CartApp.ExpireCart(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"expired": expired})
}
