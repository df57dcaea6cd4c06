package constant

type MovementType string

const (
	MovementAdjustment       MovementType = "ADJUSTMENT"
	MovementPurchaseReceipt  MovementType = "PURCHASE_RECEIPT"
	MovementOrderReservation MovementType = "ORDER_RESERVATION"
	MovementOrderRelease     MovementType = "ORDER_RELEASE"
	MovementOrderFulfill     MovementType = "ORDER_FULFILL"
	MovementReturnToStock    MovementType = "RETURN_TO_STOCK"
	MovementShrinkage        MovementType = "SHRINKAGE"
)

// Valid reports whether t is one of the known movement types.
func (t MovementType) Valid() bool {
	switch t {
	case MovementAdjustment, MovementPurchaseReceipt, MovementOrderReservation, MovementOrderRelease,
		MovementOrderFulfill, MovementReturnToStock, MovementShrinkage:
		return true
	}
	return false
}

// StockCounter names which StockLevel counter a movement changed.
type StockCounter string

const (
	CounterOnHand   StockCounter = "ON_HAND"
	CounterReserved StockCounter = "RESERVED"
)

// MaxLineQuantity caps a single cart line. Untracked variants have no stock to bound them otherwise.
const MaxLineQuantity int64 = 10000

type WarehouseStatus int

const (
	WarehouseStatusActive   WarehouseStatus = 1
	WarehouseStatusInactive WarehouseStatus = 2
)
