package trade

import (
	"fmt"

	"github.com/recell/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ReceivingRecord describes one physical phone arriving against a
// purchase order. It is input only and never persisted as such; the
// receiving flow turns each record into an inventory unit.
//
// LineItemIndex ties the record to the order line whose cost the unit
// inherits. Brand and model come from the record itself: the phone in
// hand governs what was actually received, even when it differs from
// what the line item said was ordered.
type ReceivingRecord struct {
	LineItemIndex int
	Brand         string
	Model         string
	Color         string
	IMEI          string
	Condition     string
	BatteryHealth *int
	StorageGB     *int
	RAMGB         *int
	SellingPrice  decimal.Decimal
	Notes         string
}

// ValidateReceiving checks a receiving submission against the order
// before anything is mutated. Checks run in order: order status, exact
// quantity match, line item references. Any failure rejects the whole
// submission.
func ValidateReceiving(order *PurchaseOrder, records []ReceivingRecord) error {
	if !order.Status.CanReceive() {
		return shared.NewDomainError("INVALID_STATE", "Only pending purchase orders can be received")
	}

	expected := order.ExpectedUnitCount()
	if len(records) != expected {
		return shared.NewDomainError("QUANTITY_MISMATCH",
			fmt.Sprintf("Expected %d units but received %d", expected, len(records)))
	}

	for i, record := range records {
		if _, err := order.ItemAt(record.LineItemIndex); err != nil {
			return shared.NewDomainError("INVALID_REFERENCE",
				fmt.Sprintf("Record %d references line item %d which does not exist", i, record.LineItemIndex))
		}
	}

	return nil
}
