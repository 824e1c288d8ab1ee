// Package parkedrepo provides the Redis-backed store for parked carts.
// Parked orders are transient counter state, not business records: they live
// outside the transactional database and are consumed exactly once on
// restore.
package parkedrepo

import (
	"encoding/json"
	"time"

	"hydrohub/internal/core/domain/model/cart"
	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
)

// parkedOrderRecord is the JSON document stored under each parked-order key.
type parkedOrderRecord struct {
	ID         string           `json:"id"`
	CustomerID string           `json:"customerId,omitempty"`
	Items      []lineItemRecord `json:"items"`
	CreatedAt  time.Time        `json:"createdAt"`
}

type lineItemRecord struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// marshal converts a parked order to its stored JSON document.
func marshal(aggregate *cart.ParkedOrder) ([]byte, error) {
	items := make([]lineItemRecord, 0, aggregate.Cart().Size())
	for _, item := range aggregate.Cart().Items() {
		items = append(items, lineItemRecord{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Amount(),
			Quantity:  item.Quantity(),
		})
	}

	record := parkedOrderRecord{
		ID:        aggregate.ID().String(),
		Items:     items,
		CreatedAt: aggregate.CreatedAt().UTC(),
	}
	if customerID := aggregate.CustomerID(); customerID != nil {
		record.CustomerID = customerID.String()
	}

	return json.Marshal(record)
}

// unmarshal rebuilds a parked order from its stored JSON document.
func unmarshal(raw []byte) (*cart.ParkedOrder, error) {
	var record parkedOrderRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromString(record.ID)
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if record.CustomerID != "" {
		cID, customerErr := kernel.UUIDFromString(record.CustomerID)
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	items := make([]order.LineItem, 0, len(record.Items))
	for _, item := range record.Items {
		lineItem, itemErr := order.NewLineItem(
			item.ProductID,
			item.Name,
			kernel.NewMoney(item.UnitPrice),
			item.Quantity,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, lineItem)
	}

	shoppingCart, err := cart.RestoreCart(items)
	if err != nil {
		return nil, err
	}

	return cart.RestoreParkedOrder(id, shoppingCart, customerID, record.CreatedAt)
}
