// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Billing amounts live in dedicated columns so read-side queries can select
// them directly; the nested value objects (line items, assignment, bottle
// return, payment) are stored as jsonb documents since nothing queries into
// them relationally.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index"`
	Status       int        `gorm:"index"`
	Revision     int
	LineItems    []byte  `gorm:"type:jsonb"`
	Requirements []byte  `gorm:"type:jsonb"`
	Bill         BillDTO `gorm:"embedded;embeddedPrefix:bill_"`
	Assignment   []byte  `gorm:"type:jsonb"`
	BottleReturn []byte  `gorm:"type:jsonb"`
	Payment      []byte  `gorm:"type:jsonb"`
	CreatedAt    time.Time `gorm:"index"`
	AssignedAt   *time.Time
	ShippedAt    *time.Time
	CompletedAt  *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// BillDTO represents the embedded billing snapshot within the order table.
// All amounts are stored in the smallest currency unit.
type BillDTO struct {
	Subtotal        int64
	OtherCharges    int64
	DiscountKind    int
	DiscountValue   int64
	TaxPercent      int64
	DiscountAmount  int64
	TaxAmount       int64
	Payable         int64
	PreviousBalance int64
}

type lineItemRecord struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type assignmentRecord struct {
	StaffID   uuid.UUID `json:"staffId"`
	StaffName string    `json:"staffName"`
	Note      string    `json:"note,omitempty"`
}

type bottleReturnRecord struct {
	Ordered     int   `json:"ordered"`
	Received    int   `json:"received"`
	Collectable int64 `json:"collectable"`
}

type paymentRecord struct {
	Method     string `json:"method"`
	Received   int64  `json:"received"`
	Change     int64  `json:"change"`
	Action     int    `json:"action"`
	Reconciled bool   `json:"reconciled"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Marshals the nested value objects into their jsonb documents.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var customerID *uuid.UUID
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	items := make([]lineItemRecord, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, lineItemRecord{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Amount(),
			Quantity:  item.Quantity(),
		})
	}
	lineItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	requirements, err := json.Marshal(aggregate.Requirements())
	if err != nil {
		return OrderDTO{}, err
	}

	var assignment []byte
	if a := aggregate.Assignment(); a != nil {
		assignment, err = json.Marshal(assignmentRecord{
			StaffID:   a.StaffID().Bytes(),
			StaffName: a.StaffName(),
			Note:      a.Note(),
		})
		if err != nil {
			return OrderDTO{}, err
		}
	}

	var bottleReturn []byte
	if b := aggregate.BottleReturn(); b != nil {
		bottleReturn, err = json.Marshal(bottleReturnRecord{
			Ordered:     b.Ordered(),
			Received:    b.Received(),
			Collectable: b.Collectable().Amount(),
		})
		if err != nil {
			return OrderDTO{}, err
		}
	}

	var payment []byte
	if p := aggregate.Payment(); p != nil {
		payment, err = json.Marshal(paymentRecord{
			Method:     p.Method(),
			Received:   p.Received().Amount(),
			Change:     p.Change().Amount(),
			Action:     int(p.Action()),
			Reconciled: p.Reconciled(),
		})
		if err != nil {
			return OrderDTO{}, err
		}
	}

	bill := aggregate.Bill()
	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: customerID,
		Status:     int(aggregate.Status()),
		Revision:   aggregate.Revision(),
		LineItems:  lineItems,
		Requirements: requirements,
		Bill: BillDTO{
			Subtotal:        bill.Subtotal().Amount(),
			OtherCharges:    bill.OtherCharges().Amount(),
			DiscountKind:    int(bill.Discount().Kind()),
			DiscountValue:   bill.Discount().Value(),
			TaxPercent:      bill.TaxPercent(),
			DiscountAmount:  bill.DiscountAmount().Amount(),
			TaxAmount:       bill.TaxAmount().Amount(),
			Payable:         bill.Payable().Amount(),
			PreviousBalance: bill.PreviousBalance().Amount(),
		},
		Assignment:   assignment,
		BottleReturn: bottleReturn,
		Payment:      payment,
		CreatedAt:    aggregate.CreatedAt(),
		AssignedAt:   aggregate.AssignedAt(),
		ShippedAt:    aggregate.ShippedAt(),
		CompletedAt:  aggregate.CompletedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs every value object through its constructor so invalid rows
// surface as validation errors instead of half-built aggregates.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	lineItems, err := lineItemsToDomain(dto.LineItems)
	if err != nil {
		return nil, err
	}

	var requirements []string
	if len(dto.Requirements) > 0 {
		if err = json.Unmarshal(dto.Requirements, &requirements); err != nil {
			return nil, err
		}
	}

	discount, err := order.NewDiscount(order.DiscountKind(dto.Bill.DiscountKind), dto.Bill.DiscountValue)
	if err != nil {
		return nil, err
	}

	bill, err := order.NewBill(
		kernel.NewMoney(dto.Bill.Subtotal),
		kernel.NewMoney(dto.Bill.OtherCharges),
		discount,
		dto.Bill.TaxPercent,
		kernel.NewMoney(dto.Bill.DiscountAmount),
		kernel.NewMoney(dto.Bill.TaxAmount),
		kernel.NewMoney(dto.Bill.Payable),
		kernel.NewMoney(dto.Bill.PreviousBalance),
	)
	if err != nil {
		return nil, err
	}

	assignment, err := assignmentToDomain(dto.Assignment)
	if err != nil {
		return nil, err
	}

	bottleReturn, err := bottleReturnToDomain(dto.BottleReturn)
	if err != nil {
		return nil, err
	}

	payment, err := paymentToDomain(dto.Payment)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:           id,
		CustomerID:   customerID,
		LineItems:    lineItems,
		Requirements: requirements,
		Bill:         bill,
		Assignment:   assignment,
		BottleReturn: bottleReturn,
		Payment:      payment,
		Status:       order.Status(dto.Status),
		Revision:     dto.Revision,
		CreatedAt:    dto.CreatedAt,
		AssignedAt:   dto.AssignedAt,
		ShippedAt:    dto.ShippedAt,
		CompletedAt:  dto.CompletedAt,
	})
}

func lineItemsToDomain(raw []byte) ([]order.LineItem, error) {
	var records []lineItemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(records))
	for _, record := range records {
		item, err := order.NewLineItem(
			record.ProductID,
			record.Name,
			kernel.NewMoney(record.UnitPrice),
			record.Quantity,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func assignmentToDomain(raw []byte) (*order.Assignment, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var record assignmentRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}

	staffID, err := kernel.UUIDFromBytes(record.StaffID[:])
	if err != nil {
		return nil, err
	}

	assignment, err := order.NewAssignment(staffID, record.StaffName, record.Note)
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func bottleReturnToDomain(raw []byte) (*order.BottleReturn, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var record bottleReturnRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}

	bottleReturn, err := order.NewBottleReturn(
		record.Ordered,
		record.Received,
		kernel.NewMoney(record.Collectable),
	)
	if err != nil {
		return nil, err
	}
	return &bottleReturn, nil
}

func paymentToDomain(raw []byte) (*order.Payment, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var record paymentRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}

	payment, err := order.RestorePayment(
		record.Method,
		kernel.NewMoney(record.Received),
		kernel.NewMoney(record.Change),
		order.ReconcileAction(record.Action),
		record.Reconciled,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
