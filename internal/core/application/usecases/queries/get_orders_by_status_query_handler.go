package queries

import (
	"context"

	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler retrieves order rows for one lifecycle status
// straight from the database. Uses direct SQL over the write-side table for
// optimal read performance in the CQRS pattern; the aggregate is never
// rehydrated for listing.
//
// Example:
//
//	handler := NewGetOrdersByStatusQueryHandler(db)
//	query, _ := NewGetOrdersByStatusQuery(order.New)
//
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered
// order queries. Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query and returns matching orders, newest first.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			COALESCE(assignment->>'staffName', ''),
			bill_payable,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at DESC
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRow maps one order row to the read model, converting database
// types to domain types. Shared by the status and all-orders handlers, whose
// select lists are identical.
func scanOrderRow(scan func(dest ...any) error) (GetOrdersByStatusQueryResponse, error) {
	var (
		id         uuid.UUID
		customerID uuid.NullUUID
		status     int
		staffName  string
		payable    int64
		orderResp  GetOrdersByStatusQueryResponse
	)

	if err := scan(&id, &customerID, &status, &staffName, &payable, &orderResp.CreatedAt); err != nil {
		return GetOrdersByStatusQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrdersByStatusQueryResponse{}, err
	}
	orderResp.ID = orderID

	if customerID.Valid {
		cID, customerErr := kernel.UUIDFromBytes(customerID.UUID[:])
		if customerErr != nil {
			return GetOrdersByStatusQueryResponse{}, customerErr
		}
		orderResp.CustomerID = &cID
	}

	orderResp.Status = order.Status(status)
	orderResp.StaffName = staffName
	orderResp.Payable = kernel.NewMoney(payable)

	return orderResp, nil
}
