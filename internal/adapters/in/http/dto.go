package http

import (
	"time"

	"hydrohub/internal/core/application/usecases/queries"
	"hydrohub/internal/core/domain/model/cart"
	"hydrohub/internal/core/domain/model/kernel"
	"hydrohub/internal/core/domain/model/order"
	"hydrohub/internal/core/domain/services"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItemRequest is one cart position in a request body. Prices are in the
// smallest currency unit.
type LineItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name"      validate:"required"`
	UnitPrice int64  `json:"unitPrice" validate:"gte=0"`
	Quantity  int    `json:"quantity"  validate:"gt=0"`
}

// DiscountRequest selects a bill discount. Value is an amount for flat
// discounts and a whole-number percent for percent discounts.
type DiscountRequest struct {
	Kind  string `json:"kind"  validate:"required,oneof=flat percent"`
	Value int64  `json:"value" validate:"gte=0"`
}

// CreateOrderRequest creates an order from a priced cart. CustomerID is
// omitted for walk-in sales; mergeIntoBalance requires it.
type CreateOrderRequest struct {
	Items            []LineItemRequest `json:"items"            validate:"required,min=1,dive"`
	CustomerID       *string           `json:"customerId"       validate:"omitempty,uuid"`
	OtherCharges     int64             `json:"otherCharges"     validate:"gte=0"`
	Discount         *DiscountRequest  `json:"discount"         validate:"omitempty"`
	TaxPercent       int64             `json:"taxPercent"       validate:"gte=0,lte=100"`
	Requirements     []string          `json:"requirements"`
	MergeIntoBalance bool              `json:"mergeIntoBalance"`
}

// AssignOrderRequest hands an order to a delivery staff member.
type AssignOrderRequest struct {
	StaffID      string   `json:"staffId" validate:"required,uuid"`
	Requirements []string `json:"requirements"`
	Note         string   `json:"note"`
}

// BottleReturnRequest records empty-bottle collection at the door.
type BottleReturnRequest struct {
	Ordered     int   `json:"ordered"     validate:"gte=0"`
	Received    int   `json:"received"    validate:"gte=0"`
	Collectable int64 `json:"collectable" validate:"gte=0"`
}

// UpdateDeliveryRequest corrects a shipped order's delivered quantities and
// bottle returns; the bill is recomputed from the revised items.
type UpdateDeliveryRequest struct {
	Items        []LineItemRequest   `json:"items"        validate:"required,min=1,dive"`
	BottleReturn BottleReturnRequest `json:"bottleReturn" validate:"required"`
}

// CompleteOrderRequest takes payment and closes an order.
type CompleteOrderRequest struct {
	Method          string `json:"method"          validate:"required"`
	Received        int64  `json:"received"        validate:"gte=0"`
	ReconcileAction string `json:"reconcileAction" validate:"required,oneof=returnCash addToBalance"`
}

// ParkCartRequest suspends the active cart for later restoration.
type ParkCartRequest struct {
	Items      []LineItemRequest `json:"items"      validate:"required,min=1,dive"`
	CustomerID *string           `json:"customerId" validate:"omitempty,uuid"`
}

// QuoteRequest prices a cart without creating an order.
type QuoteRequest struct {
	Items        []LineItemRequest `json:"items"        validate:"required,min=1,dive"`
	OtherCharges int64             `json:"otherCharges" validate:"gte=0"`
	Discount     *DiscountRequest  `json:"discount"     validate:"omitempty"`
	TaxPercent   int64             `json:"taxPercent"   validate:"gte=0,lte=100"`
	Received     int64             `json:"received"     validate:"gte=0"`
}

// QuoteResponse is the priced breakdown for a quote request.
type QuoteResponse struct {
	Subtotal       int64 `json:"subtotal"`
	DiscountAmount int64 `json:"discountAmount"`
	Base           int64 `json:"base"`
	TaxAmount      int64 `json:"taxAmount"`
	Payable        int64 `json:"payable"`
	Change         int64 `json:"change"`
}

// OrderSummaryResponse is one row of an order listing.
type OrderSummaryResponse struct {
	ID         string    `json:"id"`
	CustomerID *string   `json:"customerId,omitempty"`
	Status     string    `json:"status"`
	StaffName  string    `json:"staffName,omitempty"`
	Payable    int64     `json:"payable"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ParkedOrderSummaryResponse is one row of the parked cart listing.
type ParkedOrderSummaryResponse struct {
	ID         string    `json:"id"`
	CustomerID *string   `json:"customerId,omitempty"`
	ItemCount  int       `json:"itemCount"`
	Subtotal   int64     `json:"subtotal"`
	ParkedAt   time.Time `json:"parkedAt"`
}

// RestoredCartResponse returns a consumed parked cart to the caller.
type RestoredCartResponse struct {
	ID         string             `json:"id"`
	CustomerID *string            `json:"customerId,omitempty"`
	Items      []LineItemResponse `json:"items"`
	ParkedAt   time.Time          `json:"parkedAt"`
}

// LineItemResponse mirrors LineItemRequest on the way out.
type LineItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// toCart converts request items into a shopping cart, merging duplicate
// product positions the way the counter cart does.
func toCart(items []LineItemRequest) (cart.Cart, error) {
	shoppingCart := cart.NewCart()
	for _, item := range items {
		lineItem, err := order.NewLineItem(item.ProductID, item.Name, kernel.NewMoney(item.UnitPrice), 1)
		if err != nil {
			return cart.Cart{}, err
		}

		current := 0
		for _, existing := range shoppingCart.Items() {
			if existing.IsSameProduct(lineItem) {
				current = existing.Quantity()
				break
			}
		}

		shoppingCart, err = shoppingCart.UpdateQuantity(lineItem, current+item.Quantity)
		if err != nil {
			return cart.Cart{}, err
		}
	}

	return shoppingCart, nil
}

// toDiscount converts an optional discount request, defaulting to none.
func toDiscount(request *DiscountRequest) (order.Discount, error) {
	if request == nil {
		return order.NoDiscount(), nil
	}

	kind, err := order.DiscountKindFromString(request.Kind)
	if err != nil {
		return order.Discount{}, err
	}

	return order.NewDiscount(kind, request.Value)
}

// toCustomerID parses an optional customer reference.
func toCustomerID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func toQuoteResponse(quote services.Quote) QuoteResponse {
	return QuoteResponse{
		Subtotal:       quote.Subtotal.Amount(),
		DiscountAmount: quote.DiscountAmount.Amount(),
		Base:           quote.Base.Amount(),
		TaxAmount:      quote.TaxAmount.Amount(),
		Payable:        quote.Payable.Amount(),
		Change:         quote.Change.Amount(),
	}
}

func toOrderSummary(row queries.GetOrdersByStatusQueryResponse) OrderSummaryResponse {
	summary := OrderSummaryResponse{
		ID:        row.ID.String(),
		Status:    row.Status.String(),
		StaffName: row.StaffName,
		Payable:   row.Payable.Amount(),
		CreatedAt: row.CreatedAt,
	}
	if row.CustomerID != nil {
		id := row.CustomerID.String()
		summary.CustomerID = &id
	}
	return summary
}

func toParkedSummary(row queries.GetParkedOrdersQueryResponse) ParkedOrderSummaryResponse {
	summary := ParkedOrderSummaryResponse{
		ID:        row.ID.String(),
		ItemCount: row.ItemCount,
		Subtotal:  row.Subtotal.Amount(),
		ParkedAt:  row.ParkedAt,
	}
	if row.CustomerID != nil {
		id := row.CustomerID.String()
		summary.CustomerID = &id
	}
	return summary
}

func toRestoredCart(parked *cart.ParkedOrder) RestoredCartResponse {
	items := make([]LineItemResponse, 0, parked.Cart().Size())
	for _, item := range parked.Cart().Items() {
		items = append(items, LineItemResponse{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Amount(),
			Quantity:  item.Quantity(),
		})
	}

	response := RestoredCartResponse{
		ID:       parked.ID().String(),
		Items:    items,
		ParkedAt: parked.CreatedAt(),
	}
	if customerID := parked.CustomerID(); customerID != nil {
		id := customerID.String()
		response.CustomerID = &id
	}
	return response
}
