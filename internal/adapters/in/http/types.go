package http

import (
	"time"

	"shop/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewMemberRequest is the body of POST /api/v1/members.
type NewMemberRequest struct {
	Name    string `json:"name" validate:"required"`
	City    string `json:"city" validate:"required"`
	Street  string `json:"street" validate:"required"`
	Zipcode string `json:"zipcode" validate:"required"`
}

// MemberResponse is one member in GET /api/v1/members.
type MemberResponse struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Address AddressResponse `json:"address"`
}

// AddressResponse is an address rendered into a response body.
type AddressResponse struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

// NewItemRequest is the body of POST /api/v1/items. Kind selects which of
// the detail fields apply; the rest are ignored.
type NewItemRequest struct {
	Kind          string `json:"kind" validate:"required,oneof=Book Album Movie"`
	Name          string `json:"name" validate:"required"`
	Price         int    `json:"price" validate:"gte=0"`
	StockQuantity int    `json:"stockQuantity" validate:"gte=0"`

	Author   string `json:"author,omitempty"`
	ISBN     string `json:"isbn,omitempty"`
	Artist   string `json:"artist,omitempty"`
	Studio   string `json:"studio,omitempty"`
	Director string `json:"director,omitempty"`
	Actor    string `json:"actor,omitempty"`
}

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	MemberID int64              `json:"memberId" validate:"required,gt=0"`
	Lines    []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// OrderLineRequest is one item and quantity within an order request.
type OrderLineRequest struct {
	ItemID int64 `json:"itemId" validate:"required,gt=0"`
	Count  int   `json:"count" validate:"required,gt=0"`
}

// IDResponse carries the id assigned to a newly created resource.
type IDResponse struct {
	ID int64 `json:"id"`
}

// OrderResponse is one order in GET /api/v1/orders for all modes except
// flat.
type OrderResponse struct {
	OrderID    int64               `json:"orderId"`
	MemberName string              `json:"memberName"`
	OrderDate  time.Time           `json:"orderDate"`
	Status     string              `json:"status"`
	Address    AddressResponse     `json:"address"`
	Items      []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one order line in an order response.
type OrderItemResponse struct {
	ItemName   string `json:"itemName"`
	OrderPrice int    `json:"orderPrice"`
	Count      int    `json:"count"`
}

// OrderFlatResponse is one database row in GET /api/v1/orders?mode=flat:
// order-level values repeat on every row of the same order.
type OrderFlatResponse struct {
	OrderID    int64           `json:"orderId"`
	MemberName string          `json:"memberName"`
	OrderDate  time.Time       `json:"orderDate"`
	Status     string          `json:"status"`
	Address    AddressResponse `json:"address"`
	ItemName   string          `json:"itemName"`
	OrderPrice int             `json:"orderPrice"`
	Count      int             `json:"count"`
}

func toOrderResponse(view queries.OrderView) OrderResponse {
	items := make([]OrderItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, OrderItemResponse{
			ItemName:   item.ItemName,
			OrderPrice: item.OrderPrice,
			Count:      item.Count,
		})
	}

	return OrderResponse{
		OrderID:    view.OrderID,
		MemberName: view.MemberName,
		OrderDate:  view.OrderDate,
		Status:     view.Status.String(),
		Address: AddressResponse{
			City:    view.Address.City(),
			Street:  view.Address.Street(),
			Zipcode: view.Address.Zipcode(),
		},
		Items: items,
	}
}

func toOrderFlatResponse(row queries.OrderFlatRow) OrderFlatResponse {
	return OrderFlatResponse{
		OrderID:    row.OrderID,
		MemberName: row.MemberName,
		OrderDate:  row.OrderDate,
		Status:     row.Status.String(),
		Address: AddressResponse{
			City:    row.Address.City(),
			Street:  row.Address.Street(),
			Zipcode: row.Address.Zipcode(),
		},
		ItemName:   row.ItemName,
		OrderPrice: row.OrderPrice,
		Count:      row.Count,
	}
}
