package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the JSON body for POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID string   `json:"customerId"`
	AddressID  string   `json:"addressId"`
	ItemIDs    []string `json:"itemIds"`
	AddonIDs   []string `json:"addonIds"`
}

// ChangeStatusRequest is the JSON body for PATCH /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Status int    `json:"status"`
	Reason string `json:"reason"`
}

// BulkChangeStatusRequest is the JSON body for PATCH /api/v1/orders/status/bulk.
type BulkChangeStatusRequest struct {
	OrderIDs []string `json:"orderIds"`
	Status   int      `json:"status"`
	Reason   string   `json:"reason"`
}

// BulkChangeStatusResponse reports how many orders a bulk update touched.
type BulkChangeStatusResponse struct {
	ModifiedCount int `json:"modifiedCount"`
}

// CustomerOrdersRequest is the JSON body for POST /api/v1/orders/mine.
type CustomerOrdersRequest struct {
	CustomerID string `json:"customerId"`
}

// CurrentOrderRequest is the JSON body for POST /api/v1/orders/current.
type CurrentOrderRequest struct {
	Phone string `json:"phone"`
}

// OrderResponse is the JSON representation of an order aggregate, returned by
// the command endpoints.
type OrderResponse struct {
	ID           string               `json:"id"`
	CustomerID   string               `json:"customerId"`
	AddressID    string               `json:"addressId"`
	ItemIDs      []string             `json:"itemIds"`
	AddonIDs     []string             `json:"addonIds"`
	Status       int                  `json:"status"`
	StatusName   string               `json:"statusName"`
	StatusReason string               `json:"statusReason,omitempty"`
	Timestamps   map[string]time.Time `json:"timestamps"`
	CreatedAt    time.Time            `json:"createdAt"`
}

// OrderStatusResponse is the JSON body for GET /api/v1/orders/:id/status.
type OrderStatusResponse struct {
	OrderID    string               `json:"orderId"`
	Status     int                  `json:"status"`
	StatusName string               `json:"statusName"`
	Timestamps map[string]time.Time `json:"timestamps"`
}

// CustomerSummary is the customer display data joined into listings.
type CustomerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AddressSummary is the address display data joined into listings.
type AddressSummary struct {
	ID     string `json:"id"`
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

// OrderLine is one referenced item or add-on with display data.
type OrderLine struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int    `json:"priceCents"`
}

// OrderListEntry is one row of an order listing.
type OrderListEntry struct {
	OrderID    string           `json:"orderId"`
	Status     int              `json:"status"`
	StatusName string           `json:"statusName"`
	CreatedAt  time.Time        `json:"createdAt"`
	Customer   *CustomerSummary `json:"customer,omitempty"`
	Address    *AddressSummary  `json:"address,omitempty"`
}

// OrderDetailResponse is the JSON body for GET /api/v1/orders/:id and the
// order part of POST /api/v1/orders/current.
type OrderDetailResponse struct {
	OrderID      string               `json:"orderId"`
	Status       int                  `json:"status"`
	StatusName   string               `json:"statusName"`
	StatusReason string               `json:"statusReason,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	Timestamps   map[string]time.Time `json:"timestamps"`
	Customer     CustomerSummary      `json:"customer"`
	Address      AddressSummary       `json:"address"`
	Items        []OrderLine          `json:"items"`
	Addons       []OrderLine          `json:"addons"`
}

// CurrentOrderResponse is the JSON body for POST /api/v1/orders/current.
type CurrentOrderResponse struct {
	Found bool                 `json:"found"`
	Order *OrderDetailResponse `json:"order,omitempty"`
}

func orderToResponse(o *order.Order) OrderResponse {
	itemIDs := make([]string, 0, len(o.ItemIDs()))
	for _, id := range o.ItemIDs() {
		itemIDs = append(itemIDs, id.String())
	}

	addonIDs := make([]string, 0, len(o.AddonIDs()))
	for _, id := range o.AddonIDs() {
		addonIDs = append(addonIDs, id.String())
	}

	timestamps := make(map[string]time.Time, len(o.StatusTimestamps()))
	for s, ts := range o.StatusTimestamps() {
		timestamps[s.Key()] = ts
	}

	return OrderResponse{
		ID:           o.ID().String(),
		CustomerID:   o.CustomerID().String(),
		AddressID:    o.AddressID().String(),
		ItemIDs:      itemIDs,
		AddonIDs:     addonIDs,
		Status:       int(o.Status()),
		StatusName:   o.Status().String(),
		StatusReason: o.StatusReason(),
		Timestamps:   timestamps,
		CreatedAt:    o.CreatedAt(),
	}
}

func customerSummaryToResponse(c queries.CustomerSummaryResponse) CustomerSummary {
	return CustomerSummary{
		ID:    c.ID.String(),
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}

func addressSummaryToResponse(a queries.AddressSummaryResponse) AddressSummary {
	return AddressSummary{
		ID:     a.ID.String(),
		Street: a.Street,
		City:   a.City,
		Zip:    a.Zip,
	}
}

func orderLinesToResponse(lines []queries.OrderLineResponse) []OrderLine {
	result := make([]OrderLine, 0, len(lines))
	for _, line := range lines {
		result = append(result, OrderLine{
			ID:         line.ID.String(),
			Name:       line.Name,
			PriceCents: line.PriceCents,
		})
	}
	return result
}

func orderDetailToResponse(detail queries.GetOrderByIDQueryResponse) OrderDetailResponse {
	customer := customerSummaryToResponse(detail.Customer)
	address := addressSummaryToResponse(detail.Address)

	return OrderDetailResponse{
		OrderID:      detail.OrderID.String(),
		Status:       detail.Status,
		StatusName:   detail.StatusName,
		StatusReason: detail.StatusReason,
		CreatedAt:    detail.CreatedAt,
		Timestamps:   detail.Timestamps,
		Customer:     customer,
		Address:      address,
		Items:        orderLinesToResponse(detail.Items),
		Addons:       orderLinesToResponse(detail.Addons),
	}
}
