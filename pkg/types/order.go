package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem kinds.
const (
	ItemKindCatalog        = "catalog"
	ItemKindArchivedCustom = "archivedCustom"
	ItemKindNewCustom      = "newCustom"
)

// OrderStatuses lists the order stages in presentation order. The data
// model does not enforce forward-only transitions; any status may follow
// any other.
var OrderStatuses = []string{
	"询价中",
	"报价中",
	"待确认",
	"已确认",
	"待付款",
	"已付款",
	"备货中",
	"已发货",
	"已签收",
	"已完成",
	"已取消",
}

// validOrderStatuses is the set of recognized order status values.
var validOrderStatuses = func() map[string]bool {
	m := make(map[string]bool, len(OrderStatuses))
	for _, s := range OrderStatuses {
		m[s] = true
	}
	return m
}()

// ValidOrderStatus reports whether s is a recognized order status.
func ValidOrderStatus(s string) bool {
	return validOrderStatuses[s]
}

// InitialOrderStatus is the status assigned to a freshly converted order.
func InitialOrderStatus() string {
	return OrderStatuses[0]
}

// ItemSnapshot holds denormalized display fields captured when an item is
// bound to a product.
type ItemSnapshot struct {
	Model string `json:"model,omitempty"`
	Name  string `json:"name,omitempty"`
}

// OrderItem is one line of an order. Catalog and archivedCustom items
// reference a product; newCustom items carry free spec text only.
type OrderItem struct {
	Kind           string           `json:"kind"`
	ProductID      string           `json:"productId,omitempty"`
	Snapshot       *ItemSnapshot    `json:"snapshot,omitempty"`
	CustomSpecText string           `json:"customSpecText,omitempty"`
	Quantity       int              `json:"quantity"`
	UnitPrice      *decimal.Decimal `json:"unitPrice,omitempty"`
	Currency       string           `json:"currency,omitempty"`
	Notes          string           `json:"notes,omitempty"`
}

// OrderAmount is the money summary of an order.
type OrderAmount struct {
	Total    *decimal.Decimal `json:"total,omitempty"`
	Currency string           `json:"currency,omitempty"`
	Discount *decimal.Decimal `json:"discount,omitempty"`
}

// TimelineEntry is one append-only log record on an order.
type TimelineEntry struct {
	At     int64  `json:"at"`
	Action string `json:"action"`
	Detail string `json:"detail,omitempty"`
}

// Order is a formal order or a sales opportunity. Orders are only created
// by converting a todo; SourceTodoID records the origin.
type Order struct {
	ID               string          `json:"id"`
	OrderNo          string          `json:"orderNo"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
	CustomerID       string          `json:"customerId"`
	CreatedAt        int64           `json:"createdAt"`
	UpdatedAt        int64           `json:"updatedAt"`
	SourceTodoID     string          `json:"sourceTodoId,omitempty"`
	Items            []OrderItem     `json:"items"`
	Amount           *OrderAmount    `json:"amount,omitempty"`
	ExpectedDelivery string          `json:"expectedDelivery,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	Timeline         []TimelineEntry `json:"timeline"`
}

// GenerateOrderNo formats an order number as YYYYMMDD-NNNN. seq is 1-based
// and zero-padded to four digits.
func GenerateOrderNo(now time.Time, seq int) string {
	return fmt.Sprintf("%s-%04d", now.Format("20060102"), seq)
}
