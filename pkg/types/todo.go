package types

import "github.com/shopspring/decimal"

// Todo priorities.
const (
	PriorityLow  = "low"
	PriorityMed  = "med"
	PriorityHigh = "high"
)

// Order intent types produced by completing a todo.
const (
	OrderTypeOrder       = "order"
	OrderTypeOpportunity = "opportunity"
)

// DraftItem is a prospective order line attached to a todo. It becomes a
// real OrderItem when the todo is converted.
type DraftItem struct {
	Kind           string           `json:"kind"`
	ProductID      string           `json:"productId,omitempty"`
	CustomSpecText string           `json:"customSpecText,omitempty"`
	Quantity       int              `json:"quantity"`
	UnitPrice      *decimal.Decimal `json:"unitPrice,omitempty"`
	Currency       string           `json:"currency,omitempty"`
	Notes          string           `json:"notes,omitempty"`
}

// OrderDraft is the embedded draft attached to a todo. Draft items are not
// persisted as an Order until conversion.
type OrderDraft struct {
	Items      []DraftItem `json:"items"`
	IntentType string      `json:"intentType,omitempty"` // standard, custom, mixed
	Stage      string      `json:"stage,omitempty"`
}

// OrderConversion records which order a completed todo became.
type OrderConversion struct {
	Type    string `json:"type"`
	OrderID string `json:"orderId"`
}

// Todo is a dated follow-up task tied to one customer. SortOrder defines
// the manual position within the todo's date bucket.
type Todo struct {
	ID                  string           `json:"id"`
	Date                string           `json:"date"` // YYYY-MM-DD day bucket
	Title               string           `json:"title"`
	CustomerID          string           `json:"customerId"`
	Summary             string           `json:"summary,omitempty"`
	Priority            string           `json:"priority,omitempty"`
	ReminderTime        string           `json:"reminderTime,omitempty"` // HH:MM
	RemindBeforeMinutes int              `json:"remindBeforeMinutes,omitempty"`
	Tags                []string         `json:"tags,omitempty"`
	Completed           bool             `json:"completed"`
	OrderDraft          OrderDraft       `json:"orderDraft"`
	OrderConversion     *OrderConversion `json:"orderConversion,omitempty"`
	CreatedAt           int64            `json:"createdAt"`
	UpdatedAt           int64            `json:"updatedAt"`
	SortOrder           int              `json:"order"`
}

// TodoPatch carries optional field updates for a todo. Nil fields are left
// unchanged. Tags replaces the whole tag list when non-nil.
type TodoPatch struct {
	Title               *string
	Summary             *string
	Priority            *string
	ReminderTime        *string
	RemindBeforeMinutes *int
	Tags                *[]string
}

// Apply writes the non-nil patch fields onto the todo.
func (p TodoPatch) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Summary != nil {
		t.Summary = *p.Summary
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.ReminderTime != nil {
		t.ReminderTime = *p.ReminderTime
	}
	if p.RemindBeforeMinutes != nil {
		t.RemindBeforeMinutes = *p.RemindBeforeMinutes
	}
	if p.Tags != nil {
		t.Tags = append([]string(nil), (*p.Tags)...)
	}
}
