package store

import (
	"strings"

	"github.com/followdesk/followdesk/pkg/types"
)

// nextOrderSeqLocked derives the next 1-based same-day sequence number
// from current state. Mutations serialize through the store mutex, so two
// conversions in one session can never draw the same number.
func (s *Store) nextOrderSeqLocked() int {
	prefix := s.now().Format("20060102")
	count := 0
	for _, o := range s.orders {
		if strings.HasPrefix(o.OrderNo, prefix) {
			count++
		}
	}
	return count + 1
}

// CompleteTodoWithConversion completes a todo and materializes its order
// draft into exactly one new order (or opportunity). The transition is
// one-way: un-completing the todo later does not remove the order.
func (s *Store) CompleteTodoWithConversion(todoID, orderType string) (string, error) {
	if orderType != types.OrderTypeOrder && orderType != types.OrderTypeOpportunity {
		return "", types.Guardf(types.ErrInvalidInput, "无效的转换类型。")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	todoIdx := -1
	for i := range s.todos {
		if s.todos[i].ID == todoID {
			todoIdx = i
			break
		}
	}
	if todoIdx < 0 {
		return "", types.Guardf(types.ErrNotFound, "未找到待办。")
	}
	todo := s.todos[todoIdx]
	if todo.OrderConversion != nil {
		return "", types.Guardf(types.ErrInvalidInput, "该待办已转换。")
	}

	now := s.now().UnixMilli()
	orderID := types.NewID()

	draftItems := todo.OrderDraft.Items
	items := make([]types.OrderItem, len(draftItems))
	for i, draft := range draftItems {
		item := types.OrderItem{
			Kind:           draft.Kind,
			ProductID:      draft.ProductID,
			CustomSpecText: draft.CustomSpecText,
			Quantity:       draft.Quantity,
			UnitPrice:      draft.UnitPrice,
			Currency:       draft.Currency,
			Notes:          draft.Notes,
		}
		if draft.ProductID != "" {
			if product, ok := s.productByIDLocked(draft.ProductID); ok {
				item.Snapshot = &types.ItemSnapshot{Model: product.Model, Name: product.Name}
			} else {
				item.Snapshot = &types.ItemSnapshot{Model: draft.ProductID}
			}
		}
		items[i] = item
	}

	action := "由待办转正式订单"
	if orderType == types.OrderTypeOpportunity {
		action = "由待办转线索机会"
	}
	order := types.Order{
		ID:           orderID,
		OrderNo:      types.GenerateOrderNo(s.now(), s.nextOrderSeqLocked()),
		Type:         orderType,
		Status:       types.InitialOrderStatus(),
		CustomerID:   todo.CustomerID,
		SourceTodoID: todo.ID,
		Items:        items,
		Timeline:     []types.TimelineEntry{{At: now, Action: action}},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	todo.Completed = true
	todo.UpdatedAt = now
	todo.OrderConversion = &types.OrderConversion{Type: orderType, OrderID: orderID}
	s.todos[todoIdx] = todo
	s.orders = append(s.orders, order)
	s.schedulePersistLocked()
	return orderID, nil
}

// TransitionOrderStatus sets an order status and appends a timeline entry
// recording it. Any status may follow any other; the enum order is
// presentational only.
func (s *Store) TransitionOrderStatus(orderID, status, detail string) error {
	if !types.ValidOrderStatus(status) {
		return types.Guardf(types.ErrInvalidInput, "无效的订单状态。")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		now := s.now().UnixMilli()
		updated := s.orders[i]
		updated.Status = status
		updated.UpdatedAt = now
		updated.Timeline = appendTimeline(updated.Timeline, types.TimelineEntry{
			At:     now,
			Action: "状态更新为：" + status,
			Detail: detail,
		})
		s.orders[i] = updated
		s.schedulePersistLocked()
		return nil
	}
	return types.Guardf(types.ErrNotFound, "未找到订单。")
}

// AppendOrderTimeline adds a free-text follow-up note to an order's log.
func (s *Store) AppendOrderTimeline(orderID, detail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		now := s.now().UnixMilli()
		updated := s.orders[i]
		updated.UpdatedAt = now
		updated.Timeline = appendTimeline(updated.Timeline, types.TimelineEntry{
			At:     now,
			Action: "添加跟单记录",
			Detail: detail,
		})
		s.orders[i] = updated
		s.schedulePersistLocked()
		return nil
	}
	return types.Guardf(types.ErrNotFound, "未找到订单。")
}

// OrderByID looks up a live order.
func (s *Store) OrderByID(id string) (types.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return types.Order{}, false
}

// appendTimeline copies the log before appending so snapshots taken for
// persistence never share backing arrays with later edits.
func appendTimeline(timeline []types.TimelineEntry, entry types.TimelineEntry) []types.TimelineEntry {
	out := make([]types.TimelineEntry, len(timeline), len(timeline)+1)
	copy(out, timeline)
	return append(out, entry)
}
