package store

import (
	"fmt"

	"github.com/followdesk/followdesk/pkg/types"
)

// ArchivePayload carries optional overrides when promoting a custom order
// item into the product catalog.
type ArchivePayload struct {
	Model         string
	Name          string
	Status        string
	CustomSummary string
	Version       string
}

// ArchiveCustomItemToProduct promotes a newCustom order item into an
// archived-custom product. The item is rewritten in place to reference
// the new product and a timeline entry records the promotion. Returns the
// new product id.
func (s *Store) ArchiveCustomItemToProduct(orderID string, itemIndex int, payload *ArchivePayload) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orderIdx := -1
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			orderIdx = i
			break
		}
	}
	if orderIdx < 0 {
		return "", types.Guardf(types.ErrNotFound, "未找到订单。")
	}
	order := s.orders[orderIdx]
	if itemIndex < 0 || itemIndex >= len(order.Items) || order.Items[itemIndex].Kind != types.ItemKindNewCustom {
		return "", types.Guardf(types.ErrInvalidInput, "该条目不是可归档的定制条目。")
	}
	item := order.Items[itemIndex]

	if payload == nil {
		payload = &ArchivePayload{}
	}
	model := payload.Model
	if model == "" {
		model = fmt.Sprintf("CUST-%d-%04d", s.now().Year(), len(s.products)+1)
	}
	name := payload.Name
	if name == "" {
		name = "定制归档产品"
	}
	status := payload.Status
	if status == "" {
		status = types.ProductStatusCustomOnly
	}
	summary := payload.CustomSummary
	if summary == "" {
		summary = item.CustomSpecText
	}
	version := payload.Version
	if version == "" {
		version = "v1"
	}

	now := s.now().UnixMilli()
	product := types.Product{
		ID:               types.NewID(),
		ProductType:      types.ProductTypeArchivedCustom,
		Model:            model,
		Name:             name,
		Status:           status,
		Specs:            types.ProductSpecs{Notes: item.CustomSpecText},
		CustomSummary:    summary,
		Version:          version,
		SourceCustomerID: order.CustomerID,
		SourceOrderID:    order.ID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	items := make([]types.OrderItem, len(order.Items))
	copy(items, order.Items)
	items[itemIndex].Kind = types.ItemKindArchivedCustom
	items[itemIndex].ProductID = product.ID
	items[itemIndex].Snapshot = &types.ItemSnapshot{Model: product.Model, Name: product.Name}

	order.Items = items
	order.UpdatedAt = now
	order.Timeline = appendTimeline(order.Timeline, types.TimelineEntry{
		At:     now,
		Action: "定制条目已归档到产品库",
		Detail: product.Model,
	})
	s.orders[orderIdx] = order
	s.products = append(s.products, product)
	s.schedulePersistLocked()
	return product.ID, nil
}

// UndoArchiveCustomItem reverses an archive: the item reverts to
// newCustom, and the spawned product leaves the live catalog for the
// recycle bin with reason 撤销归档. Refused when any other order holds a
// reference to the product. Returns the recycle bin entry id.
func (s *Store) UndoArchiveCustomItem(orderID string, itemIndex int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orderIdx := -1
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			orderIdx = i
			break
		}
	}
	if orderIdx < 0 {
		return "", types.Guardf(types.ErrNotFound, "未找到订单。")
	}
	order := s.orders[orderIdx]
	if itemIndex < 0 || itemIndex >= len(order.Items) {
		return "", types.Guardf(types.ErrNotUndoable, "该条目不是可撤销的归档条目。")
	}
	item := order.Items[itemIndex]
	if item.Kind != types.ItemKindArchivedCustom || item.ProductID == "" {
		return "", types.Guardf(types.ErrNotUndoable, "该条目不是可撤销的归档条目。")
	}

	product, ok := s.productByIDLocked(item.ProductID)
	if !ok {
		return "", types.Guardf(types.ErrMissingDependency, "关联归档产品不存在。")
	}

	for _, other := range s.orders {
		if other.ID == orderID {
			continue
		}
		for _, it := range other.Items {
			if it.ProductID == item.ProductID {
				return "", types.Guardf(types.ErrReferenced, "该归档产品已被其他订单引用，无法撤销。")
			}
		}
	}

	now := s.now().UnixMilli()
	recycleID := types.NewID()
	snapshot := product
	recycleItem := types.RecycleBinItem{
		ID:         recycleID,
		EntityType: types.RecycleEntityProduct,
		EntityID:   product.ID,
		Snapshot:   types.RecycleSnapshot{Product: &snapshot},
		DeletedAt:  now,
		Reason:     "撤销归档",
	}

	specText := product.CustomSummary
	if specText == "" {
		specText = product.Specs.Notes
	}
	if specText == "" {
		specText = item.CustomSpecText
	}
	if specText == "" {
		specText = "已撤销归档条目"
	}

	items := make([]types.OrderItem, len(order.Items))
	copy(items, order.Items)
	items[itemIndex].Kind = types.ItemKindNewCustom
	items[itemIndex].ProductID = ""
	items[itemIndex].Snapshot = nil
	items[itemIndex].CustomSpecText = specText

	order.Items = items
	order.UpdatedAt = now
	order.Timeline = appendTimeline(order.Timeline, types.TimelineEntry{
		At:     now,
		Action: "定制条目已撤销归档",
		Detail: product.Model,
	})
	s.orders[orderIdx] = order

	products := make([]types.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ID != product.ID {
			products = append(products, p)
		}
	}
	s.products = products
	s.recycleBin = append(s.recycleBin, recycleItem)
	s.schedulePersistLocked()
	return recycleID, nil
}
