package store

import "github.com/followdesk/followdesk/pkg/types"

// DeleteOrderToRecycleBin soft-deletes an order. Orders have no
// reference guard; the full snapshot lands in the recycle bin.
func (s *Store) DeleteOrderToRecycleBin(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		snapshot := s.orders[i]
		s.recycleBin = append(s.recycleBin, types.RecycleBinItem{
			ID:         types.NewID(),
			EntityType: types.RecycleEntityOrder,
			EntityID:   snapshot.ID,
			Snapshot:   types.RecycleSnapshot{Order: &snapshot},
			DeletedAt:  s.now().UnixMilli(),
		})
		s.orders = append(s.orders[:i:i], s.orders[i+1:]...)
		s.schedulePersistLocked()
		return nil
	}
	return types.Guardf(types.ErrNotFound, "未找到订单。")
}

// DeleteCustomerToRecycleBin soft-deletes a customer. Blocked while any
// live order references the customer; the message carries the count.
func (s *Store) DeleteCustomerToRecycleBin(customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.customers {
		if s.customers[i].ID == customerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.Guardf(types.ErrNotFound, "未找到客户。")
	}

	related := 0
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			related++
		}
	}
	if related > 0 {
		return types.Guardf(types.ErrReferenced, "该客户存在 %d 条关联订单，无法删除。", related)
	}

	snapshot := s.customers[idx]
	s.recycleBin = append(s.recycleBin, types.RecycleBinItem{
		ID:         types.NewID(),
		EntityType: types.RecycleEntityCustomer,
		EntityID:   snapshot.ID,
		Snapshot:   types.RecycleSnapshot{Customer: &snapshot},
		DeletedAt:  s.now().UnixMilli(),
	})
	s.customers = append(s.customers[:idx:idx], s.customers[idx+1:]...)
	s.schedulePersistLocked()
	return nil
}

// DeleteProductToRecycleBin soft-deletes a product. Blocked while any
// live order item references the product; the message carries the count
// of referencing orders.
func (s *Store) DeleteProductToRecycleBin(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.products {
		if s.products[i].ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.Guardf(types.ErrNotFound, "未找到产品。")
	}

	related := 0
	for _, o := range s.orders {
		for _, item := range o.Items {
			if item.ProductID == productID {
				related++
				break
			}
		}
	}
	if related > 0 {
		return types.Guardf(types.ErrReferenced, "该产品存在 %d 条关联订单，无法删除。", related)
	}

	snapshot := s.products[idx]
	s.recycleBin = append(s.recycleBin, types.RecycleBinItem{
		ID:         types.NewID(),
		EntityType: types.RecycleEntityProduct,
		EntityID:   snapshot.ID,
		Snapshot:   types.RecycleSnapshot{Product: &snapshot},
		DeletedAt:  s.now().UnixMilli(),
	})
	s.products = append(s.products[:idx:idx], s.products[idx+1:]...)
	s.schedulePersistLocked()
	return nil
}

// RestoreFromRecycleBin re-inserts a recycled snapshot into its live
// collection. Order restores require the customer and every referenced
// product to exist, and no entity may collide with a live id. A failed
// precondition leaves the recycle entry in place.
func (s *Store) RestoreFromRecycleBin(recycleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.recycleBin {
		if s.recycleBin[i].ID == recycleID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.Guardf(types.ErrNotFound, "未找到回收站条目。")
	}
	entry := s.recycleBin[idx]

	switch entry.EntityType {
	case types.RecycleEntityOrder:
		order := entry.Snapshot.Order
		if order == nil {
			return types.Guardf(types.ErrMissingDependency, "恢复失败：回收站快照损坏。")
		}
		if !s.customerExistsLocked(order.CustomerID) {
			return types.Guardf(types.ErrMissingDependency, "恢复失败：关联客户不存在。")
		}
		for _, item := range order.Items {
			if item.ProductID == "" {
				continue
			}
			if _, ok := s.productByIDLocked(item.ProductID); !ok {
				return types.Guardf(types.ErrMissingDependency, "恢复失败：关联产品不存在。")
			}
		}
		for _, o := range s.orders {
			if o.ID == order.ID {
				return types.Guardf(types.ErrIDConflict, "恢复失败：订单ID冲突。")
			}
		}
		s.orders = append(s.orders, *order)

	case types.RecycleEntityCustomer:
		customer := entry.Snapshot.Customer
		if customer == nil {
			return types.Guardf(types.ErrMissingDependency, "恢复失败：回收站快照损坏。")
		}
		if s.customerExistsLocked(customer.ID) {
			return types.Guardf(types.ErrIDConflict, "恢复失败：客户ID冲突。")
		}
		s.customers = append(s.customers, *customer)

	default:
		product := entry.Snapshot.Product
		if product == nil {
			return types.Guardf(types.ErrMissingDependency, "恢复失败：回收站快照损坏。")
		}
		if _, ok := s.productByIDLocked(product.ID); ok {
			return types.Guardf(types.ErrIDConflict, "恢复失败：产品ID冲突。")
		}
		s.products = append(s.products, *product)
	}

	s.recycleBin = append(s.recycleBin[:idx:idx], s.recycleBin[idx+1:]...)
	s.schedulePersistLocked()
	return nil
}

// PurgeRecycleBin permanently removes a recycle bin entry. There is no
// further recovery path.
func (s *Store) PurgeRecycleBin(recycleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recycleBin {
		if s.recycleBin[i].ID != recycleID {
			continue
		}
		s.recycleBin = append(s.recycleBin[:i:i], s.recycleBin[i+1:]...)
		s.schedulePersistLocked()
		return nil
	}
	return types.Guardf(types.ErrNotFound, "未找到回收站条目。")
}
