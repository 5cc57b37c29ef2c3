package store

import (
	"github.com/followdesk/followdesk/pkg/match"
	"github.com/followdesk/followdesk/pkg/types"
)

// CustomerDraft carries the fields accepted when creating a customer.
type CustomerDraft struct {
	Name        string
	ContactName string
	Phone       string
	Wechat      string
	Email       string
	Region      string
	Address     string
	Notes       string
}

// AddCustomer creates a customer and returns its id. Name is required.
func (s *Store) AddCustomer(draft CustomerDraft) (string, error) {
	if draft.Name == "" {
		return "", types.Guardf(types.ErrInvalidInput, "客户名称不能为空。")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UnixMilli()
	customer := types.Customer{
		ID:          types.NewID(),
		Name:        draft.Name,
		ContactName: draft.ContactName,
		Phone:       draft.Phone,
		Wechat:      draft.Wechat,
		Email:       draft.Email,
		Region:      draft.Region,
		Address:     draft.Address,
		Notes:       draft.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.customers = append(s.customers, customer)
	s.schedulePersistLocked()
	return customer.ID, nil
}

// UpdateCustomer applies a patch to an existing customer.
func (s *Store) UpdateCustomer(id string, patch types.CustomerPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		updated := s.customers[i]
		patch.Apply(&updated)
		updated.UpdatedAt = s.now().UnixMilli()
		s.customers[i] = updated
		s.schedulePersistLocked()
		return nil
	}
	return types.Guardf(types.ErrNotFound, "未找到客户。")
}

// CustomerByID looks up a live customer.
func (s *Store) CustomerByID(id string) (types.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return types.Customer{}, false
}

// LikelyDuplicates ranks live customers that plausibly match name, for
// the pre-creation duplicate warning. See the match package for scoring.
func (s *Store) LikelyDuplicates(name string, limit int) []types.Customer {
	return match.FindLikelyCustomers(s.Customers(), name, limit)
}
