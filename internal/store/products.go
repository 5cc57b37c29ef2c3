package store

import "github.com/followdesk/followdesk/pkg/types"

// ProductDraft carries the fields accepted when creating a product.
// Model and Name are required; ProductType defaults to catalog and Status
// to 在售.
type ProductDraft struct {
	ProductType      string
	Model            string
	Name             string
	Status           string
	Specs            types.ProductSpecs
	BaseModelRefID   string
	CustomSummary    string
	Version          string
	SourceCustomerID string
	SourceOrderID    string
}

// AddProduct creates a product and returns its id.
func (s *Store) AddProduct(draft ProductDraft) (string, error) {
	if draft.Model == "" || draft.Name == "" {
		return "", types.Guardf(types.ErrInvalidInput, "缺少必填字段（model/name）")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	productType := draft.ProductType
	if productType == "" {
		productType = types.ProductTypeCatalog
	}
	status := draft.Status
	if status == "" {
		status = types.ProductStatusOnSale
	}

	now := s.now().UnixMilli()
	product := types.Product{
		ID:               types.NewID(),
		ProductType:      productType,
		Model:            draft.Model,
		Name:             draft.Name,
		Status:           status,
		Specs:            draft.Specs,
		CreatedAt:        now,
		UpdatedAt:        now,
		BaseModelRefID:   draft.BaseModelRefID,
		CustomSummary:    draft.CustomSummary,
		Version:          draft.Version,
		SourceCustomerID: draft.SourceCustomerID,
		SourceOrderID:    draft.SourceOrderID,
	}
	s.products = append(s.products, product)
	s.schedulePersistLocked()
	return product.ID, nil
}

// UpdateProduct applies a patch to an existing product.
func (s *Store) UpdateProduct(id string, patch types.ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		updated := s.products[i]
		patch.Apply(&updated)
		updated.UpdatedAt = s.now().UnixMilli()
		s.products[i] = updated
		s.schedulePersistLocked()
		return nil
	}
	return types.Guardf(types.ErrNotFound, "未找到产品。")
}

// ReplaceProducts swaps the whole product collection, as after an
// all-or-nothing import.
func (s *Store) ReplaceProducts(products []types.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make([]types.Product, len(products))
	copy(s.products, products)
	s.schedulePersistLocked()
}

// ProductByID looks up a live product.
func (s *Store) ProductByID(id string) (types.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productByIDLocked(id)
}

func (s *Store) productByIDLocked(id string) (types.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return types.Product{}, false
}
