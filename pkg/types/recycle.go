package types

// Recycle bin entity types.
const (
	RecycleEntityOrder    = "order"
	RecycleEntityCustomer = "customer"
	RecycleEntityProduct  = "product"
)

// RecycleSnapshot holds the full entity captured at deletion time.
// Exactly one field is set, matching the entry's EntityType.
type RecycleSnapshot struct {
	Order    *Order    `json:"order,omitempty"`
	Customer *Customer `json:"customer,omitempty"`
	Product  *Product  `json:"product,omitempty"`
}

// RecycleBinItem is a soft-deleted entity staged for restore or purge.
type RecycleBinItem struct {
	ID         string          `json:"id"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	Snapshot   RecycleSnapshot `json:"snapshot"`
	DeletedAt  int64           `json:"deletedAt"`
	Reason     string          `json:"reason,omitempty"`
}
