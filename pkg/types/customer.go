package types

// Customer is a buyer record. Name is the only required field; the rest
// are free-form contact details.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contactName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Wechat      string `json:"wechat,omitempty"`
	Email       string `json:"email,omitempty"`
	Region      string `json:"region,omitempty"`
	Address     string `json:"address,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// CustomerPatch carries optional field updates for a customer.
// Nil fields are left unchanged.
type CustomerPatch struct {
	Name        *string
	ContactName *string
	Phone       *string
	Wechat      *string
	Email       *string
	Region      *string
	Address     *string
	Notes       *string
}

// Apply writes the non-nil patch fields onto the customer.
func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.ContactName != nil {
		c.ContactName = *p.ContactName
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Wechat != nil {
		c.Wechat = *p.Wechat
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Region != nil {
		c.Region = *p.Region
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}
