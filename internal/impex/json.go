package impex

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/followdesk/followdesk/pkg/types"
)

// ImportProductsJSON parses a top-level JSON array of products and
// appends the valid elements to a copy of existing. Elements missing
// model or name are reported as 1-based element-index errors and skipped.
// Absent ids and timestamps are generated.
func ImportProductsJSON(fileText string, existing []types.Product) ([]types.Product, []string) {
	output := append([]types.Product(nil), existing...)

	var parsed []types.Product
	if err := json.Unmarshal([]byte(fileText), &parsed); err != nil {
		return output, []string{"JSON 解析失败，请检查文件内容。"}
	}

	now := time.Now().UnixMilli()
	var errors []string
	for idx, item := range parsed {
		if item.Model == "" || item.Name == "" {
			errors = append(errors, fmt.Sprintf("第 %d 条缺少必填字段（model/name）", idx+1))
			continue
		}
		if item.ID == "" {
			item.ID = types.NewID()
		}
		if item.ProductType == "" {
			item.ProductType = types.ProductTypeCatalog
		}
		if item.Status == "" {
			item.Status = types.ProductStatusOnSale
		}
		if item.CreatedAt == 0 {
			item.CreatedAt = now
		}
		item.UpdatedAt = now
		output = append(output, item)
	}
	return output, errors
}

// ExportOrdersJSON renders the orders as a pretty-printed JSON array.
func ExportOrdersJSON(orders []types.Order) (string, error) {
	raw, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Backup bundles the live collections with an export timestamp.
type Backup struct {
	ExportedAt string           `json:"exportedAt"`
	Customers  []types.Customer `json:"customers"`
	Todos      []types.Todo     `json:"todos"`
	Orders     []types.Order    `json:"orders"`
	Products   []types.Product  `json:"products"`
}

// ExportFullBackup renders a pretty-printed backup of all collections.
func ExportFullBackup(customers []types.Customer, todos []types.Todo, orders []types.Order, products []types.Product) (string, error) {
	backup := Backup{
		ExportedAt: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Customers:  customers,
		Todos:      todos,
		Orders:     orders,
		Products:   products,
	}
	raw, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
