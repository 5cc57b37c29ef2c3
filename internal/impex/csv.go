// Package impex implements the product and order import/export surface:
// CSV and JSON product imports with per-row error collection, CSV/JSON
// exports, and the full JSON backup bundle.
package impex

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/followdesk/followdesk/pkg/types"
)

// Import strategies for CSV product rows.
const (
	StrategyUpsertByModel = "upsertByModel"
	StrategyAllNew        = "allNew"
)

// headerAliases maps Chinese CSV column headers to canonical field names.
// English headers pass through via normalization. The table is the single
// source of truth for header recognition.
var headerAliases = map[string]string{
	"型号":   "model",
	"名称":   "name",
	"状态":   "status",
	"扫码类型": "codeTypes",
	"有线接口": "wired",
	"无线":   "wireless",
	"传感器":  "sensorModel",
	"分辨率":  "resolution",
	"通信模块": "moduleModel",
	"防护等级": "ipRating",
	"关键词":  "keywords",
	"备注":   "notes",

	// Normalized English forms, so lowercased headers land back on the
	// canonical camelCase field names.
	"codetypes":   "codeTypes",
	"sensormodel": "sensorModel",
	"modulemodel": "moduleModel",
	"iprating":    "ipRating",
}

var (
	headerJunkRe = regexp.MustCompile(`[\s()（）]+`)
	multiValueRe = regexp.MustCompile(`[|,，]`)
)

// normalizeHeader lowercases a header and strips whitespace and round
// brackets, so "Code Types" and "codetypes" land on the same key.
func normalizeHeader(header string) string {
	return headerJunkRe.ReplaceAllString(strings.ToLower(header), "")
}

// canonicalField resolves a raw header through the alias table, trying
// the raw form first and the normalized form second.
func canonicalField(header string) string {
	if alias, ok := headerAliases[header]; ok {
		return alias
	}
	normalized := normalizeHeader(header)
	if alias, ok := headerAliases[normalized]; ok {
		return alias
	}
	return normalized
}

// splitMultiValue splits a multi-value cell on |, comma, or fullwidth
// comma, dropping empty parts.
func splitMultiValue(cell string) []string {
	var out []string
	for _, part := range multiValueRe.Split(cell, -1) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// rowSpecs builds the nested spec sheet from one canonicalized row.
func rowSpecs(row map[string]string) types.ProductSpecs {
	return types.ProductSpecs{
		Scan: &types.ScanSpecs{
			CodeTypes:   splitMultiValue(row["codeTypes"]),
			SensorModel: row["sensorModel"],
			Resolution:  row["resolution"],
		},
		Comms: &types.CommsSpecs{
			Wired:       splitMultiValue(row["wired"]),
			Wireless:    splitMultiValue(row["wireless"]),
			ModuleModel: row["moduleModel"],
		},
		Env: &types.EnvSpecs{
			IPRating: row["ipRating"],
		},
		Notes:    row["notes"],
		Keywords: splitMultiValue(row["keywords"]),
	}
}

// ImportProductsCSV parses fileText and merges the rows into a copy of
// existing. Rows missing model or name are reported as 1-based file line
// errors (the header is line 1) and skipped; valid rows either upsert by
// model or always insert, per strategy. The input list is not modified.
func ImportProductsCSV(fileText, strategy string, existing []types.Product) ([]types.Product, []string) {
	output := append([]types.Product(nil), existing...)

	reader := csv.NewReader(strings.NewReader(fileText))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return output, []string{"CSV 解析失败，请检查文件内容。"}
	}
	if len(records) == 0 {
		return output, nil
	}

	fields := make([]string, len(records[0]))
	for i, header := range records[0] {
		fields[i] = canonicalField(strings.TrimSpace(header))
	}

	byModel := make(map[string]int, len(output))
	for i, p := range output {
		byModel[p.Model] = i
	}

	var errors []string
	for idx, record := range records[1:] {
		row := make(map[string]string, len(fields))
		for i, cell := range record {
			if i >= len(fields) {
				break
			}
			row[fields[i]] = strings.TrimSpace(cell)
		}

		if row["model"] == "" || row["name"] == "" {
			errors = append(errors, fmt.Sprintf("第 %d 行缺少必填字段（model/name）", idx+2))
			continue
		}

		now := time.Now().UnixMilli()
		if i, ok := byModel[row["model"]]; ok && strategy == StrategyUpsertByModel {
			current := output[i]
			current.Name = row["name"]
			if row["status"] != "" {
				current.Status = row["status"]
			}
			current.Specs = rowSpecs(row)
			current.UpdatedAt = now
			output[i] = current
			continue
		}

		status := row["status"]
		if status == "" {
			status = types.ProductStatusOnSale
		}
		created := types.Product{
			ID:          types.NewID(),
			ProductType: types.ProductTypeCatalog,
			Model:       row["model"],
			Name:        row["name"],
			Status:      status,
			Specs:       rowSpecs(row),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		output = append(output, created)
		byModel[created.Model] = len(output) - 1
	}

	return output, errors
}

// productCSVHeader is the fixed export column set.
var productCSVHeader = []string{
	"model", "name", "status", "codeTypes", "wired", "wireless",
	"sensorModel", "resolution", "moduleModel", "ipRating", "keywords", "notes",
}

// quoteCell double-quote-escapes one CSV cell.
func quoteCell(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}

func joinQuoted(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = quoteCell(c)
	}
	return strings.Join(quoted, ",")
}

// ExportProductsCSV renders the catalog with the fixed 12-column header.
func ExportProductsCSV(products []types.Product) string {
	lines := make([]string, 0, len(products)+1)
	lines = append(lines, strings.Join(productCSVHeader, ","))
	for _, p := range products {
		specs := p.Specs
		var scan types.ScanSpecs
		if specs.Scan != nil {
			scan = *specs.Scan
		}
		var comms types.CommsSpecs
		if specs.Comms != nil {
			comms = *specs.Comms
		}
		var env types.EnvSpecs
		if specs.Env != nil {
			env = *specs.Env
		}
		lines = append(lines, joinQuoted([]string{
			p.Model,
			p.Name,
			p.Status,
			strings.Join(scan.CodeTypes, "|"),
			strings.Join(comms.Wired, "|"),
			strings.Join(comms.Wireless, "|"),
			scan.SensorModel,
			scan.Resolution,
			comms.ModuleModel,
			env.IPRating,
			strings.Join(specs.Keywords, "|"),
			specs.Notes,
		}))
	}
	return strings.Join(lines, "\n")
}

// ExportOrdersCSV renders the 6-column order summary.
func ExportOrdersCSV(orders []types.Order) string {
	lines := make([]string, 0, len(orders)+1)
	lines = append(lines, strings.Join([]string{"orderNo", "type", "status", "customerId", "items", "createdAt"}, ","))
	for _, o := range orders {
		items := make([]string, len(o.Items))
		for i, item := range o.Items {
			switch {
			case item.Snapshot != nil && item.Snapshot.Model != "":
				items[i] = item.Snapshot.Model
			case item.CustomSpecText != "":
				items[i] = item.CustomSpecText
			default:
				items[i] = item.ProductID
			}
		}
		lines = append(lines, joinQuoted([]string{
			o.OrderNo,
			o.Type,
			o.Status,
			o.CustomerID,
			strings.Join(items, "|"),
			time.UnixMilli(o.CreatedAt).UTC().Format("2006-01-02T15:04:05.000Z"),
		}))
	}
	return strings.Join(lines, "\n")
}
