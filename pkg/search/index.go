// Package search builds a flattened text index over the product catalog
// and answers scored, filterable queries against it.
package search

import (
	"regexp"
	"sort"
	"strings"

	"github.com/followdesk/followdesk/pkg/types"
)

// Filters narrows candidates before scoring. Status is matched exactly;
// CodeType by membership in the scan code-type list; Wired and Wireless by
// substring against the respective interface lists.
type Filters struct {
	CodeType string
	Wired    string
	Wireless string
	Status   string
}

// entry pairs a product with its precomputed lowercase search blob.
type entry struct {
	product types.Product
	blob    string
}

// Index is a prebuilt search index over a product snapshot. Rebuild it
// when the product collection changes.
type Index struct {
	entries []entry
}

var tokenSplitRe = regexp.MustCompile(`[\s,，;；:：|/\\()\[\]{}]+`)

func tokenize(text string) []string {
	var tokens []string
	for _, tok := range tokenSplitRe.Split(strings.ToLower(text), -1) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// stringifyProduct flattens the searchable product fields into one
// lowercase space-joined blob. Empty fields are omitted.
func stringifyProduct(product types.Product) string {
	specs := product.Specs
	parts := []string{
		product.Model,
		product.Name,
		product.Status,
		specs.Notes,
		strings.Join(specs.Keywords, " "),
	}
	if scan := specs.Scan; scan != nil {
		parts = append(parts,
			strings.Join(scan.CodeTypes, " "),
			scan.SensorModel,
			scan.Resolution,
			scan.DepthOfField,
		)
	}
	if comms := specs.Comms; comms != nil {
		parts = append(parts,
			strings.Join(comms.Wired, " "),
			strings.Join(comms.Wireless, " "),
			comms.ModuleModel,
			comms.SDK,
		)
	}
	if env := specs.Env; env != nil {
		parts = append(parts, env.IPRating, env.OperatingTempC)
	}

	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.ToLower(strings.Join(kept, " "))
}

// BuildIndex precomputes the search blob for every product.
func BuildIndex(products []types.Product) Index {
	entries := make([]entry, len(products))
	for i, product := range products {
		entries[i] = entry{product: product, blob: stringifyProduct(product)}
	}
	return Index{entries: entries}
}

func passesFilters(product types.Product, filters Filters) bool {
	if filters.Status != "" && product.Status != filters.Status {
		return false
	}
	if filters.CodeType != "" {
		scan := product.Specs.Scan
		if scan == nil || !contains(scan.CodeTypes, filters.CodeType) {
			return false
		}
	}
	if filters.Wired != "" {
		comms := product.Specs.Comms
		if comms == nil || !containsSubstring(comms.Wired, filters.Wired) {
			return false
		}
	}
	if filters.Wireless != "" {
		comms := product.Specs.Comms
		if comms == nil || !containsSubstring(comms.Wireless, filters.Wireless) {
			return false
		}
	}
	return true
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

func containsSubstring(list []string, want string) bool {
	for _, v := range list {
		if strings.Contains(v, want) {
			return true
		}
	}
	return false
}

// Search filters then scores the indexed products. An empty query passes
// every filtered candidate through with score 1. A non-empty query scores
// +10 for a model prefix match, +4 for a whole-query blob substring, and
// +2 per query token found in the blob; zero-score candidates are
// dropped. Results sort by descending score, ties broken by most recently
// updated.
func (idx Index) Search(query string, filters Filters) []types.Product {
	clean := strings.ToLower(strings.TrimSpace(query))
	qTokens := tokenize(clean)

	type scored struct {
		product types.Product
		score   int
	}
	var results []scored
	for _, e := range idx.entries {
		if !passesFilters(e.product, filters) {
			continue
		}
		if clean == "" {
			results = append(results, scored{e.product, 1})
			continue
		}
		score := 0
		if strings.HasPrefix(strings.ToLower(e.product.Model), clean) {
			score += 10
		}
		if strings.Contains(e.blob, clean) {
			score += 4
		}
		for _, token := range qTokens {
			if strings.Contains(e.blob, token) {
				score += 2
			}
		}
		if score > 0 {
			results = append(results, scored{e.product, score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].product.UpdatedAt > results[j].product.UpdatedAt
	})

	products := make([]types.Product, len(results))
	for i, r := range results {
		products[i] = r.product
	}
	return products
}
