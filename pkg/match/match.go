// Package match scores existing customers against a typed name so the UI
// can warn before a likely-duplicate customer record is created.
package match

import (
	"sort"
	"strings"
	"unicode"

	"github.com/followdesk/followdesk/pkg/types"
)

// separator characters removed by normalization, in addition to whitespace.
const separators = "-_/·."

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(separators, r)
}

// NormalizeName lowercases the input and removes whitespace and separator
// characters. All comparisons in this package run over normalized names.
func NormalizeName(input string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(input) {
		if isSeparator(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Levenshtein returns the edit distance between a and b, counted in runes.
// Two-row rolling DP: O(len(a)*len(b)) time, O(len(b)) space.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		copy(prev, curr)
	}
	return prev[len(rb)]
}

type candidate struct {
	customer types.Customer
	score    int
}

// FindLikelyCustomers ranks customers that plausibly match input and
// returns at most limit of them, best first. A limit <= 0 means the
// default of 3. Scoring precedence per candidate, first rule wins:
// prefix relation (either direction), substring relation, then edit
// distance <= 2 when lengths are within 2 of each other. Customers
// matching no rule are excluded.
func FindLikelyCustomers(customers []types.Customer, input string, limit int) []types.Customer {
	normalizedInput := NormalizeName(input)
	if normalizedInput == "" {
		return nil
	}
	if limit <= 0 {
		limit = 3
	}
	inputLen := len([]rune(normalizedInput))

	var candidates []candidate
	for _, customer := range customers {
		normalizedName := NormalizeName(customer.Name)
		if normalizedName == "" {
			continue
		}
		nameLen := len([]rune(normalizedName))

		if strings.HasPrefix(normalizedName, normalizedInput) || strings.HasPrefix(normalizedInput, normalizedName) {
			candidates = append(candidates, candidate{customer, 1000 - nameLen})
			continue
		}
		if strings.Contains(normalizedName, normalizedInput) || strings.Contains(normalizedInput, normalizedName) {
			candidates = append(candidates, candidate{customer, 800 - nameLen})
			continue
		}
		if abs(nameLen-inputLen) > 2 {
			continue
		}
		if distance := Levenshtein(normalizedName, normalizedInput); distance <= 2 {
			candidates = append(candidates, candidate{customer, 600 - distance*100 - nameLen})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]types.Customer, len(candidates))
	for i, c := range candidates {
		result[i] = c.customer
	}
	return result
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
