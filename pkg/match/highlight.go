package match

import "unicode"

// Segment is a run of characters from an original name, flagged when it
// belongs to the highlighted common span. Concatenating the Text of all
// segments reproduces the original string exactly.
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// normalizeWithMap normalizes input like NormalizeName and records, for
// each normalized rune, the index of the original rune it came from.
func normalizeWithMap(input string) (normalized []rune, indexMap []int) {
	runes := []rune(input)
	for i, r := range runes {
		if isSeparator(r) {
			continue
		}
		normalized = append(normalized, unicode.ToLower(r))
		indexMap = append(indexMap, i)
	}
	return normalized, indexMap
}

// longestCommonSubstring finds the longest common run of a and b with the
// classic O(len(a)*len(b)) DP table. Returns start offsets into each
// input and the run length (zero when there is no common rune).
func longestCommonSubstring(a, b []rune) (startA, startB, length int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	maxLen, endA, endB := 0, 0, 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
				if dp[i][j] > maxLen {
					maxLen = dp[i][j]
					endA = i
					endB = j
				}
			}
		}
	}
	return endA - maxLen, endB - maxLen, maxLen
}

// buildSegments splits text around the half-open rune span [start, end).
func buildSegments(text []rune, start, end int) []Segment {
	if start < 0 || end < 0 || start >= end {
		return []Segment{{Text: string(text)}}
	}
	var segments []Segment
	if start > 0 {
		segments = append(segments, Segment{Text: string(text[:start])})
	}
	segments = append(segments, Segment{Text: string(text[start:end]), Match: true})
	if end < len(text) {
		segments = append(segments, Segment{Text: string(text[end:])})
	}
	return segments
}

// ComparisonHighlights splits both names into segments around their
// longest common normalized substring, mapped back to original character
// positions, for side-by-side display of a duplicate-customer warning.
// Common runs shorter than two runes are not highlighted.
func ComparisonHighlights(inputName, existingName string) (inputSegments, candidateSegments []Segment) {
	inputRunes := []rune(inputName)
	existingRunes := []rune(existingName)

	inputNorm, inputMap := normalizeWithMap(inputName)
	existingNorm, existingMap := normalizeWithMap(existingName)
	startA, startB, length := longestCommonSubstring(inputNorm, existingNorm)
	if length < 2 {
		return []Segment{{Text: inputName}}, []Segment{{Text: existingName}}
	}

	inputStart := inputMap[startA]
	inputEnd := inputMap[startA+length-1] + 1
	candidateStart := existingMap[startB]
	candidateEnd := existingMap[startB+length-1] + 1

	return buildSegments(inputRunes, inputStart, inputEnd),
		buildSegments(existingRunes, candidateStart, candidateEnd)
}
