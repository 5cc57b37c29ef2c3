// Package quickadd parses free-form todo input into a structured draft.
// The syntax layers a priority prefix (!, !!, !!!), #tags, a reminder time
// (@HH:MM or a bare HH:MM), and a reminder lead (r:<N>m / r:<N>h) on top
// of plain title text.
package quickadd

import (
	"regexp"
	"strconv"
	"strings"
)

// Result is the structured draft extracted from one input line. Zero
// values mean "not present": empty Priority/ReminderTime, zero
// RemindBeforeMinutes. An empty Title is not an error here; the caller
// decides whether to reject the draft.
type Result struct {
	Title               string
	Priority            string
	ReminderTime        string
	RemindBeforeMinutes int
	Tags                []string
}

var (
	tagRe    = regexp.MustCompile(`#([^\s#]+)`)
	atTimeRe = regexp.MustCompile(`@([01][0-9]|2[0-3]):([0-5][0-9])\b`)
	timeRe   = regexp.MustCompile(`(?i)\b(?:at\s+)?([01][0-9]|2[0-3]):([0-5][0-9])\b`)
	remindRe = regexp.MustCompile(`(?i)\br:([0-9]+)([mh])\b`)
)

// Parse extracts the structured parts of input in fixed stage order:
// priority prefix, tags, reminder time, reminder lead. Each stage consumes
// the text it matched before the next stage runs; whatever remains is the
// title. Explicit @HH:MM markers win over a bare HH:MM, and for repeated
// @HH:MM or r: markers the last occurrence wins.
func Parse(input string) Result {
	working := strings.TrimSpace(input)
	result := Result{Tags: []string{}}

	switch {
	case strings.HasPrefix(working, "!!!"):
		result.Priority = "high"
		working = strings.TrimSpace(working[3:])
	case strings.HasPrefix(working, "!!"):
		result.Priority = "med"
		working = strings.TrimSpace(working[2:])
	case strings.HasPrefix(working, "!"):
		result.Priority = "low"
		working = strings.TrimSpace(working[1:])
	}

	for _, m := range tagRe.FindAllStringSubmatch(working, -1) {
		result.Tags = append(result.Tags, m[1])
	}
	working = strings.TrimSpace(tagRe.ReplaceAllString(working, ""))

	if atMatches := atTimeRe.FindAllStringSubmatch(working, -1); len(atMatches) > 0 {
		last := atMatches[len(atMatches)-1]
		result.ReminderTime = last[1] + ":" + last[2]
		working = strings.TrimSpace(atTimeRe.ReplaceAllString(working, ""))
	} else if loc := timeRe.FindStringSubmatchIndex(working); loc != nil {
		result.ReminderTime = working[loc[2]:loc[3]] + ":" + working[loc[4]:loc[5]]
		working = strings.TrimSpace(working[:loc[0]] + working[loc[1]:])
	}

	if remindMatches := remindRe.FindAllStringSubmatch(working, -1); len(remindMatches) > 0 {
		last := remindMatches[len(remindMatches)-1]
		count, _ := strconv.Atoi(last[1])
		if strings.EqualFold(last[2], "h") {
			count *= 60
		}
		result.RemindBeforeMinutes = count
		working = strings.TrimSpace(remindRe.ReplaceAllString(working, ""))
	}

	result.Title = working
	return result
}
