package domain

import (
	"regexp"
	"strings"
	"unicode"
)

// Label dimensions carried as "<dimension>:<value>" labels.
const (
	DimensionProject  = "project"
	DimensionStage    = "stage"
	DimensionQuarter  = "quarter"
	DimensionPriority = "priority"
)

var quarterPattern = regexp.MustCompile(`(?i)^(\d{4})-q([1-4])$`)

// stageNames maps stage label values to their display names.
var stageNames = map[string]string{
	"wishlist":    "Wishlist",
	"exploring":   "Exploring",
	"rfc":         "RFC",
	"planned":     "Planned",
	"in-progress": "In Progress",
	"alpha":       "Alpha",
	"beta":        "Beta",
	"ga":          "GA",
	"shipped":     "Shipped",
	"archived":    "Archived",
}

// LabelValue returns the value of the first "<dimension>:<value>" label.
// Returns an empty string when no label of that dimension exists.
func LabelValue(labels []string, dimension string) string {
	prefix := dimension + ":"
	for _, l := range labels {
		if len(l) < len(prefix) || !strings.EqualFold(l[:len(prefix)], prefix) {
			continue
		}
		value := l[len(prefix):]
		// "a:b:c" keeps only "b", like a split on ':'
		if idx := strings.IndexByte(value, ':'); idx >= 0 {
			value = value[:idx]
		}
		return strings.TrimSpace(value)
	}
	return ""
}

// FormatQuarter converts a quarter label value to its display form.
//
//	"2025-q4" -> "Q4 2025"
//	"backlog" -> "BACKLOG"
//
// Anything else is uppercased unchanged.
func FormatQuarter(s string) string {
	s = strings.TrimSpace(s)
	if m := quarterPattern.FindStringSubmatch(s); m != nil {
		return "Q" + m[2] + " " + m[1]
	}
	return strings.ToUpper(s)
}

// FormatStage converts a stage label value to its display name.
// Unknown stages are title-cased with '-' and '_' read as spaces.
func FormatStage(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if name, ok := stageNames[key]; ok {
		return name
	}
	return titleCase(strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s)))
}

// titleCase uppercases the first letter of every word and lowercases the rest.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		if !unicode.IsLetter(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		startOfWord = false
	}
	return b.String()
}

