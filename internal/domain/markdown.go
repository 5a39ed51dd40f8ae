package domain

import (
	"regexp"
	"strings"
)

// MaxFieldLength caps free-text fields taken from issue bodies.
const MaxFieldLength = 200

// expectedResultLookahead is how many lines below the marker are scanned.
const expectedResultLookahead = 4

var (
	expectedResultMarkers = []string{"Expected Results", "RESULTADO_ESPERADO"}
	wishFolderMarker      = "Wish Folder"

	headingPattern     = regexp.MustCompile(`^\s{0,3}#{1,6}\s+(.*?)\s*#*\s*$`)
	boldHeadingPattern = regexp.MustCompile(`^\s*\*\*(.+?)(?::\*\*|\*\*:)\s*$`)
	descriptionPattern = regexp.MustCompile(`(?i)^(description|summary|overview|descri[cç][aã]o)\b`)
)

// ExpectedResult extracts the expected results listed under the first line
// mentioning "Expected Results" or "RESULTADO_ESPERADO".
// Non-empty, non-heading lines among the next few lines are joined with " | ".
func ExpectedResult(body string) string {
	lines := splitLines(body)
	for i, line := range lines {
		if !containsAny(line, expectedResultMarkers) {
			continue
		}
		end := min(i+1+expectedResultLookahead, len(lines))
		var results []string
		for _, next := range lines[i+1 : end] {
			// Only unindented '#' lines are headings
			trimmed := strings.TrimSpace(next)
			if trimmed == "" || strings.HasPrefix(next, "#") {
				continue
			}
			results = append(results, trimmed)
		}
		return truncate(strings.Join(results, " | "), MaxFieldLength)
	}
	return ""
}

// WishFolder returns the line following the first "Wish Folder" line,
// with code-span backticks removed.
func WishFolder(body string) string {
	lines := splitLines(body)
	for i, line := range lines {
		if !strings.Contains(line, wishFolderMarker) {
			continue
		}
		if i+1 >= len(lines) {
			return ""
		}
		return strings.TrimSpace(strings.Trim(strings.TrimSpace(lines[i+1]), "`"))
	}
	return ""
}

// Description returns the body's description section when one exists and
// is not blank, otherwise the whole body. The result is capped at MaxFieldLength
// characters with a trailing "..." when cut.
func Description(body string) string {
	text := body
	if section, ok := Section(body, descriptionPattern); ok && section != "" {
		text = section
	}
	return ellipsize(strings.TrimSpace(text), MaxFieldLength)
}

// Section returns the text under the first heading whose title matches
// the pattern, up to the next heading. ATX headings ("## Title") and bold
// label lines ("**Title:**" or "**Title**:") both count as headings; plain
// bold lines such as "**Note**" are content.
func Section(body string, title *regexp.Regexp) (string, bool) {
	lines := splitLines(body)
	start := -1
	for i, line := range lines {
		if t, ok := headingTitle(line); ok && title.MatchString(t) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return "", false
	}

	var out []string
	for _, line := range lines[start:] {
		if _, ok := headingTitle(line); ok {
			break
		}
		out = append(out, strings.TrimRight(line, " \t"))
	}
	return strings.TrimSpace(strings.Join(out, "\n")), true
}

func headingTitle(line string) (string, bool) {
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := boldHeadingPattern.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

func splitLines(body string) []string {
	return strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// ellipsize cuts s to n characters and appends "..." when it was longer.
func ellipsize(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return truncate(s, n) + "..."
}
