package question

import (
	"math"
	"strings"
	"unicode/utf8"
)

// NormalizeJobTitle trims the title and enforces the 1..50 character range.
func NormalizeJobTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(title)
	if n == 0 {
		return "", invalid("job_title", "job title cannot be empty")
	}
	if n > MaxJobTitleLength {
		return "", invalid("job_title", "job title must be %d characters or less", MaxJobTitleLength)
	}
	return title, nil
}

// NormalizeType lowercases and trims t, reporting whether it is a known type.
func NormalizeType(t string) (string, bool) {
	t = strings.ToLower(strings.TrimSpace(t))
	switch t {
	case TypeTechnical, TypeBehavioral:
		return t, true
	default:
		return "", false
	}
}

// ValidateDifficulty rejects values outside [1,5], NaN included.
func ValidateDifficulty(d float64) error {
	if math.IsNaN(d) || d < MinDifficulty || d > MaxDifficulty {
		return invalid("difficulty", "difficulty must be between 1 and 5")
	}
	return nil
}

// ValidatePage checks a 1-based page number and a page size in [1,100].
func ValidatePage(page, size int) error {
	if page < 1 {
		return invalid("page", "page must be greater than or equal to 1")
	}
	if size < 1 {
		return invalid("size", "size must be greater than or equal to 1")
	}
	if size > MaxPageSize {
		return invalid("size", "size must be less than or equal to %d", MaxPageSize)
	}
	return nil
}

func normalizeName(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	name := strings.TrimSpace(*raw)
	if name == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(name) > MaxSetNameLength {
		return nil, invalid("name", "name must be %d characters or less", MaxSetNameLength)
	}
	return &name, nil
}

func normalizeDrafts(drafts []Draft) ([]Draft, error) {
	if drafts == nil {
		return nil, invalid("questions", "questions is required")
	}
	out := make([]Draft, 0, len(drafts))
	for i, d := range drafts {
		t, ok := NormalizeType(d.Type)
		if !ok {
			return nil, invalid("questions", "question %d: type must be %q or %q", i, TypeTechnical, TypeBehavioral)
		}
		text := strings.TrimSpace(d.Text)
		if text == "" {
			return nil, invalid("questions", "question %d: text cannot be empty", i)
		}
		out = append(out, Draft{Type: t, Text: text})
	}
	return out, nil
}

func pageCount(total int64, size int) int64 {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + int64(size) - 1) / int64(size)
}

// pageOffset returns the row offset of page, saturating instead of overflowing.
func pageOffset(page, size int) int64 {
	if page < 1 || size < 1 {
		return 0
	}
	if int64(page-1) > math.MaxInt64/int64(size) {
		return math.MaxInt64
	}
	return int64(page-1) * int64(size)
}
