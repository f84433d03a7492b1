package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"taskboard/internal/core/domain"
)

const (
	TitleMinLength       = 3
	TitleMaxLength       = 200
	DescriptionMaxLength = 2000
	MaxPageSize          = 100
	MaxBatchSize         = 50
	QueryMinLength       = 2
	QueryMaxLength       = 100
	TaskIDMinLength      = 10
)

// Characters rejected in titles and descriptions.
const forbiddenChars = `<>"'&`

// Substrings rejected in free-text search queries. This is a compatibility
// filter carried over from the original API, not a security boundary: all
// store access is parameterized regardless.
var queryForbiddenTokens = []string{`'`, `"`, `;`, `--`, `/*`, `*/`}

var queryForbiddenKeywords = []string{"drop", "delete", "insert", "update", "select"}

func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return domain.NewValidationError("title must not be empty")
	}
	if n := utf8.RuneCountInString(trimmed); n < TitleMinLength || n > TitleMaxLength {
		return domain.NewValidationError(fmt.Sprintf("title must be between %d and %d characters", TitleMinLength, TitleMaxLength))
	}
	if strings.ContainsAny(trimmed, forbiddenChars) {
		return domain.NewValidationError(`title must not contain any of < > " ' &`)
	}
	return nil
}

func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > DescriptionMaxLength {
		return domain.NewValidationError(fmt.Sprintf("description must not exceed %d characters", DescriptionMaxLength))
	}
	if strings.ContainsAny(description, forbiddenChars) {
		return domain.NewValidationError(`description must not contain any of < > " ' &`)
	}
	return nil
}

// ValidateDate checks the YYYY-MM-DD shape and real calendar validity
// (month lengths, leap years) with the year bounded to [2000, 2100].
func ValidateDate(date string) error {
	year, month, day, ok := splitDate(date)
	if !ok {
		return domain.NewValidationError("date must be in YYYY-MM-DD format")
	}
	if year < 2000 || year > 2100 {
		return domain.NewValidationError("date year must be between 2000 and 2100")
	}
	if month < 1 || month > 12 {
		return domain.NewValidationError("date month must be between 01 and 12")
	}
	if day < 1 || day > daysInMonth(month, year) {
		return domain.NewValidationError(fmt.Sprintf("day %02d is not valid for month %02d", day, month))
	}
	return nil
}

// ValidateDueDate applies ValidateDate plus the creation/update window:
// no more than one year in the past and no more than ten years ahead,
// relative to the clock's current date.
func ValidateDueDate(date string, clock domain.Clock) error {
	if err := ValidateDate(date); err != nil {
		return err
	}
	today := clock.Today()
	if date < addYears(today, -1) {
		return domain.NewValidationError("due date must not be more than one year in the past")
	}
	if date > addYears(today, 10) {
		return domain.NewValidationError("due date must not be more than ten years in the future")
	}
	return nil
}

func ValidatePagination(page, pageSize int) error {
	if page < 1 {
		return domain.NewValidationError("page must be at least 1")
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return domain.NewValidationError(fmt.Sprintf("pageSize must be between 1 and %d", MaxPageSize))
	}
	return nil
}

func ValidateSearchQuery(query string) error {
	trimmed := strings.TrimSpace(query)
	if n := utf8.RuneCountInString(trimmed); n < QueryMinLength || n > QueryMaxLength {
		return domain.NewValidationError(fmt.Sprintf("search query must be between %d and %d characters", QueryMinLength, QueryMaxLength))
	}
	lowered := strings.ToLower(trimmed)
	for _, token := range queryForbiddenTokens {
		if strings.Contains(lowered, token) {
			return domain.NewValidationError(fmt.Sprintf("search query must not contain %q", token))
		}
	}
	for _, keyword := range queryForbiddenKeywords {
		if strings.Contains(lowered, keyword) {
			return domain.NewValidationError(fmt.Sprintf("search query must not contain %q", keyword))
		}
	}
	return nil
}

// ValidateTaskID checks identifier shape only: at least ten characters,
// hex digits and dashes. Existence is the repository's concern.
func ValidateTaskID(id string) error {
	if id == "" {
		return domain.NewValidationError("task id must not be empty")
	}
	if len(id) < TaskIDMinLength {
		return domain.NewValidationError(fmt.Sprintf("task id must be at least %d characters", TaskIDMinLength))
	}
	for _, r := range id {
		if !isHexDigit(r) && r != '-' {
			return domain.NewValidationError("task id must contain only hex digits and dashes")
		}
	}
	return nil
}

// ValidateBatchIDs checks the whole-batch preconditions: non-empty, at most
// MaxBatchSize ids, no duplicates, every id shape-valid. Any violation
// rejects the batch before a single item runs.
func ValidateBatchIDs(ids []string) error {
	if len(ids) == 0 {
		return domain.NewValidationError("batch must contain at least one id")
	}
	if len(ids) > MaxBatchSize {
		return domain.NewValidationError(fmt.Sprintf("batch must not exceed %d ids", MaxBatchSize))
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if err := ValidateTaskID(id); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return domain.NewConflictError(fmt.Sprintf("duplicate id %s in batch", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Timezones accepted for explicit overrides. Tasks default to the creator's
// profile timezone when none is given.
var allowedTimezones = map[string]struct{}{
	"UTC":                 {},
	"Europe/Paris":        {},
	"Europe/London":       {},
	"Europe/Berlin":       {},
	"America/New_York":    {},
	"America/Chicago":     {},
	"America/Los_Angeles": {},
	"Asia/Tokyo":          {},
	"Asia/Kolkata":        {},
	"Asia/Singapore":      {},
	"Australia/Sydney":    {},
}

func ValidateTimezone(tz string) error {
	if _, ok := allowedTimezones[tz]; !ok {
		return domain.NewValidationError(fmt.Sprintf("timezone %q is not supported", tz))
	}
	return nil
}

func splitDate(date string) (year, month, day int, ok bool) {
	if len(date) != 10 || date[4] != '-' || date[7] != '-' {
		return 0, 0, 0, false
	}
	for i, r := range date {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return 0, 0, 0, false
		}
	}
	year, _ = strconv.Atoi(date[0:4])
	month, _ = strconv.Atoi(date[5:7])
	day, _ = strconv.Atoi(date[8:10])
	return year, month, day, true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// addYears shifts a YYYY-MM-DD date by whole calendar years, clamping
// Feb 29 to Feb 28 when the target year is not a leap year.
func addYears(date string, years int) string {
	year, month, day, _ := splitDate(date)
	year += years
	if max := daysInMonth(month, year); day > max {
		day = max
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
