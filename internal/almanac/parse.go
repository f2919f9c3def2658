package almanac

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tartampluch/go-almanac/internal/config"
)

// ParseDate parses a textual date in the named system: "Y-M-D" for the
// month-structured systems (a leading minus marks a BC/negative year),
// "b.k.t.u.k" for the Maya Long Count. Components are validated against the
// system's own month-length rules before a date is constructed.
func ParseDate(system, raw string) (Almanac, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty date")
	}

	if system == config.SystemMaya {
		return parseMayaDate(raw)
	}

	desc, err := Lookup(system)
	if err != nil {
		return nil, err
	}

	year, month, day, err := splitYMD(raw)
	if err != nil {
		return nil, err
	}
	if month < 1 || month > desc.MonthsInYear(year) {
		return nil, fmt.Errorf("month %d out of range for %s year %d", month, system, year)
	}
	n, err := desc.DaysInMonth(year, month)
	if err != nil {
		return nil, err
	}
	if day < 1 || day > n {
		return nil, fmt.Errorf("day %d out of range for %s %d-%d", day, system, year, month)
	}
	return desc.NewDate(year, month, day), nil
}

func parseMayaDate(raw string) (*Maya, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 5 {
		return nil, fmt.Errorf("maya date must have 5 dot-separated digits, got %q", raw)
	}
	var digits [5]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid maya digit %q", p)
		}
		digits[i] = n
	}
	return NewMaya(digits[0], digits[1], digits[2], digits[3], digits[4]), nil
}

// splitYMD parses "Y-M-D", tolerating a leading minus on the year.
func splitYMD(raw string) (year, month, day int, err error) {
	body := raw
	negative := false
	if strings.HasPrefix(body, "-") {
		negative = true
		body = body[1:]
	}
	parts := strings.Split(body, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("date must be Y-M-D, got %q", raw)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("invalid date component %q", p)
		}
		nums[i] = n
	}
	if negative {
		nums[0] = -nums[0]
	}
	return nums[0], nums[1], nums[2], nil
}
