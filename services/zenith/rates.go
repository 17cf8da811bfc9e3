package zenith

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDropRate normalizes scraped rate text to a percentage value.
// Accepts "12.5%", "12,5 %" and bare numbers; anything else is an
// error the caller reports per record.
func ParseDropRate(text string) (float64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, fmt.Errorf("empty drop rate")
	}
	rate, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable drop rate %q: %w", text, err)
	}
	if rate < 0 || rate > 100 {
		return 0, fmt.Errorf("drop rate %v out of range", rate)
	}
	return rate, nil
}
