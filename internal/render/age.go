// internal/render/age.go
package render

import (
	"fmt"
	"time"
)

// Age buckets, in seconds. A month is four weeks and a year twelve of those.
const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	week   = 7 * day
	month  = 4 * week
	year   = 12 * month
)

// FormatAge renders d as a single count of its largest whole unit.
func FormatAge(d time.Duration) string {
	s := int64(d / time.Second)
	if s < 0 {
		s = 0
	}
	switch {
	case s < minute:
		return fmt.Sprintf("%ds", s)
	case s < hour:
		return fmt.Sprintf("%dm", s/minute)
	case s < day:
		return fmt.Sprintf("%dh", s/hour)
	case s < week:
		return fmt.Sprintf("%dd", s/day)
	case s < month:
		return fmt.Sprintf("%dw", s/week)
	case s < year:
		return fmt.Sprintf("%dM", s/month)
	default:
		return fmt.Sprintf("%dy", s/year)
	}
}

func (st styles) age(d time.Duration) string {
	text := fmt.Sprintf("%-6s", FormatAge(d))
	switch {
	case d < minute*time.Second:
		return st.yellow.Render(text)
	case d < 5*minute*time.Second:
		return st.cyan.Render(text)
	case d < hour*time.Second:
		return st.white.Render(text)
	default:
		return st.gray.Render(text)
	}
}
