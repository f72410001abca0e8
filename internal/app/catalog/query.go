package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel query values meaning "apply no filter for this field".
const (
	SentinelAny = "any" // condition, style
	SentinelAll = "all" // gender
)

// Query is a parsed search request. String fields left empty (or set to
// their sentinel) apply no filter; nil price bounds are unbounded. Callers
// are expected to have already turned raw input into numbers-or-nil, see
// ParsePrice.
type Query struct {
	Condition string
	Style     string
	Gender    string
	PriceMin  *float64
	PriceMax  *float64
}

func (q Query) hasCondition() bool {
	return q.Condition != "" && !strings.EqualFold(q.Condition, SentinelAny)
}

func (q Query) hasStyle() bool {
	return q.Style != "" && !strings.EqualFold(q.Style, SentinelAny)
}

func (q Query) hasGender() bool {
	return q.Gender != "" && !strings.EqualFold(q.Gender, SentinelAll)
}

// CacheKey returns a normalized representation of the query, stable across
// equivalent spellings (case, absent vs. sentinel), for use as a cache key.
func (q Query) CacheKey() string {
	condition := ""
	if q.hasCondition() {
		condition = strings.ToLower(q.Condition)
	}
	style := ""
	if q.hasStyle() {
		style = strings.ToLower(q.Style)
	}
	gender := ""
	if q.hasGender() {
		gender = strings.ToLower(q.Gender)
	}
	min := ""
	if q.PriceMin != nil {
		min = strconv.FormatFloat(*q.PriceMin, 'f', -1, 64)
	}
	max := ""
	if q.PriceMax != nil {
		max = strconv.FormatFloat(*q.PriceMax, 'f', -1, 64)
	}
	return fmt.Sprintf("c=%s|s=%s|g=%s|min=%s|max=%s", condition, style, gender, min, max)
}

// ParsePrice converts a raw query parameter into a price bound. Anything
// that does not parse as a finite number degrades to "no bound" rather than
// failing the request.
func ParsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}
