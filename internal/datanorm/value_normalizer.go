package datanorm

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// numberSeparators are stripped from numeric text before parsing ("1,200", "1 200", "1_200").
var numberSeparators = strings.NewReplacer(",", "", "_", "", " ", "", "\u00a0", "")

// ToNumber coerces a raw value into a float64. Unparseable, non-finite or
// absent input yields 0; it never fails.
func ToNumber(v interface{}) float64 {
	n, ok := toFloat(v)
	if !ok {
		return 0
	}
	return n
}

// ToPercent coerces a raw rate into percentage points.
//
//	"2.5%" -> 2.5   (face value when a % sign is present)
//	0.025  -> 2.5   (values <= 1 are fractions)
//	"12"   -> 12    (values > 1 are already percentage points)
//
// Absent or unparseable input yields 0. A genuine 0.5% written without a
// sign is read as 50%; callers that need a different policy change it here.
func ToPercent(v interface{}) float64 {
	pct, ok := percentOf(v)
	if !ok {
		return 0
	}
	return pct
}

// ParseRate is ToPercent for per-campaign rates, where a missing or
// unreadable value stays Unknown instead of collapsing to 0%.
func ParseRate(v interface{}) Rate {
	pct, ok := percentOf(v)
	if !ok {
		return Rate{}
	}
	return KnownRate(pct)
}

// StatusCode coerces a raw campaign status code. Non-integral,
// out-of-range or unparseable values map to 0.
func StatusCode(v interface{}) int {
	n, ok := toFloat(v)
	if !ok || n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
		return 0
	}
	return int(n)
}

// ToCount coerces a raw counter into a non-negative integer, saturating
// at math.MaxInt64.
func ToCount(v interface{}) int64 {
	n := ToNumber(v)
	if n <= 0 {
		return 0
	}
	// float64(math.MaxInt64) rounds up to 2^63
	if n >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Round(n))
}

// ToString renders a raw scalar as text; nil becomes "".
func ToString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func percentOf(v interface{}) (float64, bool) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		if strings.Contains(s, "%") {
			n, ok := parseNumber(strings.ReplaceAll(s, "%", ""))
			if !ok {
				return 0, false
			}
			return roundPercent(n), true
		}
		n, ok := parseNumber(s)
		if !ok {
			return 0, false
		}
		return scaleFraction(n), true
	}

	n, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	return scaleFraction(n), true
}

func scaleFraction(n float64) float64 {
	if n <= 1 {
		return roundPercent(n * 100)
	}
	return roundPercent(n)
}

// roundPercent trims float noise such as 1.4999999999999998 from scaled rates.
func roundPercent(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

func toFloat(v interface{}) (float64, bool) {
	var n float64
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		n = t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int32:
		n = float64(t)
	case int64:
		n = float64(t)
	case uint:
		n = float64(t)
	case uint32:
		n = float64(t)
	case uint64:
		n = float64(t)
	case json.Number:
		return parseNumber(t.String())
	case string:
		return parseNumber(t)
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func parseNumber(s string) (float64, bool) {
	s = numberSeparators.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
