package utils

import (
	"strconv"
	"strings"
)

// CoerceNumber turns a model-reported amount such as "20g" or 15 into a
// plain number. Everything except digits and '.' is dropped; whatever does
// not parse afterwards is 0.
func CoerceNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case uint:
		return float64(n)
	case string:
		return coerceString(n)
	case interface{ String() string }:
		return coerceString(n.String())
	}
	return 0
}

func coerceString(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}
