package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts catalog and query values to int. JSON documents carry ids as
// numbers or strings, so both forms are accepted; fractions are truncated.
// Anything unparseable converts to 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return v
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return parseInt(fmt.Sprint(v))
	case float32:
		return truncate(float64(v))
	case float64:
		return truncate(v)
	case json.Number:
		return parseInt(v.String())
	case []byte:
		return parseInt(string(v))
	default:
		return parseInt(fmt.Sprint(v))
	}
}

func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return truncate(f)
	}
	return 0
}

func truncate(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

// ToString converts titles and other payload values to string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// ToBool reads flags such as ?fix= and ?describe=. Numbers are true when 1,
// strings when 1, true, yes or on.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true
		}
		return false
	case []byte:
		return ToBool(string(v))
	case nil:
		return false
	default:
		return ToInt(v) == 1
	}
}
