package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt coerces a JSON-decoded scalar to int. Item counts arrive as strings
// from some services and as float64 from generic JSON decoding, so scanners
// funnel both through here. Missing or unparseable values coerce to zero.
func ToInt(val any) int {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	case []byte:
		i, _ := strconv.Atoi(strings.TrimSpace(string(v)))
		return i
	default:
		i, _ := strconv.Atoi(fmt.Sprint(val))
		return i
	}
}
