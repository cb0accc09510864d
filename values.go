package argbind

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// convertValue parses a raw token into the Go value for a scalar kind.
func convertValue(kind valueKind, s string) (interface{}, error) {
	switch kind {
	case kindString:
		return s, nil
	case kindInt:
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		return v, nil
	case kindFloat:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", s)
		}
		return v, nil
	case kindDuration:
		v, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q", s)
		}
		return v, nil
	case kindBool, kindFlag:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q", s)
		}
		return v, nil
	}
	return nil, fmt.Errorf("cannot convert %q", s)
}

// convertList parses raw tokens into a typed slice for a list option.
func convertList(elem valueKind, raw []string) (interface{}, error) {
	switch elem {
	case kindInt:
		vals := make([]int, 0, len(raw))
		for _, s := range raw {
			v, err := convertValue(kindInt, s)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v.(int))
		}
		return vals, nil
	case kindFloat:
		vals := make([]float64, 0, len(raw))
		for _, s := range raw {
			v, err := convertValue(kindFloat, s)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v.(float64))
		}
		return vals, nil
	default:
		return append([]string{}, raw...), nil
	}
}

// splitPair parses a key=value token for a map option.
func splitPair(s string) (string, string, error) {
	kv := strings.SplitN(s, "=", 2)
	if len(kv) != 2 || kv[0] == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", s)
	}
	return kv[0], kv[1], nil
}
