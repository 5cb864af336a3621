package rtml

import (
	"fmt"
	"strconv"
	"time"
)

type attrState int

const (
	attrUnset attrState = iota
	attrFlag
	attrValue
)

// ValueOrFlag is the attribute tri-state: a string value, a bare flag, or
// absent. Exactly one rendering follows from each state; `key` and
// `key="value"` can never both appear.
type ValueOrFlag struct {
	state attrState
	value string
}

// Unset returns the absent attribute.
func Unset() ValueOrFlag { return ValueOrFlag{} }

// Flagged returns the bare-flag attribute.
func Flagged() ValueOrFlag { return ValueOrFlag{state: attrFlag} }

// Value returns a valued attribute. An empty string still renders, as
// `key=""`.
func Value(s string) ValueOrFlag { return ValueOrFlag{state: attrValue, value: s} }

// IsSet reports whether the attribute renders at all.
func (v ValueOrFlag) IsSet() bool { return v.state != attrUnset }

// ToAttr converts a Go value into the attribute tri-state: true becomes a
// flag, false becomes absent, strings and numbers become values, time.Time
// renders RFC 3339, nil (and nil pointers) become absent, and non-nil
// pointers convert their element.
func ToAttr(v any) ValueOrFlag {
	switch v := v.(type) {
	case nil:
		return Unset()
	case ValueOrFlag:
		return v
	case bool:
		if v {
			return Flagged()
		}
		return Unset()
	case string:
		return Value(v)
	case int:
		return Value(strconv.Itoa(v))
	case int8:
		return Value(strconv.FormatInt(int64(v), 10))
	case int16:
		return Value(strconv.FormatInt(int64(v), 10))
	case int32:
		return Value(strconv.FormatInt(int64(v), 10))
	case int64:
		return Value(strconv.FormatInt(v, 10))
	case uint:
		return Value(strconv.FormatUint(uint64(v), 10))
	case uint8:
		return Value(strconv.FormatUint(uint64(v), 10))
	case uint16:
		return Value(strconv.FormatUint(uint64(v), 10))
	case uint32:
		return Value(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return Value(strconv.FormatUint(v, 10))
	case float32:
		return Value(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case float64:
		return Value(strconv.FormatFloat(v, 'g', -1, 64))
	case time.Time:
		return Value(v.Format(time.RFC3339))
	case *string:
		if v == nil {
			return Unset()
		}
		return Value(*v)
	case *int:
		if v == nil {
			return Unset()
		}
		return Value(strconv.Itoa(*v))
	case *bool:
		if v == nil {
			return Unset()
		}
		return ToAttr(*v)
	case fmt.Stringer:
		return Value(v.String())
	default:
		return Value(fmt.Sprint(v))
	}
}
