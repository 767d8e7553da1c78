package sqlbuild

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/apperr"
)

// Params is a sparse set of named search constraints. Values coming from a
// query string are strings; callers inside the process may pass other types.
type Params map[string]any

// FromQuery converts query-string values to Params, keeping the first value of
// each key.
func FromQuery(values url.Values) Params {
	p := make(Params, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			p[k] = vs[0]
		}
	}
	return p
}

// CheckKeys fails with an invalid-request error naming every key that is not
// in allowed.
func (p Params) CheckKeys(allowed ...string) error {
	unknown := lo.Without(lo.Keys(p), allowed...)
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return apperr.InvalidRequest("Invalid keys in request: %s", strings.Join(unknown, ","))
}

// String returns the value for key as text, or "" if absent.
func (p Params) String(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// MaxInt is the largest value an INTEGER column holds.
const MaxInt = math.MaxInt32

// Int returns the value for key as an integer in [0, MaxInt], or nil if the
// key is absent or empty.
func (p Params) Int(key string) (*int, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return nil, nil
	}

	var n int64
	switch t := v.(type) {
	case int:
		n = int64(t)
	case int32:
		n = int64(t)
	case int64:
		n = t
	case float64:
		if t != math.Trunc(t) {
			return nil, apperr.InvalidRequest("%s must be an integer", key)
		}
		if t < 0 || t > MaxInt {
			return nil, outOfRange(key)
		}
		n = int64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
				return nil, outOfRange(key)
			}
			return nil, apperr.InvalidRequest("%s must be an integer", key)
		}
		n = parsed
	default:
		return nil, apperr.InvalidRequest("%s must be an integer", key)
	}

	if n < 0 || n > MaxInt {
		return nil, outOfRange(key)
	}
	out := int(n)
	return &out, nil
}

func outOfRange(key string) error {
	return apperr.InvalidRequest("%s must be between 0 and %d", key, MaxInt)
}

// Flag reports whether key holds exactly the string "true". Any other value,
// including a bool, reads as false.
func (p Params) Flag(key string) bool {
	s, ok := p[key].(string)
	return ok && s == "true"
}
