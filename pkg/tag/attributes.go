package tag

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type attribute struct {
	name  string
	value string
}

// attributeSet stores attributes keyed by a case-folded name so lookups and
// merges are case-insensitive. The casing of the first insertion is kept for
// serialization; later writes through a differently-cased key update the
// value only.
type attributeSet struct {
	entries map[string]attribute
}

func newAttributeSet() attributeSet {
	return attributeSet{entries: make(map[string]attribute)}
}

func foldKey(key string) string {
	return strings.ToLower(key)
}

func (s attributeSet) has(key string) bool {
	_, ok := s.entries[foldKey(key)]
	return ok
}

func (s attributeSet) get(key string) (string, bool) {
	entry, ok := s.entries[foldKey(key)]
	if !ok {
		return "", false
	}
	return entry.value, true
}

func (s attributeSet) set(key, value string) {
	folded := foldKey(key)
	if existing, ok := s.entries[folded]; ok {
		existing.value = value
		s.entries[folded] = existing
		return
	}
	s.entries[folded] = attribute{name: key, value: value}
}

func (s attributeSet) snapshot() map[string]string {
	out := make(map[string]string, len(s.entries))
	for _, entry := range s.entries {
		out[entry.name] = entry.value
	}
	return out
}

// sorted returns attributes ordered by folded key. Folded keys are unique
// within the set, so the order is total.
func (s attributeSet) sorted() []attribute {
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]attribute, 0, len(keys))
	for _, key := range keys {
		out = append(out, s.entries[key])
	}
	return out
}

// formatValue converts arbitrary attribute values to strings without any
// locale-dependent formatting.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case interface{ String() string }:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
