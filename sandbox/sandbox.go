package sandbox

import (
	"sort"
	"strings"

	"github.com/viant/strmap/internal/conv"
)

// Sandbox wraps a single string to string mapping in which every key is the
// reversed form of its value.  The container is not safe for concurrent use;
// callers that share an instance across goroutines guard it themselves (see
// service.Service).
type Sandbox struct {
	entries map[string]string
}

// New returns an empty sandbox.
func New() *Sandbox {
	return &Sandbox{entries: make(map[string]string)}
}

// Len returns the number of entries.
func (s *Sandbox) Len() int { return len(s.entries) }

// Value returns the value stored under key and whether the key is present.
func (s *Sandbox) Value(key string) (string, bool) {
	value, ok := s.entries[key]
	return value, ok
}

// Snapshot returns a detached copy of the underlying map.
func (s *Sandbox) Snapshot() map[string]string {
	out := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// ValuesSorted returns all values in ascending lexicographic order.
func (s *Sandbox) ValuesSorted() []string {
	values := make([]string, 0, len(s.entries))
	for _, v := range s.entries {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// KeysSortedDescending returns all keys in descending lexicographic order.
func (s *Sandbox) KeysSortedDescending() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// FirstKey returns the lexicographically smallest key.  The second return is
// false when the sandbox is empty.
func (s *Sandbox) FirstKey() (string, bool) {
	var first string
	var found bool
	for k := range s.entries {
		if !found || k < first {
			first, found = k, true
		}
	}
	return first, found
}

// LastValue returns the lexicographically largest value.  The second return
// is false when the sandbox is empty.
func (s *Sandbox) LastValue() (string, bool) {
	var last string
	var found bool
	for _, v := range s.entries {
		if !found || v > last {
			last, found = v, true
		}
	}
	return last, found
}

// UppercasedKeys returns the set of keys converted to upper case.  Keys that
// only differ in case collapse into a single element; element order is
// unspecified.
func (s *Sandbox) UppercasedKeys() []string {
	set := make(map[string]struct{}, len(s.entries))
	for k := range s.entries {
		set[strings.ToUpper(k)] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

// DistinctValueCount returns the number of unique values.
func (s *Sandbox) DistinctValueCount() int {
	set := make(map[string]struct{}, len(s.entries))
	for _, v := range s.entries {
		set[v] = struct{}{}
	}
	return len(set)
}

// Add stores value under its reversed form, overwriting any previous entry
// with the same key.  The sandbox may therefore keep its size when value was
// already present.
func (s *Sandbox) Add(value string) {
	s.entries[Reverse(value)] = value
}

// RemoveByKey deletes the entry stored under key; absent keys are a no-op.
func (s *Sandbox) RemoveByKey(key string) {
	delete(s.entries, key)
}

// RemoveByValue deletes the first entry, in unspecified iteration order,
// whose value equals value; a no-op when no entry matches.
func (s *Sandbox) RemoveByValue(value string) {
	for k, v := range s.entries {
		if v == value {
			delete(s.entries, k)
			return
		}
	}
}

// Reset clears the sandbox and re-populates it from the string representation
// of every item, in order, funnelling each through Add so that the reversal
// invariant holds.  A nil slice just clears.
func (s *Sandbox) Reset(items []any) {
	s.entries = make(map[string]string, len(items))
	for _, item := range items {
		s.Add(conv.String(item))
	}
}

// UppercaseKeys rebuilds the sandbox with every key converted to upper case
// while values stay untouched.  When two keys upper-case to the same string
// the surviving entry is decided by map iteration order (last write wins).
// Affected keys intentionally stop being the reversal of their values.
func (s *Sandbox) UppercaseKeys() {
	rebuilt := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		rebuilt[strings.ToUpper(k)] = v
	}
	s.entries = rebuilt
}

// ContainsAllValues reports whether every candidate appears as a value in the
// sandbox.  An empty candidate list is vacuously true.
func (s *Sandbox) ContainsAllValues(candidates []string) bool {
	for _, candidate := range candidates {
		if !s.containsValue(candidate) {
			return false
		}
	}
	return true
}

func (s *Sandbox) containsValue(value string) bool {
	for _, v := range s.entries {
		if v == value {
			return true
		}
	}
	return false
}
