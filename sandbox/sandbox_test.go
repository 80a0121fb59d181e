package sandbox

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	box := New()
	box.Add("hola")

	value, ok := box.Value("aloh")
	require.True(t, ok, "expected key %q after add", "aloh")
	assert.EqualValues(t, "hola", value)

	box.Add("ab")
	box.Add("ba")
	assert.EqualValues(t, 3, box.Len())
	assert.ElementsMatch(t, []string{"aloh", "ab", "ba"}, box.KeysSortedDescending())
	assert.EqualValues(t, 3, box.DistinctValueCount())

	// Re-adding an existing value overwrites the same key and keeps the size.
	box.Add("hola")
	assert.EqualValues(t, 3, box.Len())
}

func TestOrderedViews(t *testing.T) {
	box := New()
	for _, value := range []string{"pera", "manzana", "uva", "kiwi"} {
		box.Add(value)
	}

	values := box.ValuesSorted()
	assert.EqualValues(t, []string{"kiwi", "manzana", "pera", "uva"}, values)
	assert.True(t, sort.StringsAreSorted(values))

	keys := box.KeysSortedDescending()
	require.EqualValues(t, 4, len(keys))
	for i := 1; i < len(keys); i++ {
		assert.True(t, keys[i-1] >= keys[i], "keys not descending at %d: %v", i, keys)
	}

	firstKey, ok := box.FirstKey()
	require.True(t, ok)
	assert.EqualValues(t, "anaznam", firstKey)

	lastValue, ok := box.LastValue()
	require.True(t, ok)
	assert.EqualValues(t, "uva", lastValue)
}

func TestEmptySandbox(t *testing.T) {
	box := New()

	_, ok := box.FirstKey()
	assert.False(t, ok)
	_, ok = box.LastValue()
	assert.False(t, ok)

	assert.Empty(t, box.ValuesSorted())
	assert.Empty(t, box.KeysSortedDescending())
	assert.Empty(t, box.UppercasedKeys())
	assert.EqualValues(t, 0, box.DistinctValueCount())
	assert.True(t, box.ContainsAllValues(nil))
}

func TestUppercasedKeys(t *testing.T) {
	box := New()
	box.Add("ab") // key ba
	box.Add("AB") // key BA

	keys := box.UppercasedKeys()
	// Both keys upper-case to BA and collapse into one set element.
	assert.EqualValues(t, []string{"BA"}, keys)
	assert.EqualValues(t, 2, box.Len())
}

func TestRemove(t *testing.T) {
	box := New()
	box.Add("hola")
	box.Add("mundo")

	box.RemoveByKey("aloh")
	assert.EqualValues(t, 1, box.Len())
	_, ok := box.Value("aloh")
	assert.False(t, ok)

	// Removing an absent key is a no-op.
	box.RemoveByKey("aloh")
	assert.EqualValues(t, 1, box.Len())

	box.RemoveByValue("mundo")
	assert.EqualValues(t, 0, box.Len())

	// Removing an absent value is a no-op.
	box.RemoveByValue("mundo")
	assert.EqualValues(t, 0, box.Len())
}

func TestRemoveByValueFirstMatchOnly(t *testing.T) {
	box := New()
	box.Add("ab")
	box.Add("AB")
	require.EqualValues(t, 2, box.Len())

	// Distinct keys never hold the same value, so removal by value drops
	// exactly one entry.
	box.RemoveByValue("ab")
	assert.EqualValues(t, 1, box.Len())
	assert.True(t, box.ContainsAllValues([]string{"AB"}))
	assert.False(t, box.ContainsAllValues([]string{"ab"}))
}

func TestReset(t *testing.T) {
	box := New()
	box.Add("previous")

	box.Reset([]any{"hola", 42, true})
	assert.EqualValues(t, 3, box.Len())
	assert.True(t, box.ContainsAllValues([]string{"hola", "42", "true"}))
	_, ok := box.Value(Reverse("previous"))
	assert.False(t, ok, "reset must clear prior entries")

	value, ok := box.Value("24")
	require.True(t, ok, "expected stringified item keyed by reversal")
	assert.EqualValues(t, "42", value)

	box.Reset(nil)
	assert.EqualValues(t, 0, box.Len())
}

func TestUppercaseKeys(t *testing.T) {
	box := New()
	box.Add("ab") // key ba

	box.UppercaseKeys()
	snapshot := box.Snapshot()
	assert.EqualValues(t, map[string]string{"BA": "ab"}, snapshot)

	// Colliding keys collapse; the surviving value is one of the originals.
	box = New()
	box.Add("ab")
	box.Add("aB")
	box.UppercaseKeys()
	require.EqualValues(t, 1, box.Len())
	value, ok := box.Value("BA")
	require.True(t, ok)
	assert.Contains(t, []string{"ab", "aB"}, value)
}

func TestContainsAllValues(t *testing.T) {
	box := New()
	box.Add("hola")
	box.Add("ab")

	assert.True(t, box.ContainsAllValues([]string{"hola", "ab"}))
	assert.True(t, box.ContainsAllValues([]string{"hola"}))
	assert.False(t, box.ContainsAllValues([]string{"hola", "missing"}))
	assert.True(t, box.ContainsAllValues(nil))
}

func TestSnapshotDetached(t *testing.T) {
	box := New()
	box.Add("hola")

	snapshot := box.Snapshot()
	snapshot["x"] = "y"
	assert.EqualValues(t, 1, box.Len())
}
