package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger records Warn calls so tests can assert on the invalid-name
// diagnostic without a running plugin.
type testLogger struct {
	warns []loggedWarn
}

type loggedWarn struct {
	message string
	pairs   []any
}

func (l *testLogger) Warn(message string, keyValuePairs ...any) {
	l.warns = append(l.warns, loggedWarn{message: message, pairs: keyValuePairs})
}

// recordingBindings builds a binding set whose calls are counted and whose
// arguments are captured, returning canned results.
type recordingBindings struct {
	readCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	lastName     string
	lastFallback any
	lastValue    any

	readResult   any
	createResult bool
	updateResult bool
	deleteResult bool
}

func (r *recordingBindings) bindings() Bindings {
	return Bindings{
		Read: func(name string, fallback any) any {
			r.readCalls++
			r.lastName = name
			r.lastFallback = fallback
			return r.readResult
		},
		Create: func(name string, value any) bool {
			r.createCalls++
			r.lastName = name
			r.lastValue = value
			return r.createResult
		},
		Update: func(name string, value any) bool {
			r.updateCalls++
			r.lastName = name
			r.lastValue = value
			return r.updateResult
		},
		Delete: func(name string) bool {
			r.deleteCalls++
			r.lastName = name
			return r.deleteResult
		},
	}
}

func newTestBridge(rec *recordingBindings) (*Bridge, *testLogger) {
	log := &testLogger{}
	return New(rec.bindings(), log), log
}

func TestGet_StringName_DelegatesToReadBinding(t *testing.T) {
	rec := &recordingBindings{readResult: "My Blog"}
	bridge, log := newTestBridge(rec)

	value := bridge.Get("site_title", "Untitled")

	assert.Equal(t, "My Blog", value)
	assert.Equal(t, 1, rec.readCalls)
	assert.Equal(t, "site_title", rec.lastName)
	assert.Equal(t, "Untitled", rec.lastFallback)
	assert.Empty(t, log.warns)
}

func TestGet_NonStringName_ReturnsFallback(t *testing.T) {
	invalidNames := []any{
		42,
		3.14,
		true,
		nil,
		[]string{"site_title"},
		map[string]string{"name": "site_title"},
		struct{}{},
	}

	for _, name := range invalidNames {
		rec := &recordingBindings{readResult: "should not be returned"}
		bridge, log := newTestBridge(rec)

		value := bridge.Get(name, "fallback")

		assert.Equal(t, "fallback", value, "name %#v", name)
		assert.Equal(t, 0, rec.readCalls, "name %#v", name)
		require.Len(t, log.warns, 1, "name %#v", name)
		assert.Equal(t, "option name must be a string", log.warns[0].message)
	}
}

func TestGet_DiagnosticNamesOperationAndType(t *testing.T) {
	rec := &recordingBindings{}
	bridge, log := newTestBridge(rec)

	bridge.Get(42, nil)

	require.Len(t, log.warns, 1)
	assert.Equal(t, []any{"operation", "get", "type", "int"}, log.warns[0].pairs)
}

func TestAdd_StringName_DelegatesToCreateBinding(t *testing.T) {
	rec := &recordingBindings{createResult: true}
	bridge, _ := newTestBridge(rec)

	ok := bridge.Add("quota", 100)

	assert.True(t, ok)
	assert.Equal(t, 1, rec.createCalls)
	assert.Equal(t, "quota", rec.lastName)
	assert.Equal(t, 100, rec.lastValue)
}

func TestAdd_BindingFailure_PassedThrough(t *testing.T) {
	rec := &recordingBindings{createResult: false}
	bridge, log := newTestBridge(rec)

	ok := bridge.Add("quota", 100)

	assert.False(t, ok)
	assert.Equal(t, 1, rec.createCalls)
	// A binding failure is not an invalid name; nothing is logged.
	assert.Empty(t, log.warns)
}

func TestAdd_NonStringName_ReturnsFalse(t *testing.T) {
	rec := &recordingBindings{createResult: true}
	bridge, log := newTestBridge(rec)

	ok := bridge.Add([]int{1, 2}, "value")

	assert.False(t, ok)
	assert.Equal(t, 0, rec.createCalls)
	require.Len(t, log.warns, 1)
	assert.Equal(t, []any{"operation", "add", "type", "[]int"}, log.warns[0].pairs)
}

func TestUpdate_StringName_DelegatesToUpdateBinding(t *testing.T) {
	rec := &recordingBindings{updateResult: true}
	bridge, _ := newTestBridge(rec)

	ok := bridge.Update("site_title", "New Title")

	assert.True(t, ok)
	assert.Equal(t, 1, rec.updateCalls)
	assert.Equal(t, "site_title", rec.lastName)
	assert.Equal(t, "New Title", rec.lastValue)
}

func TestUpdate_NonStringName_ReturnsFalse(t *testing.T) {
	rec := &recordingBindings{updateResult: true}
	bridge, log := newTestBridge(rec)

	ok := bridge.Update(nil, "value")

	assert.False(t, ok)
	assert.Equal(t, 0, rec.updateCalls)
	require.Len(t, log.warns, 1)
	assert.Equal(t, []any{"operation", "update", "type", "<nil>"}, log.warns[0].pairs)
}

func TestDelete_StringName_DelegatesToDeleteBinding(t *testing.T) {
	rec := &recordingBindings{deleteResult: true}
	bridge, _ := newTestBridge(rec)

	ok := bridge.Delete("legacy_flag")

	assert.True(t, ok)
	assert.Equal(t, 1, rec.deleteCalls)
	assert.Equal(t, "legacy_flag", rec.lastName)
}

func TestDelete_NonStringName_ReturnsFalse(t *testing.T) {
	rec := &recordingBindings{deleteResult: true}
	bridge, log := newTestBridge(rec)

	ok := bridge.Delete(false)

	assert.False(t, ok)
	assert.Equal(t, 0, rec.deleteCalls)
	require.Len(t, log.warns, 1)
	assert.Equal(t, []any{"operation", "delete", "type", "bool"}, log.warns[0].pairs)
}

func TestSetReadFunction_AffectsOnlySubsequentCalls(t *testing.T) {
	rec := &recordingBindings{readResult: "original"}
	bridge, _ := newTestBridge(rec)

	first := bridge.Get("key", nil)
	assert.Equal(t, "original", first)

	replacementCalls := 0
	bridge.SetReadFunction(func(name string, fallback any) any {
		replacementCalls++
		return "replacement"
	})

	second := bridge.Get("key", nil)

	// The completed call keeps its result; only the new call sees the
	// replacement binding.
	assert.Equal(t, "original", first)
	assert.Equal(t, "replacement", second)
	assert.Equal(t, 1, rec.readCalls)
	assert.Equal(t, 1, replacementCalls)
}

func TestSetCreateFunction_ReplacesBinding(t *testing.T) {
	rec := &recordingBindings{createResult: false}
	bridge, _ := newTestBridge(rec)

	bridge.SetCreateFunction(func(name string, value any) bool {
		return true
	})

	assert.True(t, bridge.Add("key", "value"))
	assert.Equal(t, 0, rec.createCalls)
}

func TestSetUpdateFunction_ReplacesBinding(t *testing.T) {
	rec := &recordingBindings{updateResult: false}
	bridge, _ := newTestBridge(rec)

	bridge.SetUpdateFunction(func(name string, value any) bool {
		return true
	})

	assert.True(t, bridge.Update("key", "value"))
	assert.Equal(t, 0, rec.updateCalls)
}

func TestSetDeleteFunction_ReplacesBinding(t *testing.T) {
	rec := &recordingBindings{deleteResult: false}
	bridge, _ := newTestBridge(rec)

	bridge.SetDeleteFunction(func(name string) bool {
		return true
	})

	assert.True(t, bridge.Delete("key"))
	assert.Equal(t, 0, rec.deleteCalls)
}

func TestNew_DefaultsUsedWhenNoOptionsGiven(t *testing.T) {
	rec := &recordingBindings{readResult: "stored", createResult: true, updateResult: true, deleteResult: true}
	bridge, _ := newTestBridge(rec)

	assert.Equal(t, "stored", bridge.Get("a", nil))
	assert.True(t, bridge.Add("b", 1))
	assert.True(t, bridge.Update("c", 2))
	assert.True(t, bridge.Delete("d"))
	assert.Equal(t, 1, rec.readCalls)
	assert.Equal(t, 1, rec.createCalls)
	assert.Equal(t, 1, rec.updateCalls)
	assert.Equal(t, 1, rec.deleteCalls)
}

func TestNew_WithReadFuncOverridesDefault(t *testing.T) {
	rec := &recordingBindings{readResult: "default"}
	log := &testLogger{}

	bridge := New(rec.bindings(), log, WithReadFunc(func(name string, fallback any) any {
		if name == "site_title" {
			return "My Blog"
		}
		return fallback
	}))

	assert.Equal(t, "My Blog", bridge.Get("site_title", "Untitled"))
	assert.Equal(t, "fall", bridge.Get("missing", "fall"))
	// The default read binding was displaced at construction.
	assert.Equal(t, 0, rec.readCalls)
	// The other operations still use their defaults.
	bridge.Delete("x")
	assert.Equal(t, 1, rec.deleteCalls)
}

func TestNew_WithWriteOverrides(t *testing.T) {
	rec := &recordingBindings{createResult: true, updateResult: true, deleteResult: true}
	log := &testLogger{}

	bridge := New(rec.bindings(), log,
		WithCreateFunc(func(name string, value any) bool { return false }),
		WithUpdateFunc(func(name string, value any) bool { return false }),
		WithDeleteFunc(func(name string) bool { return false }),
	)

	assert.False(t, bridge.Add("a", 1))
	assert.False(t, bridge.Update("b", 2))
	assert.False(t, bridge.Delete("c"))
	assert.Equal(t, 0, rec.createCalls)
	assert.Equal(t, 0, rec.updateCalls)
	assert.Equal(t, 0, rec.deleteCalls)
}
