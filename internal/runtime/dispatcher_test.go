package runtime_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aretw0/testhooks/internal/runtime"
	"github.com/aretw0/testhooks/internal/testutils"
	"github.com/aretw0/testhooks/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_EndToEnd(t *testing.T) {
	rec := &testutils.Recorder{}
	reg := testutils.SetupRegistry(t, rec,
		testutils.Registration{Name: "tag1cb", Expr: "tag1"},
		testutils.Registration{Name: "shared", Expr: "tag1,tag2", Shared: true},
	)
	d := runtime.NewDispatcher(reg)

	d.RunStarting()
	d.CaseStarting("case-1", []string{"tag1"})
	d.CaseEnded("case-1")
	d.CaseStarting("case-2", []string{"tag2"})
	d.CaseEnded("case-2")

	// Shared teardown is still pending before run end.
	assert.Equal(t, []string{"run>>", "tag1cb>>tag1", "shared>>tag1", "tag1cb<<tag1"}, rec.Lines())
	require.Len(t, d.PendingShared(), 1)

	d.RunEnded()

	assert.Equal(t, []string{
		"run>>",
		"tag1cb>>tag1",
		"shared>>tag1",
		"tag1cb<<tag1",
		"run<<",
		"shared<<tag1",
	}, rec.Lines())
	assert.Empty(t, d.PendingShared())
	assert.Equal(t, runtime.StateEnded, d.State())
}

func TestDispatcher_DemoSuite(t *testing.T) {
	rec := &testutils.Recorder{}
	reg := testutils.SetupRegistry(t, rec,
		testutils.Registration{Name: "cb1", Expr: "tag1"},
		testutils.Registration{Name: "cb2", Expr: "[tag2]"},
		testutils.Registration{Name: "cb3", Expr: "tag1, tag2", Shared: true},
	)
	d := runtime.NewDispatcher(reg)

	d.RunStarting()
	for _, tc := range []struct {
		name   string
		labels []string
	}{
		{"test-tag1-0", []string{"[tag1]"}},
		{"test-tag1-1", []string{"[tag1]"}},
		{"test-tag1-tag2-0", []string{"[tag1], [tag2]"}},
		{"test-tag2-0", []string{"[tag2]"}},
	} {
		d.CaseStarting(tc.name, tc.labels)
		d.CaseEnded(tc.name)
	}
	d.RunEnded()

	assert.Equal(t, []string{
		"run>>",
		"cb1>>tag1", "cb3>>tag1", "cb1<<tag1",
		"cb1>>tag1", "cb1<<tag1",
		"cb1>>tag1", "cb2>>tag2", "cb2<<tag2", "cb1<<tag1",
		"cb2>>tag2", "cb2<<tag2",
		"run<<",
		"cb3<<tag1",
	}, rec.Lines())
}

func TestDispatcher_SharedStartsOncePerRun(t *testing.T) {
	var starts, ends int
	reg := testutils.SetupRegistry(t, &testutils.Recorder{})
	_, err := reg.RegisterLabel("tag1, tag2", func(started bool, _ string) {
		if started {
			starts++
		} else {
			ends++
		}
	}, true)
	require.NoError(t, err)

	d := runtime.NewDispatcher(reg)
	d.RunStarting()
	d.CaseStarting("a", []string{"tag1"})
	d.CaseEnded("a")
	d.CaseStarting("b", []string{"tag2"})
	d.CaseEnded("b")

	assert.Equal(t, 1, starts)
	assert.Equal(t, 0, ends, "shared teardown must wait for run end")

	d.RunEnded()
	assert.Equal(t, 1, ends)
}

func TestDispatcher_NonSharedDedupAndReverseOrder(t *testing.T) {
	rec := &testutils.Recorder{}
	reg := testutils.SetupRegistry(t, rec,
		testutils.Registration{Name: "x", Expr: "a"},
		testutils.Registration{Name: "y", Expr: "a, b"},
		testutils.Registration{Name: "z", Expr: "b"},
	)
	d := runtime.NewDispatcher(reg)

	d.CaseStarting("case", []string{"a", "[b]"})
	d.CaseEnded("case")

	assert.Equal(t, []string{
		"x>>a", "y>>a", "z>>b",
		"z<<b", "y<<a", "x<<a",
	}, rec.Lines())
}

func TestDispatcher_NonSharedRestartsEveryCase(t *testing.T) {
	rec := &testutils.Recorder{}
	reg := testutils.SetupRegistry(t, rec, testutils.Registration{Name: "x", Expr: "a"})
	d := runtime.NewDispatcher(reg)

	d.RunStarting()
	for _, name := range []string{"one", "two"} {
		d.CaseStarting(name, []string{"a"})
		d.CaseEnded(name)
	}

	assert.Equal(t, []string{"run>>", "x>>a", "x<<a", "x>>a", "x<<a"}, rec.Lines())
}

func TestDispatcher_UnknownLabel(t *testing.T) {
	rec := &testutils.Recorder{}
	reg := testutils.SetupRegistry(t, rec, testutils.Registration{Name: "x", Expr: "a"})
	d := runtime.NewDispatcher(reg)

	d.CaseStarting("case", []string{"nope", "", "[ ]"})
	d.CaseEnded("case")

	assert.Empty(t, rec.Lines())
}

func TestDispatcher_RunAfterReset(t *testing.T) {
	d := runtime.NewDispatcher(testutils.SetupRegistry(t, &testutils.Recorder{}))
	d.RunEnded()

	// Store was reset, so a fresh run has no run callback at all.
	assert.NotPanics(t, func() {
		d.RunStarting()
		d.RunEnded()
	})
}

func TestDispatcher_RunEndResetsStore(t *testing.T) {
	rec := &testutils.Recorder{}
	reg := testutils.SetupRegistry(t, rec, testutils.Registration{Name: "x", Expr: "a"})
	d := runtime.NewDispatcher(reg)

	d.RunStarting()
	d.RunEnded()

	assert.Equal(t, 0, reg.Len())
	assert.Nil(t, reg.Run())
	assert.Empty(t, reg.Labels())
}

func TestDispatcher_CasePairingViolation(t *testing.T) {
	d := runtime.NewDispatcher(testutils.SetupRegistry(t, &testutils.Recorder{}))

	assertPanicIs(t, domain.ErrCasePairing, func() { d.CaseEnded("never-started") })

	d.CaseStarting("a", nil)
	assertPanicIs(t, domain.ErrCasePairing, func() { d.CaseEnded("b") })
}

func TestDispatcher_LifecycleOrderViolation(t *testing.T) {
	d := runtime.NewDispatcher(testutils.SetupRegistry(t, &testutils.Recorder{}))

	d.RunStarting()
	assertPanicIs(t, domain.ErrLifecycleOrder, d.RunStarting)

	d.CaseStarting("a", nil)
	assertPanicIs(t, domain.ErrLifecycleOrder, func() { d.CaseStarting("b", nil) })
	assertPanicIs(t, domain.ErrLifecycleOrder, d.RunEnded)
}

func TestDispatcher_CallbackPanicPropagates(t *testing.T) {
	reg := testutils.SetupRegistry(t, &testutils.Recorder{})
	_, err := reg.RegisterLabel("a", func(started bool, _ string) {
		if started {
			panic("setup failed")
		}
	}, false)
	require.NoError(t, err)

	d := runtime.NewDispatcher(reg)
	assert.PanicsWithValue(t, "setup failed", func() {
		d.CaseStarting("case", []string{"a"})
	})
}

func TestDispatcher_VerboseProgress(t *testing.T) {
	var buf bytes.Buffer
	d := runtime.NewDispatcher(
		testutils.SetupRegistry(t, &testutils.Recorder{}),
		runtime.WithProgressWriter(&buf),
	)

	d.CaseStarting("quiet", []string{"a"})
	d.CaseEnded("quiet")
	assert.Empty(t, buf.String())

	d.SetVerbose(true)
	assert.True(t, d.Verbose())

	d.CaseStarting("loud", []string{"[a]", "b"})
	d.CaseEnded("loud")

	assert.Equal(t,
		"case \"loud\" [[a], b] starting...\n"+
			"case \"loud\" [[a], b] ended!\n",
		buf.String())
}

func assertPanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	fn()
}
