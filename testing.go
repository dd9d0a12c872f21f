package testhooks

// TestingM is the part of *testing.M used by Main.
type TestingM interface {
	Run() int
}

// TB is the part of testing.TB used by Case.
type TB interface {
	Name() string
	Cleanup(func())
	Helper()
}

// Main fires the run start, runs the tests and fires the run end.
// Its result is meant for os.Exit.
func (h *Hooks) Main(m TestingM) int {
	h.dispatcher.RunStarting()
	code := m.Run()
	h.dispatcher.RunEnded()
	return code
}

// Case marks t as a test case carrying the given label expressions.
// Matching callbacks start now; their teardown is scheduled with t.Cleanup.
func (h *Hooks) Case(t TB, exprs ...string) {
	t.Helper()

	name := t.Name()
	h.dispatcher.CaseStarting(name, exprs)
	t.Cleanup(func() {
		h.dispatcher.CaseEnded(name)
	})
}
