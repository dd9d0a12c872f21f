package ports

// Listener receives lifecycle events from the host test engine.
// Events are delivered sequentially from a single goroutine.
type Listener interface {
	// RunStarting is called once before the first test case runs.
	RunStarting()

	// RunEnded is called once after the last test case has ended.
	RunEnded()

	// CaseStarting is called before a test case body runs.
	// labels holds the raw label expressions attached to the case.
	CaseStarting(name string, labels []string)

	// CaseEnded is called after the test case body returns.
	// It must be paired with the preceding CaseStarting for the same name.
	CaseEnded(name string)
}
