/*
Package testhooks runs setup and teardown callbacks around a test run and
around every test case that carries a given label.

Instead of repeating setup code in each test, a callback declares the labels
it serves and the dispatcher fires it whenever a test with one of those labels
starts and ends.

# Concept

  - Run callback: one optional callback invoked when the whole run starts and ends.
  - Label callback: invoked when a case carrying one of its labels starts, and
    again (in reverse start order) when that case ends.
  - Shared label callback: started by the first matching case only and ended
    once, when the run ends.

Labels are written as free-form expressions such as "[db], cache"; see
package labels for the exact normalization rules.

# Usage

Register callbacks in TestMain, then tag each test with Case.

	package store_test

	import (
		"os"
		"testing"

		"github.com/aretw0/testhooks"
	)

	var hooks = testhooks.New()

	func TestMain(m *testing.M) {
		hooks.MustRegisterRun(func(started bool) {
			// start or stop the shared fixture
		})
		hooks.MustRegisterLabel("db", false, func(started bool, label string) {
			// open or close a database for this case
		})
		os.Exit(hooks.Main(m))
	}

	func TestQuery(t *testing.T) {
		hooks.Case(t, "[db]")
		// ...
	}

# Concurrency

Lifecycle events must be delivered one at a time. Case does not support tests
that call t.Parallel, nor nesting Case in subtests of a test that already
called it. Registration is safe from any goroutine but must complete before
the run starts.
*/
package testhooks
