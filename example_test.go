package testhooks_test

import (
	"fmt"

	"github.com/aretw0/testhooks"
)

// Example_listener drives the dispatcher directly, the way a host test engine
// other than package testing would.
func Example_listener() {
	hooks := testhooks.New()

	hooks.MustRegisterRun(func(started bool) {
		fmt.Println("run started:", started)
	})
	hooks.MustRegisterLabel("tag1", false, func(started bool, label string) {
		fmt.Println("tag1 callback", label, started)
	})
	hooks.MustRegisterLabel("[tag1], tag2", true, func(started bool, label string) {
		fmt.Println("shared callback", label, started)
	})

	l := hooks.Listener()
	l.RunStarting()
	l.CaseStarting("test-tag1", []string{"[tag1]"})
	l.CaseEnded("test-tag1")
	l.CaseStarting("test-tag2", []string{"[tag2]"})
	l.CaseEnded("test-tag2")
	l.RunEnded()

	// Output:
	// run started: true
	// tag1 callback tag1 true
	// shared callback tag1 true
	// tag1 callback tag1 false
	// run started: false
	// shared callback tag1 false
}
