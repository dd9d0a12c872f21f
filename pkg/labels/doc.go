/*
Package labels parses free-form label expressions into canonical labels.

A label expression is a comma separated list where each entry may carry
surrounding whitespace and a single pair of square brackets, as test
frameworks tend to print them:

	labels.Split("[db], cache ,")   // []string{"db", "cache"}
	labels.First("[db, ], cache")   // "db"
	labels.Equal("[db]", "db")      // true

All functions are pure and safe for concurrent use.
*/
package labels
