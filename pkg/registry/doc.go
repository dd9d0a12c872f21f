/*
Package registry implements the callback store behind the dispatcher.

Registration is expected to happen once, before the first lifecycle event.
Writes are guarded by a mutex so that registering from package init functions
or helper goroutines is safe, but registering while a run is being dispatched
is a usage error.
*/
package registry
