/*
Package ports defines the interfaces that decouple the dispatcher from the
host test framework and from the callback storage.

# Key Interfaces

  - Listener: the four lifecycle events a host test engine emits.
  - CallbackStore: read and write access to registered callbacks.
*/
package ports
