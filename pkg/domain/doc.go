/*
Package domain contains the core types shared by the registry, the dispatcher
and the observability adapters.

It is kept free of I/O and of any dependency on the host test framework.

# Key Entities

  - Handle: stable index of a registered label callback.
  - Record: the callback body plus its lifetime policy (shared or per case).
  - Invocation: a callback that has been started and still owes its end call.
  - Observer: optional hooks fired around every callback invocation.
*/
package domain
