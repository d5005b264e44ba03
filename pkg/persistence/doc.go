// Package persistence saves and restores resource values of a device.
//
// A StateStore keeps a CBOR snapshot (see package wire) in a single file.
// Capture takes a snapshot of a live resource tree and Restore writes the
// saved payloads back into a tree that was rebuilt after a restart.
package persistence
