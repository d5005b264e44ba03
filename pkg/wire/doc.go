// Package wire defines the CBOR encoding of resource tree snapshots.
//
// Snapshots use CBOR (RFC 8949) with integer keys for compactness and
// deterministic encoding so that equal trees produce equal bytes.
//
// # Layout
//
//	Snapshot
//	  └── ObjectSnapshot          (object name, e.g. "3303")
//	        └── InstanceSnapshot  (object instance ID)
//	              └── ResourceSnapshot
//	                    └── ResourceInstanceSnapshot (multi-instance only)
//
// Payloads are stored as the opaque bytes held by the runtime. A
// single-instance resource carries its payload directly; a multi-instance
// resource carries one payload per resource instance.
package wire
