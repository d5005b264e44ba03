// Package helper builds LWM2M objects from static definitions and gives
// typed access to their resource values.
//
// A Helper binds one schema.ObjectDef to a device-management runtime:
//
//	h := helper.New(&switchDef, helper.Config{Runtime: rt})
//	if err := h.MakeObject(); err != nil {
//		// some resources may still have been created
//	}
//	_ = h.SetBool("5850", schema.SingleInstance, true)
//
// # Building
//
// MakeObject creates the object (unless a shared one was supplied), the
// object instance and every declared resource in declaration order. It is
// best-effort: a failing resource does not stop the others and nothing is
// rolled back. The returned error joins every failure.
//
// # Values
//
// The accessors look the resource up in the definition, check that the
// declared type fits the accessor and convert between the Go value and the
// runtime payload. INTEGER and TIME both satisfy the integer accessors.
// FLOAT values travel as text rendered with the resource Format. OBJLINK and
// OPAQUE resources have no accessors and always fail with ErrUnsupportedType.
//
// # Sibling instances
//
// Several instances of one object type share a single runtime object.
// Build the first Helper normally and pass its Object() handle to the
// others through Config.Shared. The runtime object is deleted when the last
// Helper referring to it is closed.
//
// # Diagnostics
//
// With Config.Debug set, every creation, lookup failure and type mismatch is
// traced at debug level to Config.Logger.
package helper
