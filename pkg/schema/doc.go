// Package schema declares LWM2M objects and their resources.
//
// An object is described once, as a static table, and read many times:
//
//	var Switch = schema.ObjectDef{
//		Instance: 0,
//		Name:     "3312",
//		Resources: schema.ResourceTable{
//			{Instance: schema.SingleInstance, Name: "5850", TypeLabel: "on/off",
//				Type: schema.TypeBoolean, Operation: schema.OpGetPut},
//		},
//	}
//
// # Resources
//
// A resource with Instance set to SingleInstance is a plain resource. Entries
// sharing a Name with Instance >= 0 form one multi-instance resource, each entry
// declaring one indexed instance. All entries of such a family should agree on
// Type, Operation and Observable; Validate reports when they do not.
//
// # Bounds
//
// ResourceTable is a fixed-size array, so a literal with more than MaxResources
// entries does not compile. Definitions loaded from YAML are bounded the same
// way at load time.
//
// # Types
//
// OBJLINK and OPAQUE are declarable but carry no value operations; accessors
// refuse them.
package schema
