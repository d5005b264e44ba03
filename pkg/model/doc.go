// Package model implements an in-memory LWM2M client resource tree.
//
// # Hierarchy
//
//	Client > Object > ObjectInstance > Resource > ResourceInstance
//
// A Client holds objects by name ("3303"). Each object holds numbered
// instances, each instance holds resources by name ("5700"). A resource
// created with multiple instances holds indexed ResourceInstances and no
// value of its own.
//
// # Values
//
// Values are stored as opaque byte payloads. SetInt stores the decimal text
// of the integer and ValueInt parses it back, the way the mbed client does.
// An unset value is an empty payload.
//
// # Server access
//
// Application code writes with SetValue and SetInt. Write, Read and Execute
// simulate requests from the management server and honour the resource
// operation (GET, PUT, POST). A successful Write invokes the value-updated
// callback with the resource name.
//
// # Observation
//
// Observers registered on the Client are told when the payload of an
// observable resource changes.
package model
