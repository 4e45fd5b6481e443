// Package attr provides the typed attribute containers that back mirrored
// model state. A Field holds a validated optional value plus a monotonic
// dirty bit that drives delta snapshots; DataField lets a value be replaced
// by a named reference to an externally managed data column; UnitsField adds
// an optional unit tag from one of the closed enumerations in pkg/units.
// SpatialField and AngularField bind UnitsField to the two unit families and
// offer the recognized construction forms through an explicit init struct.
//
// Containers are plain in-memory state with no locking of their own; a model
// shared across goroutines needs external serialization (one writer at a
// time per model instance).
package attr
