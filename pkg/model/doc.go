// Package model turns a declared set of attribute containers into full or
// dirty-only snapshots for a remote consumer. Attribute sets are registered
// explicitly: ad hoc through a Builder, or once per model type through
// Define, whose immutable Definition table instantiates fresh containers per
// model instance. A model's attribute set is fixed after Build/Instantiate.
package model
