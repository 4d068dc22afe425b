// Package resource defines the declarative input consumed by the generator: a
// Descriptor naming the resource and listing its fields in order. Descriptors
// are loaded from JSON or YAML documents (a single object or a `resources`
// list) through the Loader contract, validated once, and then treated as
// immutable for the rest of the run. Field types form a closed enumeration;
// tags outside the known set survive as FieldType values for which
// Known reports false, so downstream builders can apply their default arm.
package resource
