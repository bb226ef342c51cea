// Package importer seeds a field list from an existing OpenAPI operation so
// the builder can start from a backend's request schema instead of an empty
// form. Only flat request bodies are mapped; nested objects and arrays of
// free-form items have no field kind and are reported as skipped.
package importer
