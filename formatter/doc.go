// Package formatter builds the JSON answers of stat requests.
//
// This package is organized into:
// - builder.go: Builder, a state machine that assembles a JSON value step by step
// - response.go: payloads for each request type (bus, stop, map, route, not found)
// - json.go: serialization of the assembled value
//
// Builder misuse, such as a key outside an object or closing a container
// that was never opened, is reported as an error instead of a panic. The
// first error sticks and is returned by Build.
package formatter
