// Package requests reads the JSON documents of both process modes and
// applies them.
//
// A BaseDocument carries stop and bus records plus routing, render and
// serialization settings; Apply feeds its records into a catalogue in
// document order. A StatDocument carries stat requests; Handler answers them
// against a catalogue, a routing index and a map renderer and assembles the
// answers with formatter.Builder.
//
// Documents are validated with go-playground/validator after decoding.
// Unknown request types fail with ErrUnknownRequestType.
package requests
