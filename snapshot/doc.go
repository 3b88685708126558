// Package snapshot persists a built transport index and restores it.
//
// A snapshot holds the catalogue, render and routing settings, the routing
// graph and the all-pairs route table. It is written in protobuf wire format
// using protowire directly, so no generated code is involved. Floats are
// stored as fixed64 and come back bit for bit.
//
// Loading replays stops and buses through the catalogue in stored order and
// checks that every replayed id matches the stored one. The graph and route
// table are copied as stored; nothing is recomputed.
//
// Example:
//
//	snap := snapshot.New(cat, renderSettings, router)
//	if err := snapshot.WriteFile("transport.db", snap); err != nil {
//	    // handle error
//	}
//
//	loaded, err := snapshot.ReadFile("transport.db")
//	if err != nil {
//	    // snapshot missing or corrupt, serve phase cannot continue
//	}
//	router, err := routing.Restore(loaded.Catalogue, loaded.RoutingSettings, loaded.Graph, loaded.RouteData)
package snapshot
