// Package routing turns bus lines into a travel-time graph and answers
// itinerary queries over it.
//
// Every pair of stops (i, k) with i < k along the full traversal of a bus
// becomes one edge whose weight is a single boarding wait plus the ride time
// from stop i to stop k. A passenger therefore pays the wait once per boarding
// no matter how many stops they stay on the bus. Edge ids index a table of
// (bus, span) pairs that the resolver uses to describe each ride.
//
// Example:
//
//	r, err := routing.Build(cat, routing.Settings{BusWaitTime: 6, BusVelocity: 40 * 1000.0 / 60})
//	if err != nil {
//	    // handle error
//	}
//	res := r.Resolve("Airport", "Harbour", 4)
package routing
