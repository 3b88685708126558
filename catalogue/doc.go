/*
Package catalogue holds the transit network: stops, bus lines and the road
distances between stops.

Stops and buses live in an arena indexed by dense integer ids. A stop gets its
id the first time its name is referenced, whether by a stop record, a bus
record or a road distance, so coordinates may arrive later in the same
ingestion pass:

	cat := catalogue.New()
	cat.AddBus("14", []string{"A", "B"}, false) // A=0, B=1
	cat.AddStop("A", 55.61, 37.20)              // completes A, id unchanged
	cat.SetDistance("A", "B", 1200)

Ids are never reused or renumbered. Replaying stops and buses in id order on a
fresh Catalogue reproduces the same ids, which is what the snapshot package
relies on.

# Distances

Distances are directional. A lookup for (B, A) falls back to (A, B) when only
the forward direction was recorded, and to zero when neither was.

# Round trips

A non-looped bus stores only its forward stop list. Route() rebuilds the full
traversal (forward followed by reverse, without repeating the terminal).
*/
package catalogue
