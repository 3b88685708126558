/*
Package gtfs turns a GTFS static feed into base requests for the catalogue.

This package is data-source agnostic: it accepts raw zip bytes and does not
download anything. Parsing is done by github.com/jamespfennell/gtfs.

# Basic Usage

	zipBytes, _ := os.ReadFile("gtfs.zip")
	reqs, err := gtfs.Import(zipBytes, gtfs.Options{MaxRoutes: 50})
	if err != nil {
	    log.Fatal(err)
	}
	// merge with the records of the input document
	doc.BaseRequests = append(doc.BaseRequests, reqs...)

# Mapping

  - Every stop with coordinates becomes a Stop record. Stops without
    coordinates (stations, generic nodes) are skipped.
  - Every route becomes a Bus record named after its short name, or its id
    when the short name is empty. The stop sequence is taken from the
    route's trip with the most stops. A bus is a round trip when its first
    and last stop coincide.
  - Consecutive stops of the chosen trips get a road distance equal to the
    great-circle distance rounded to whole meters.

Names must be unique in the catalogue, so repeated stop or route names get
the GTFS id appended in brackets.
*/
package gtfs
