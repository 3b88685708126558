package formatter

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/routing"
)

// NotFoundMessage is the error_message of requests that name unknown objects
const NotFoundMessage = "not found"

// AddNotFound appends {"request_id", "error_message"}
func AddNotFound(b *Builder, requestID int) *Builder {
	return b.StartDict().
		Key("request_id").Value(requestID).
		Key("error_message").Value(NotFoundMessage).
		EndDict()
}

// AddBus appends the statistics of a bus line
func AddBus(b *Builder, requestID int, st catalogue.BusStats) *Builder {
	return b.StartDict().
		Key("request_id").Value(requestID).
		Key("curvature").Value(st.Curvature).
		Key("route_length").Value(st.RouteLength).
		Key("stop_count").Value(st.StopCount).
		Key("unique_stop_count").Value(st.UniqueStopCount).
		EndDict()
}

// AddStop appends the sorted names of the buses serving a stop
func AddStop(b *Builder, requestID int, buses []string) *Builder {
	b.StartDict().Key("request_id").Value(requestID).Key("buses").StartArray()
	for _, name := range buses {
		b.Value(name)
	}
	return b.EndArray().EndDict()
}

// AddMap appends a rendered SVG map
func AddMap(b *Builder, requestID int, svg string) *Builder {
	return b.StartDict().
		Key("request_id").Value(requestID).
		Key("map").Value(svg).
		EndDict()
}

// AddRoute appends an itinerary, or a not found answer when there is none
func AddRoute(b *Builder, res routing.RouteResult) *Builder {
	if !res.Found {
		return AddNotFound(b, res.RequestID)
	}
	b.StartDict().
		Key("request_id").Value(res.RequestID).
		Key("total_time").Value(res.TotalTime).
		Key("items").StartArray()
	for _, item := range res.Items {
		b.StartDict().Key("type").Value(item.Type.String())
		switch item.Type {
		case routing.ItemWait:
			b.Key("stop_name").Value(item.StopName)
		case routing.ItemBus:
			b.Key("bus").Value(item.Bus).Key("span_count").Value(item.SpanCount)
		}
		b.Key("time").Value(item.Time).EndDict()
	}
	return b.EndArray().EndDict()
}
