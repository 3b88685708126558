package routing

// ItemType tells a wait apart from a ride
type ItemType int

const (
	ItemWait ItemType = iota
	ItemBus
)

func (t ItemType) String() string {
	switch t {
	case ItemWait:
		return "Wait"
	case ItemBus:
		return "Bus"
	default:
		return "Unknown"
	}
}

// Item is one step of an itinerary. StopName is set for waits, Bus and
// SpanCount for rides. Time is in minutes.
type Item struct {
	Type      ItemType
	StopName  string
	Bus       string
	SpanCount int
	Time      float64
}

// RouteResult is the answer to one route query
type RouteResult struct {
	RequestID int
	Found     bool
	TotalTime float64
	Items     []Item
}

// Resolve finds the fastest itinerary between two stops. Unknown stops and
// unreachable destinations give a result with Found false.
func (r *Router) Resolve(from, to string, requestID int) RouteResult {
	notFound := RouteResult{RequestID: requestID}

	src, ok := r.cat.Stop(from)
	if !ok {
		return notFound
	}
	dst, ok := r.cat.Stop(to)
	if !ok {
		return notFound
	}
	info, ok := r.index.BuildRoute(src.ID, dst.ID)
	if !ok {
		return notFound
	}

	wait := r.settings.wait()
	res := RouteResult{
		RequestID: requestID,
		Found:     true,
		TotalTime: info.Weight,
		Items:     make([]Item, 0, 2*len(info.Edges)),
	}
	for _, id := range info.Edges {
		e := r.graph.Edge(id)
		ride := r.edges[id]
		stop, _ := r.cat.StopByID(e.From)
		res.Items = append(res.Items,
			Item{Type: ItemWait, StopName: stop.Name, Time: wait},
			Item{Type: ItemBus, Bus: ride.Bus, SpanCount: ride.Span, Time: e.Weight - wait},
		)
	}
	return res
}
