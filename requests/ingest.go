package requests

import (
	"errors"
	"fmt"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
)

// ErrUnknownRequestType is returned for records and queries of a type this
// package does not handle
var ErrUnknownRequestType = errors.New("unknown request type")

// Apply adds base requests to the catalogue in the given order. Ids follow
// the first reference of each name.
func Apply(cat *catalogue.Catalogue, reqs []BaseRequest) error {
	for i, req := range reqs {
		var err error
		switch req.Type {
		case TypeStop:
			_, err = cat.AddStopRecord(req.Name, req.Latitude, req.Longitude, req.RoadDistances)
		case TypeBus:
			_, err = cat.AddBus(req.Name, req.Stops, req.IsRoundtrip)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownRequestType, req.Type)
		}
		if err != nil {
			return fmt.Errorf("base request %d: %w", i, err)
		}
	}
	return nil
}
