package form

import (
	"fmt"
	"net/url"
	"strconv"

	"carpark-finder/internal/model"
)

const mapSearchURL = "https://www.google.com/maps/search/"

// FormatDistanceKm renders a distance in meters as kilometers with two decimals.
func FormatDistanceKm(meters float64) string {
	return strconv.FormatFloat(meters/1000, 'f', 2, 64)
}

// MapURL builds a map-query link that opens the given coordinates.
func MapURL(lat, lng float64) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", fmt.Sprintf("%s,%s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64)))
	return mapSearchURL + "?" + q.Encode()
}

// View is the flattened render model shared by the HTML page, the JSON API
// and the terminal.
type View struct {
	Status     Status               `json:"status"`
	Loading    bool                 `json:"loading"`
	Postcode   string               `json:"postcode"`
	Result     *model.CarparkResult `json:"result,omitempty"`
	Error      string               `json:"error,omitempty"`
	DistanceKm string               `json:"distance_km,omitempty"`
	MapURL     string               `json:"map_url,omitempty"`
}

// NewView flattens a state for rendering.
func NewView(postcode string, state State) View {
	v := View{Status: state.Status(), Postcode: postcode}
	switch s := state.(type) {
	case Pending:
		v.Loading = true
	case Succeeded:
		result := s.Result
		v.Result = &result
		v.DistanceKm = FormatDistanceKm(result.Distance)
		v.MapURL = MapURL(result.Lat, result.Lng)
	case Failed:
		v.Error = s.Message
	}
	return v
}
