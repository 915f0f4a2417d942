// README: Flight record owned by the store; read-only to the planner.
package flights

import "rupeetravel/internal/types"

// Flight is one priced departure. The planner only reasons about Origin,
// Destination, Date and PriceINR; everything else is display data passed
// through untouched.
//
// Ranking contract: price ascending, ties broken by ID (insertion order), so
// identical queries always return identical orderings.
type Flight struct {
	ID                 int64      `json:"id"`
	UUID               string     `json:"uuid"`
	Date               types.Date `json:"date"`
	Origin             string     `json:"origin"`
	Destination        string     `json:"destination"`
	Airline            string     `json:"airline"`
	Duration           string     `json:"duration"`
	FlightType         string     `json:"flight_type"`
	PriceINR           int64      `json:"price_inr"`
	OriginCountry      string     `json:"origin_country,omitempty"`
	DestinationCountry string     `json:"destination_country,omitempty"`
	Link               string     `json:"link"`
	RainProbability    int        `json:"rain_probability,omitempty"`
	FreeMeal           bool       `json:"free_meal,omitempty"`
}
