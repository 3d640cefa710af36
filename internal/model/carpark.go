package model

// CarparkResult is the nearest-carpark record returned by the lookup backend.
type CarparkResult struct {
	CarparkNumber string  `json:"carpark_number"`
	LotsAvailable int     `json:"lots_available"`
	TotalLots     int     `json:"total_lots"`
	Distance      float64 `json:"distance"` // meters
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
}
