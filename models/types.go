package models

// Parity modes accepted by the /parity endpoint
const (
	ParityEven = "even"
	ParityOdd  = "odd"
)

// Endpoint paths on the computation service
const (
	PathCountingSort = "/counting-sort"
	PathParity       = "/parity"
)

// Request types

type SortRequest struct {
	Numbers []float64 `json:"numbers"`
}

type ParityRequest struct {
	Binary string `json:"binary"`
	Type   string `json:"type"`
}

// Response types

// Sorted is decoded as float64 so whole numbers and anything else the
// service echoes back survive the round trip.
type SortResult struct {
	Sorted []float64 `json:"sorted"`
	Steps  []string  `json:"steps"`
}

type ParityResult struct {
	Original    string   `json:"original"`
	ParityBit   string   `json:"parity_bit"`
	Transmitted string   `json:"transmitted"`
	Type        string   `json:"type"`
	Steps       []string `json:"steps"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
