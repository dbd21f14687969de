package dto

// ImportedTrack is one entry in the bundled track dataset.
type ImportedTrack struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	State       string   `json:"state"`
	Types       []string `json:"types"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Description string   `json:"description"`
}

type SyncSummary struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

type SyncTracksResponse struct {
	Status  string      `json:"status"`
	Summary SyncSummary `json:"summary"`
	Errors  []string    `json:"errors,omitempty"`
}
