package external

// GeocodingResponse is the body of the Open-Meteo geocoding search
type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

// GeocodingResult is a single place found by name
type GeocodingResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}

// ArchiveResponse is the body of the Open-Meteo historical archive.
// Daily is nil when the upstream omitted the block.
type ArchiveResponse struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Timezone  string        `json:"timezone"`
	Daily     *ArchiveDaily `json:"daily"`
}

// ArchiveDaily holds parallel daily series; any value may be null
type ArchiveDaily struct {
	Time             []string   `json:"time"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
	Temperature2mMin []*float64 `json:"temperature_2m_min"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
}

// APIErrorResponse is the Open-Meteo failure body
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
