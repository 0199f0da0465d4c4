package dto

// PodResponse is returned by /healthz and / and identifies the replica that served the request.
type PodResponse struct {
	Service string  `json:"service"`
	Pod     string  `json:"pod"`
	TS      float64 `json:"ts"`
}

// HealthResponse is returned by /health.
type HealthResponse struct {
	Service string  `json:"service"`
	TS      float64 `json:"ts"`
	Version string  `json:"ver"`
}
