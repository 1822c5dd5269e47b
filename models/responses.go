package models

// ProcessUnitsResult is the outcome of a successful invocation before it is
// shaped into a transport response.
type ProcessUnitsResult struct {
	TotalUnits     int  `json:"totalUnits"`
	UnitsToProcess int  `json:"unitsToProcess"`
	DryRun         bool `json:"dryRun"`
}

// ProcessUnitsResponse is the success body returned to the caller.
type ProcessUnitsResponse struct {
	Message        string `json:"message"`
	TotalUnits     int    `json:"totalUnits"`
	UnitsToProcess int    `json:"unitsToProcess"`
	DryRun         bool   `json:"dryRun"`
}

// NewProcessUnitsResponse decorates result with message.
func NewProcessUnitsResponse(message string, result ProcessUnitsResult) ProcessUnitsResponse {
	return ProcessUnitsResponse{
		Message:        message,
		TotalUnits:     result.TotalUnits,
		UnitsToProcess: result.UnitsToProcess,
		DryRun:         result.DryRun,
	}
}

// ErrorResponse is the failure body returned to the caller.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
}
