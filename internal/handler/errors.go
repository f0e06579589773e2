package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Inventory operation error messages
	ErrMsgUnknownCategory  = "Unknown item category"
	ErrMsgSimulationFailed = "Failed to advance inventory"
	ErrMsgGenericServerErr = "Something went wrong"
)
