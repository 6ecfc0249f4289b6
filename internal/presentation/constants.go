package presentation

const (
	PinsPath    = "/pins"
	APIPinsPath = "/api/pins"
	HealthPath  = "/health"

	MsgPinAdded         = "Pin added successfully"
	MsgInvalidPin       = "Invalid pin data: lat and lng are required"
	MsgInvalidBody      = "Invalid request body"
	MsgInternalError    = "Internal server error"
	MsgMethodNotAllowed = "Method not allowed"

	AllowedMethods = "GET, POST, OPTIONS"
	AllowedHeaders = "Content-Type"
)
