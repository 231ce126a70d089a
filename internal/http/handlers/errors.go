package handlers

// Messages rendered by the HTTP layer itself, as opposed to the
// domain messages produced by services.
const (
	MsgNotFound       = "Not Found"
	MsgInvalidBody    = "invalid JSON body"
	MsgServiceUnready = "Service Unavailable"
)
