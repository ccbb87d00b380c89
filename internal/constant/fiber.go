package constant

const (
	ContextKeyRequestID = "requestid"

	// RequestIDHeader carries the per-request id on responses so a failed
	// scrape can be correlated with its log entries.
	RequestIDHeader = "X-Seichi-Request-ID"
)
