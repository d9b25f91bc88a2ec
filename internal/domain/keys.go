package domain

// KeyRequestID is the gin context key holding the per-request id
const KeyRequestID = "RequestID"
