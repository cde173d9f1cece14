package api

import "time"

// Request defaults used when the configuration leaves them unset
const (
	DefaultTimeout       = 30 * time.Second
	DefaultRetryWait     = 100 * time.Millisecond
	DefaultRetryMaxWait  = 2 * time.Second
	contentTypeJSON      = "application/json"
	operationListMembers = "list members"
)
