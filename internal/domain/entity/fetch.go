package entity

import "net/http"

// FetchResult is the raw outcome of downloading the profile mapping.
// Transport failures are reported as errors; any response, successful or not,
// is reported here and inspected by the caller.
type FetchResult struct {
	Source     string
	StatusCode int
	Body       []byte
}

// OK reports whether the download succeeded.
func (r *FetchResult) OK() bool {
	return r != nil && r.StatusCode == http.StatusOK
}
