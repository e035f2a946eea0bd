package interfaces

import "net/http"

// HTTPClient performs outbound HTTP requests. *http.Client satisfies it.
// Implementations used for invitation lookup must not follow redirects.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
