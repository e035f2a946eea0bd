package invitation

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/partner-agent/invitecheck/pkg/domain/interfaces"
	"github.com/partner-agent/invitecheck/pkg/domain/types"
)

// DefaultHTTPTimeout bounds the single redirect probe
const DefaultHTTPTimeout = 10 * time.Second

// maxDrainBytes limits how much of a probe response body is read before closing
const maxDrainBytes = 4 << 10

// BlockSource tells where an invitation block was found
type BlockSource string

const (
	BlockSourceDirect   BlockSource = "direct"
	BlockSourceRedirect BlockSource = "redirect"
	BlockSourceNone     BlockSource = "none"
)

// String returns the string representation
func (s BlockSource) String() string {
	return string(s)
}

// Locator finds the base64 invitation block carried by an invitation URL,
// either in its query or behind one redirect hop.
type Locator struct {
	client interfaces.HTTPClient
}

// NewLocator creates a Locator. The client must not follow redirects; use
// NewHTTPClient unless a custom transport is needed.
func NewLocator(client interfaces.HTTPClient) *Locator {
	if client == nil {
		client = NewHTTPClient(DefaultHTTPTimeout)
	}
	return &Locator{
		client: client,
	}
}

// NewHTTPClient creates an HTTP client suitable for the redirect probe
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Locate tries the query parameters first and probes for a redirect only when
// none of them carries a block.
func (l *Locator) Locate(ctx context.Context, u *url.URL) (string, BlockSource) {
	if block := LocateDirect(u); block != "" {
		return block, BlockSourceDirect
	}
	if block := l.LocateViaRedirect(ctx, u); block != "" {
		return block, BlockSourceRedirect
	}
	return "", BlockSourceNone
}

// LocateDirect returns the first non-empty invitation query parameter in
// c_i, d_m, oob order, or an empty string.
func LocateDirect(u *url.URL) string {
	if u == nil {
		return ""
	}

	query := u.Query()
	for _, name := range types.InvitationQueryParams() {
		if block := query.Get(name.String()); block != "" {
			return block
		}
	}
	return ""
}

// LocateViaRedirect issues one GET to u and, if the response is a redirect,
// looks for an invitation block in the Location target. The target itself is
// never requested. Every failure is reported as "not found".
func (l *Locator) LocateViaRedirect(ctx context.Context, u *url.URL) string {
	logger := ctxlog.From(ctx)
	if u == nil {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		logger.Warn("Failed to build redirect probe request", "url", u.String(), "error", err)
		return ""
	}

	resp, err := l.client.Do(req)
	if err != nil {
		logger.Warn("Failed to probe invitation URL for redirect", "url", u.String(), "error", err)
		return ""
	}
	defer drainAndClose(resp.Body)

	if !isRedirect(resp.StatusCode) {
		logger.Debug("Invitation URL did not redirect", "url", u.String(), "status", resp.StatusCode)
		return ""
	}

	// Location resolves relative references against the request URL
	location, err := resp.Location()
	if err != nil {
		logger.Warn("Redirect without usable Location header", "url", u.String(), "status", resp.StatusCode, "error", err)
		return ""
	}
	if !isHTTPURL(location) {
		logger.Warn("Redirect Location is not an http(s) URL", "url", u.String(), "location", location.String())
		return ""
	}

	block := LocateDirect(location)
	logger.Debug("Followed invitation redirect",
		"url", u.String(),
		"location", location.String(),
		"found", block != "",
	)
	return block
}

func isRedirect(code int) bool {
	switch code {
	case http.StatusMultipleChoices,
		http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

func isHTTPURL(u *url.URL) bool {
	if u == nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func drainAndClose(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrainBytes))
	_ = body.Close()
}

// ParseURL percent-decodes rawURL and parses it as an absolute http(s) URL.
// The decode keeps '+' so that base64 blocks survive.
func ParseURL(rawURL string) (*url.URL, error) {
	decoded, err := url.PathUnescape(rawURL)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(decoded)
	if err != nil {
		return nil, err
	}
	if !isHTTPURL(u) {
		return nil, errNotHTTPURL
	}
	return u, nil
}
