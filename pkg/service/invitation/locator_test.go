package invitation_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/partner-agent/invitecheck/pkg/service/invitation"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	gt.NoError(t, err).Required()
	return u
}

type clientFunc func(req *http.Request) (*http.Response, error)

func (f clientFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestLocateDirect(t *testing.T) {
	tests := []struct {
		name     string
		rawURL   string
		expected string
	}{
		{"c_i only", "https://example.org/accept?c_i=AAA", "AAA"},
		{"d_m only", "https://example.org/accept?d_m=BBB", "BBB"},
		{"oob only", "https://example.org/accept?oob=CCC", "CCC"},
		{"c_i wins over d_m and oob", "https://example.org/?oob=CCC&d_m=BBB&c_i=AAA", "AAA"},
		{"d_m wins over oob", "https://example.org/?oob=CCC&d_m=BBB", "BBB"},
		{"empty c_i falls through", "https://example.org/?c_i=&d_m=BBB", "BBB"},
		{"first value of repeated parameter", "https://example.org/?c_i=AAA&c_i=ZZZ", "AAA"},
		{"parameter names are case-sensitive", "https://example.org/?C_I=AAA", ""},
		{"no parameters", "https://example.org/accept", ""},
		{"unrelated parameters", "https://example.org/accept?foo=bar", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, invitation.LocateDirect(mustParse(t, tt.rawURL)), tt.expected)
		})
	}

	t.Run("nil URL", func(t *testing.T) {
		gt.Equal(t, invitation.LocateDirect(nil), "")
	})
}

func TestLocateViaRedirect(t *testing.T) {
	ctx := context.Background()

	t.Run("follows one redirect to a c_i target", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			http.Redirect(w, r, "https://wallet.example.org/accept?c_i=AAA", http.StatusFound)
		}))
		defer srv.Close()

		locator := invitation.NewLocator(invitation.NewHTTPClient(time.Second))
		block := locator.LocateViaRedirect(ctx, mustParse(t, srv.URL+"/s/xyz"))
		gt.Equal(t, block, "AAA")
		gt.Equal(t, hits.Load(), int32(1))
	})

	t.Run("all redirect status codes are honored", func(t *testing.T) {
		codes := []int{
			http.StatusMultipleChoices,
			http.StatusMovedPermanently,
			http.StatusFound,
			http.StatusSeeOther,
			http.StatusTemporaryRedirect,
			http.StatusPermanentRedirect,
		}
		for _, code := range codes {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Location", "https://wallet.example.org/?d_m=BBB")
				w.WriteHeader(code)
			}))

			locator := invitation.NewLocator(invitation.NewHTTPClient(time.Second))
			gt.Equal(t, locator.LocateViaRedirect(ctx, mustParse(t, srv.URL)), "BBB")
			srv.Close()
		}
	})

	t.Run("relative location is resolved against the request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Location", "/accept?oob=CCC")
			w.WriteHeader(http.StatusFound)
		}))
		defer srv.Close()

		locator := invitation.NewLocator(invitation.NewHTTPClient(time.Second))
		gt.Equal(t, locator.LocateViaRedirect(ctx, mustParse(t, srv.URL+"/s/1")), "CCC")
	})

	t.Run("second hop is never followed", func(t *testing.T) {
		var finalHits atomic.Int32
		final := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			finalHits.Add(1)
			http.Redirect(w, r, "https://wallet.example.org/?c_i=AAA", http.StatusFound)
		}))
		defer final.Close()

		first := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, final.URL+"/next", http.StatusFound)
		}))
		defer first.Close()

		locator := invitation.NewLocator(invitation.NewHTTPClient(time.Second))
		gt.Equal(t, locator.LocateViaRedirect(ctx, mustParse(t, first.URL)), "")
		gt.Equal(t, finalHits.Load(), int32(0))
	})

	t.Run("non-redirect response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("https://wallet.example.org/?c_i=AAA"))
		}))
		defer srv.Close()

		locator := invitation.NewLocator(invitation.NewHTTPClient(time.Second))
		gt.Equal(t, locator.LocateViaRedirect(ctx, mustParse(t, srv.URL)), "")
	})

	t.Run("redirect without location", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusFound)
		}))
		defer srv.Close()

		locator := invitation.NewLocator(invitation.NewHTTPClient(time.Second))
		gt.Equal(t, locator.LocateViaRedirect(ctx, mustParse(t, srv.URL)), "")
	})

	t.Run("redirect to non-http scheme", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Location", "didcomm://invite?c_i=AAA")
			w.WriteHeader(http.StatusFound)
		}))
		defer srv.Close()

		locator := invitation.NewLocator(invitation.NewHTTPClient(time.Second))
		gt.Equal(t, locator.LocateViaRedirect(ctx, mustParse(t, srv.URL)), "")
	})

	t.Run("redirect target without invitation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "https://wallet.example.org/home", http.StatusFound)
		}))
		defer srv.Close()

		locator := invitation.NewLocator(invitation.NewHTTPClient(time.Second))
		gt.Equal(t, locator.LocateViaRedirect(ctx, mustParse(t, srv.URL)), "")
	})

	t.Run("transport error is swallowed", func(t *testing.T) {
		client := clientFunc(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})

		locator := invitation.NewLocator(client)
		gt.Equal(t, locator.LocateViaRedirect(ctx, mustParse(t, "https://short.example.org/x")), "")
	})

	t.Run("timeout is swallowed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()

		locator := invitation.NewLocator(invitation.NewHTTPClient(50 * time.Millisecond))
		gt.Equal(t, locator.LocateViaRedirect(ctx, mustParse(t, srv.URL)), "")
	})

	t.Run("stubbed client without request on response", func(t *testing.T) {
		client := clientFunc(func(req *http.Request) (*http.Response, error) {
			gt.Equal(t, req.Method, http.MethodGet)
			return &http.Response{
				StatusCode: http.StatusFound,
				Header:     http.Header{"Location": []string{"https://wallet.example.org/?c_i=AAA"}},
				Body:       http.NoBody,
			}, nil
		})

		locator := invitation.NewLocator(client)
		gt.Equal(t, locator.LocateViaRedirect(ctx, mustParse(t, "https://short.example.org/x")), "AAA")
	})
}

func TestLocate(t *testing.T) {
	ctx := context.Background()

	t.Run("direct match makes no request", func(t *testing.T) {
		var calls atomic.Int32
		client := clientFunc(func(req *http.Request) (*http.Response, error) {
			calls.Add(1)
			return nil, errors.New("unexpected call")
		})

		locator := invitation.NewLocator(client)
		block, source := locator.Locate(ctx, mustParse(t, "https://example.org/?c_i=AAA"))
		gt.Equal(t, block, "AAA")
		gt.Equal(t, source, invitation.BlockSourceDirect)
		gt.Equal(t, calls.Load(), int32(0))
	})

	t.Run("falls back to redirect", func(t *testing.T) {
		var calls atomic.Int32
		client := clientFunc(func(req *http.Request) (*http.Response, error) {
			calls.Add(1)
			return &http.Response{
				StatusCode: http.StatusMovedPermanently,
				Header:     http.Header{"Location": []string{"https://wallet.example.org/?oob=CCC"}},
				Body:       http.NoBody,
				Request:    req,
			}, nil
		})

		locator := invitation.NewLocator(client)
		block, source := locator.Locate(ctx, mustParse(t, "https://short.example.org/x"))
		gt.Equal(t, block, "CCC")
		gt.Equal(t, source, invitation.BlockSourceRedirect)
		gt.Equal(t, calls.Load(), int32(1))
	})

	t.Run("nothing found", func(t *testing.T) {
		client := clientFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: http.StatusNotFound, Body: http.NoBody, Request: req}, nil
		})

		locator := invitation.NewLocator(client)
		block, source := locator.Locate(ctx, mustParse(t, "https://short.example.org/x"))
		gt.Equal(t, block, "")
		gt.Equal(t, source, invitation.BlockSourceNone)
	})
}

func TestParseURL(t *testing.T) {
	t.Run("percent-encoded URL is decoded", func(t *testing.T) {
		u, err := invitation.ParseURL("https%3A%2F%2Fexample.org%2Faccept%3Fc_i%3DAAA")
		gt.NoError(t, err).Required()
		gt.Equal(t, u.Host, "example.org")
		gt.Equal(t, invitation.LocateDirect(u), "AAA")
	})

	t.Run("plus survives decoding", func(t *testing.T) {
		u, err := invitation.ParseURL("https://example.org/?c_i=ab%2Bcd")
		gt.NoError(t, err).Required()
		gt.Equal(t, u.RawQuery, "c_i=ab+cd")
	})

	t.Run("invalid escape", func(t *testing.T) {
		_, err := invitation.ParseURL("https://example.org/?c_i=%zz")
		gt.Error(t, err)
	})

	t.Run("not http", func(t *testing.T) {
		_, err := invitation.ParseURL("didcomm://invite?c_i=AAA")
		gt.Error(t, err)
	})

	t.Run("relative reference", func(t *testing.T) {
		_, err := invitation.ParseURL("/accept?c_i=AAA")
		gt.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := invitation.ParseURL("not a url")
		gt.Error(t, err)
	})
}
