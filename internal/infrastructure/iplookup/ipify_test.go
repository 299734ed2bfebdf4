package iplookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIpifyClient_GetClientIP(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("format") != "json" {
				t.Fatalf("expected format=json, got %s", r.URL.RawQuery)
			}
			_, _ = w.Write([]byte(`{"ip":"181.50.1.2"}`))
		}))
		defer srv.Close()

		if got := NewIpifyClient(srv.URL + "?format=json").GetClientIP(context.Background()); got != "181.50.1.2" {
			t.Fatalf("expected 181.50.1.2, got %s", got)
		}
	})

	t.Run("server error falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		if got := NewIpifyClient(srv.URL).GetClientIP(context.Background()); got != FallbackIP {
			t.Fatalf("expected fallback, got %s", got)
		}
	})

	t.Run("malformed body falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer srv.Close()

		if got := NewIpifyClient(srv.URL).GetClientIP(context.Background()); got != FallbackIP {
			t.Fatalf("expected fallback, got %s", got)
		}
	})

	t.Run("unreachable falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()

		if got := NewIpifyClient(url).GetClientIP(context.Background()); got != FallbackIP {
			t.Fatalf("expected fallback, got %s", got)
		}
	})
}
