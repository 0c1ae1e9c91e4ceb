package moto

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBind {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBind)
	}

	u, err = parseBaseURL("https://bike.local:9000/ui?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
}

func TestClient_FetchesEndpoints(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotRequestID, gotMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v1/api/hal/status":
			_, _ = w.Write([]byte(`{"status":"online","temp":42,"relay":"offline"}`))
		case "/v1/api/motorcycle/gps":
			_, _ = w.Write([]byte(`{"lat":"1.111","lng":2.222}`))
		case "/v1/api/motorcycle/unlock":
			gotMethod = r.Method
			_, _ = w.Write([]byte(`{"message":"Unlocked"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	status, err := c.FetchStatus(ctx, HAL)
	if err != nil {
		t.Fatalf("FetchStatus returned error: %v", err)
	}
	want := StatusMap{{"status", "online"}, {"temp", "42"}, {"relay", "offline"}}
	if len(status) != len(want) {
		t.Fatalf("FetchStatus = %#v, want %#v", status, want)
	}
	for i := range want {
		if status[i] != want[i] {
			t.Fatalf("entry %d = %#v, want %#v", i, status[i], want[i])
		}
	}

	fix, err := c.FetchGPS(ctx)
	if err != nil {
		t.Fatalf("FetchGPS returned error: %v", err)
	}
	if fix.Lat != "1.111" || fix.Lng != "2.222" {
		t.Fatalf("FetchGPS = %#v, want 1.111/2.222", fix)
	}

	resp, err := c.Trigger(ctx, Unlock)
	if err != nil {
		t.Fatalf("Trigger returned error: %v", err)
	}
	if resp.Message != "Unlocked" {
		t.Fatalf("Trigger message = %q, want Unlocked", resp.Message)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("Trigger method = %q, want POST", gotMethod)
	}

	if !strings.HasPrefix(gotUserAgent, "motodash/") {
		t.Fatalf("User-Agent = %q, want motodash/*", gotUserAgent)
	}
	if len(gotRequestID) != 36 {
		t.Fatalf("X-Request-ID = %q, want a uuid", gotRequestID)
	}
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/api/hal/status":
			_, _ = w.Write([]byte("{not-json"))
		case "/v1/api/network/status":
			http.Error(w, "nope", http.StatusInternalServerError)
		case "/v1/api/motorcycle/status":
			_, _ = w.Write([]byte(`{"engine":{"rpm":0}}`))
		case "/v1/api/motorcycle/reboot":
			http.Error(w, "busy", http.StatusServiceUnavailable)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	_, err = c.FetchStatus(ctx, HAL)
	if Kind(err) != KindParse || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("malformed body error = %v (kind %v), want parse", err, Kind(err))
	}

	_, err = c.FetchStatus(ctx, Network)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusInternalServerError {
		t.Fatalf("500 error = %v, want *StatusError 500", err)
	}
	if !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("500 error text = %q", err.Error())
	}

	_, err = c.FetchStatus(ctx, Motorcycle)
	if Kind(err) != KindParse {
		t.Fatalf("nested body error = %v (kind %v), want parse", err, Kind(err))
	}

	_, err = c.Trigger(ctx, Reboot)
	if Kind(err) != KindResponse {
		t.Fatalf("503 error = %v (kind %v), want response", err, Kind(err))
	}

	_, err = c.FetchGPS(ctx)
	if Kind(err) != KindResponse {
		t.Fatalf("404 error = %v (kind %v), want response", err, Kind(err))
	}
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	c, err := NewClient(addr)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchStatus(context.Background(), HAL)
	if !errors.Is(err, ErrTransport) || Kind(err) != KindTransport {
		t.Fatalf("closed server error = %v, want transport failure", err)
	}
}

func TestKind(t *testing.T) {
	if Kind(nil) != KindNone {
		t.Fatalf("Kind(nil) = %v, want none", Kind(nil))
	}
	if Kind(errors.New("x")) != KindOther {
		t.Fatalf("Kind(plain) = %v, want other", Kind(errors.New("x")))
	}
	if KindParse.String() != "parse" {
		t.Fatalf("KindParse.String() = %q", KindParse.String())
	}
}
