package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreatePollTrimsTrailingNewline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/create" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte("0xabc123\n"))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	pid, err := c.CreatePoll(context.Background(), &CreatePollRequest{
		Question: "gm?",
		Options:  []string{"yes", "no"},
	})
	if err != nil {
		t.Fatalf("CreatePoll failed: %v", err)
	}
	if pid != "0xabc123" {
		t.Errorf("pid: got %q, want %q", pid, "0xabc123")
	}
}

func TestCreatePollOmitsAbsentDuration(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		_, _ = w.Write([]byte("pid"))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	if _, err := c.CreatePoll(context.Background(), &CreatePollRequest{
		Question: "gm?",
		Options:  []string{"yes", "no"},
	}); err != nil {
		t.Fatalf("CreatePoll failed: %v", err)
	}
	if _, ok := received["duration"]; ok {
		t.Errorf("duration key present in body, want it omitted: %v", received)
	}
}

func TestCreatePollSendsDurationWhenPresent(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		_, _ = w.Write([]byte("pid"))
	}))
	defer srv.Close()

	hours := 48
	c := New(srv.URL, "")
	if _, err := c.CreatePoll(context.Background(), &CreatePollRequest{
		Question: "gm?",
		Duration: &hours,
		Options:  []string{"yes", "no"},
	}); err != nil {
		t.Fatalf("CreatePoll failed: %v", err)
	}
	if got, ok := received["duration"].(float64); !ok || int(got) != 48 {
		t.Errorf("duration: got %v, want 48", received["duration"])
	}
}

func TestCreatePollSurfacesServerErrorVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "census service unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.CreatePoll(context.Background(), &CreatePollRequest{Question: "gm?"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "census service unavailable" {
		t.Errorf("error message: got %q, want the server body verbatim", err.Error())
	}
}

func TestRequestRetriesOnRateLimit(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"channels":[{"id":"gm","name":"GM","image":"img"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	channels, err := c.SearchChannels(context.Background(), "gm")
	if err != nil {
		t.Fatalf("SearchChannels failed: %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts: got %d, want 2", attempts)
	}
	if len(channels) != 1 || channels[0].ID != "gm" {
		t.Errorf("unexpected channels: %+v", channels)
	}
}

func TestSearchChannelsSendsAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token123" {
			t.Errorf("Authorization header: got %q", got)
		}
		_, _ = w.Write([]byte(`{"channels":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "token123")
	if _, err := c.SearchChannels(context.Background(), "gm"); err != nil {
		t.Fatalf("SearchChannels failed: %v", err)
	}
}
