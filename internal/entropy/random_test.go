package entropy

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewRandFixedSeed(t *testing.T) {
	a, seed := NewRand(42, nil)
	if seed != 42 {
		t.Fatalf("seed = %d, want 42", seed)
	}
	b, _ := NewRand(42, nil)
	for i := 0; i < 10; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestNewRandDrawsSeed(t *testing.T) {
	_, seed := NewRand(0, nil)
	if seed <= 0 {
		t.Errorf("drawn seed = %d, want positive", seed)
	}
}

func TestNilClient(t *testing.T) {
	if NewClient("") != nil {
		t.Error("NewClient with empty key should return nil")
	}
	var c *Client
	if c.Enabled() {
		t.Error("nil client reports enabled")
	}
}

func TestClientSeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","result":{"random":{"data":[1,5]}},"id":1}`))
	}))
	defer srv.Close()

	c := NewClient("key")
	c.endpoint = srv.URL
	if got, want := c.Seed(), int64(1<<31|5); got != want {
		t.Errorf("Seed = %d, want %d", got, want)
	}
}

func TestClientSeedFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","error":{"message":"quota"},"id":1}`))
	}))
	defer srv.Close()

	c := NewClient("key")
	c.endpoint = srv.URL
	if seed := c.Seed(); seed <= 0 {
		t.Errorf("fallback seed = %d, want positive", seed)
	}
}
