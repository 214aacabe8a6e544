package sdk

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kingsmao/btce-connector/pkg/config"
	"github.com/kingsmao/btce-connector/pkg/schema"
)

// fakeExchange serves both the public API and /tapi/ from one httptest server.
type fakeExchange struct {
	mu        sync.Mutex
	tapiCalls []url.Values
	replies   []string
}

func (f *fakeExchange) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/3/ticker/btc_usd", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"btc_usd":{"last":101.5,"updated":1370816308}}`)
	})
	mux.HandleFunc("/api/3/depth/btc_usd", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "not json")
	})
	mux.HandleFunc("/tapi/", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(raw))

		f.mu.Lock()
		defer f.mu.Unlock()
		f.tapiCalls = append(f.tapiCalls, form)
		reply := `{"success":1,"return":{}}`
		if len(f.replies) > 0 {
			reply, f.replies = f.replies[0], f.replies[1:]
		}
		_, _ = io.WriteString(w, reply)
	})
	return mux
}

func newTestClient(t *testing.T, replies ...string) (*Client, *fakeExchange) {
	t.Helper()
	fake := &fakeExchange{replies: replies}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.APIKey = "key"
	cfg.APISecret = "secret"
	cfg.Nonce = 1
	cfg.PublicURL = srv.URL + "/api/3"
	cfg.TradeURL = srv.URL + "/tapi/"
	c, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c, fake
}

func TestNewClient_MissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		secret string
	}{
		{"no key", "", "secret"},
		{"no secret", "key", ""},
		{"blank", " ", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.APIKey = tt.key
			cfg.APISecret = tt.secret
			_, err := NewClient(cfg)
			var ce *schema.ConfigurationError
			if !errors.As(err, &ce) {
				t.Errorf("Expected ConfigurationError, got %v", err)
			}
		})
	}
}

func TestClient_PublicCalls(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	if c.Name() != schema.BTCE {
		t.Errorf("Expected exchange %s, got %s", schema.BTCE, c.Name())
	}

	ticker := c.GetTicker(ctx, "btc_usd")
	if ticker == nil {
		t.Fatalf("Expected ticker payload")
	}
	if _, ok := ticker["btc_usd"]; !ok {
		t.Errorf("Ticker payload missing pair: %v", ticker)
	}

	if depth := c.GetDepth(ctx, "btc_usd"); depth != nil {
		t.Errorf("Expected nil depth for invalid JSON, got %v", depth)
	}
	if trades := c.GetTrades(ctx, "btc_usd"); trades != nil {
		t.Errorf("Expected nil trades for 404, got %v", trades)
	}

	typed, err := c.FetchTicker(ctx, "BTC/USD")
	if err != nil {
		t.Fatalf("FetchTicker: %v", err)
	}
	if typed.Last.String() != "101.5" {
		t.Errorf("Expected last 101.5, got %s", typed.Last)
	}

	if _, err := c.FetchDepth(ctx, "BTCUSD", 10); err == nil {
		t.Errorf("Expected error for malformed symbol")
	}
}

func TestClient_TradeFlow(t *testing.T) {
	c, fake := newTestClient(t,
		`{"success":1,"return":{"received":0,"remains":1,"order_id":42}}`,
		`{"success":0,"error":"invalid nonce parameter; on key:5000, you sent:2"}`,
		`{"success":1,"return":{"order_id":42}}`,
		`{"success":"0","error":"no orders"}`,
	)
	ctx := context.Background()

	if _, err := c.MakeOrder(ctx, decimal.RequireFromString("1"), "btc_usd", schema.OrderSideSell, decimal.RequireFromString("120")); err != nil {
		t.Fatalf("MakeOrder: %v", err)
	}
	if _, err := c.CancelOrder(ctx, 42); err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}
	if c.Nonce() != 5001 {
		t.Errorf("Expected nonce 5001 after recovery, got %d", c.Nonce())
	}

	_, err := c.CheckPastOrder(ctx, 42)
	if !errors.Is(err, schema.ErrAPI) || !strings.Contains(err.Error(), "no orders") {
		t.Errorf("Expected ApiError with exchange message, got %v", err)
	}

	if _, err := c.MakeOrder(ctx, decimal.NewFromInt(1), "btc_usd", "long", decimal.NewFromInt(1)); !errors.Is(err, schema.ErrInvalidParameter) {
		t.Errorf("Expected InvalidParameterError, got %v", err)
	}

	want := []string{"Trade", "CancelOrder", "CancelOrder", "OrderList"}
	if len(fake.tapiCalls) != len(want) {
		t.Fatalf("Expected %d trade calls, got %d", len(want), len(fake.tapiCalls))
	}
	for i, m := range want {
		if got := fake.tapiCalls[i].Get("method"); got != m {
			t.Errorf("call %d: expected method %s, got %s", i, m, got)
		}
	}
	if got := fake.tapiCalls[2].Get("nonce"); got != "5001" {
		t.Errorf("Expected retried nonce 5001, got %s", got)
	}
}
