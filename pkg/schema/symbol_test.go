package schema

import (
	"testing"
)

func TestNewSymbol(t *testing.T) {
	symbol := NewSymbol("btc_usd", "btc", "usd", BTCE, SPOT)

	if symbol.Symbol != "btc_usd" {
		t.Errorf("Expected Symbol to be 'btc_usd', got '%s'", symbol.Symbol)
	}
	if symbol.Base != "BTC" {
		t.Errorf("Expected Base to be 'BTC', got '%s'", symbol.Base)
	}
	if symbol.Quote != "USD" {
		t.Errorf("Expected Quote to be 'USD', got '%s'", symbol.Quote)
	}
	if symbol.ExchangeName != BTCE {
		t.Errorf("Expected ExchangeName to be BTCE, got %s", symbol.ExchangeName)
	}
	if symbol.MarketType != SPOT {
		t.Errorf("Expected MarketType to be SPOT, got %s", symbol.MarketType)
	}
	if symbol.String() != "BTC/USD" {
		t.Errorf("Expected String to be 'BTC/USD', got '%s'", symbol.String())
	}
	if symbol.Pair() != "btc_usd" {
		t.Errorf("Expected Pair to be 'btc_usd', got '%s'", symbol.Pair())
	}
}

func TestParser_ParseSymbol(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantPair  string
		wantBase  string
		wantQuote string
		wantErr   bool
	}{
		{name: "Spot symbol", input: "BTC/USD", wantPair: "btc_usd", wantBase: "BTC", wantQuote: "USD"},
		{name: "Lower case with spaces", input: " ltc / btc ", wantPair: "ltc_btc", wantBase: "LTC", wantQuote: "BTC"},
		{name: "Missing slash", input: "BTCUSD", wantErr: true},
		{name: "Empty quote", input: "BTC/", wantErr: true},
		{name: "Too many parts", input: "BTC/USD/EUR", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			symbol, err := ParseSymbol(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSymbol(%q) expected error, got %+v", tt.input, symbol)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSymbol(%q) unexpected error: %v", tt.input, err)
			}
			if symbol.Symbol != tt.wantPair {
				t.Errorf("Expected pair %s, got %s", tt.wantPair, symbol.Symbol)
			}
			if symbol.Base != tt.wantBase || symbol.Quote != tt.wantQuote {
				t.Errorf("Expected %s/%s, got %s/%s", tt.wantBase, tt.wantQuote, symbol.Base, symbol.Quote)
			}
		})
	}
}

func TestParser_ParsePair(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "btc_usd", want: "BTC/USD"},
		{input: "NMC_BTC", want: "NMC/BTC"},
		{input: "", wantErr: true},
		{input: "btcusd", wantErr: true},
		{input: "btc_", wantErr: true},
	}

	for _, tt := range tests {
		symbol, err := ParsePair(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePair(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePair(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if symbol.String() != tt.want {
			t.Errorf("ParsePair(%q) = %s, want %s", tt.input, symbol.String(), tt.want)
		}
	}
}

func TestNormalizePair(t *testing.T) {
	for input, want := range map[string]string{
		"BTC/USD": "btc_usd",
		"btc_usd": "btc_usd",
		"LTC_EUR": "ltc_eur",
	} {
		got, err := NormalizePair(input)
		if err != nil {
			t.Errorf("NormalizePair(%q) unexpected error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("NormalizePair(%q) = %s, want %s", input, got, want)
		}
	}

	if _, err := NormalizePair("nonsense"); err == nil {
		t.Errorf("NormalizePair should reject a pair without separator")
	}
}

func TestJoinPairs(t *testing.T) {
	if got := JoinPairs("btc_usd", "ltc_btc"); got != "btc_usd-ltc_btc" {
		t.Errorf("Expected 'btc_usd-ltc_btc', got '%s'", got)
	}
}

func TestOrderSide_Valid(t *testing.T) {
	if !OrderSideBuy.Valid() || !OrderSideSell.Valid() {
		t.Errorf("buy and sell must be valid")
	}
	for _, s := range []OrderSide{"", "BUY", "short", "hold"} {
		if s.Valid() {
			t.Errorf("side %q should be invalid", s)
		}
	}
}
