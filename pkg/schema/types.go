package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeName defines supported exchange.
type ExchangeName string

const (
	BTCE ExchangeName = "btce"
)

// MarketType categorizes market segments.
type MarketType string

const (
	SPOT MarketType = "spot"
)

// PriceLevel represents a single order book level.
type PriceLevel struct {
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Depth represents order book snapshot.
type Depth struct {
	Exchange  ExchangeName `json:"exchange"`
	Market    MarketType   `json:"market"`
	Symbol    string       `json:"symbol"`
	Bids      []PriceLevel `json:"bids"` // best bid first
	Asks      []PriceLevel `json:"asks"` // best ask first
	UpdatedAt time.Time    `json:"updatedAt"`
}

// Ticker represents the latest 24h statistics of a pair.
type Ticker struct {
	Exchange  ExchangeName    `json:"exchange"`
	Market    MarketType      `json:"market"`
	Symbol    string          `json:"symbol"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Avg       decimal.Decimal `json:"avg"`
	Last      decimal.Decimal `json:"last"`
	Buy       decimal.Decimal `json:"buy"`
	Sell      decimal.Decimal `json:"sell"`
	Volume    decimal.Decimal `json:"volume"`
	QuoteVol  decimal.Decimal `json:"quoteVolume"`
	Timestamp time.Time       `json:"timestamp"`
}

// OrderSide defines the side of an order.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

// Valid reports whether the side is one the trade API accepts.
func (s OrderSide) Valid() bool {
	return s == OrderSideBuy || s == OrderSideSell
}

// Trade represents a public trade print.
type Trade struct {
	Exchange  ExchangeName    `json:"exchange"`
	Market    MarketType      `json:"market"`
	Symbol    string          `json:"symbol"`
	TradeID   string          `json:"tradeId"`
	Side      OrderSide       `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Timestamp time.Time       `json:"timestamp"`
}

// PairInfo holds the trading rules of one pair as reported by /info.
type PairInfo struct {
	Symbol        string          `json:"symbol"`
	DecimalPlaces int             `json:"decimalPlaces"`
	MinPrice      decimal.Decimal `json:"minPrice"`
	MaxPrice      decimal.Decimal `json:"maxPrice"`
	MinAmount     decimal.Decimal `json:"minAmount"`
	Fee           decimal.Decimal `json:"fee"` // percent
	Hidden        bool            `json:"hidden"`
}

// ExchangeInfo is the normalized /info payload.
type ExchangeInfo struct {
	Exchange   ExchangeName        `json:"exchange"`
	Market     MarketType          `json:"market"`
	Pairs      map[string]PairInfo `json:"pairs"`
	ServerTime time.Time           `json:"serverTime"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}
