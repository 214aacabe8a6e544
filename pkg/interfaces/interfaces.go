package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kingsmao/btce-connector/pkg/schema"
)

// PublicClient fetches unauthenticated market data.
// The raw getters never fail: a nil Response means the call did not yield a JSON object.
type PublicClient interface {
	GetMarketInfo(ctx context.Context) schema.Response
	GetPairFee(ctx context.Context, pair string) schema.Response
	GetTicker(ctx context.Context, pair string) schema.Response
	GetTrades(ctx context.Context, pair string) schema.Response
	GetDepth(ctx context.Context, pair string) schema.Response

	// Typed variants, these do report errors.
	FetchExchangeInfo(ctx context.Context) (schema.ExchangeInfo, error)
	FetchTicker(ctx context.Context, pair string) (schema.Ticker, error)
	FetchDepth(ctx context.Context, pair string, limit int) (schema.Depth, error)
	FetchTrades(ctx context.Context, pair string, limit int) ([]schema.Trade, error)
}

// TradeClient drives the signed trade API.
type TradeClient interface {
	// APIQuery signs and posts one trade API method call.
	APIQuery(ctx context.Context, method string, params *schema.Params) (schema.Response, error)

	MakeOrder(ctx context.Context, amount decimal.Decimal, pair string, direction schema.OrderSide, price decimal.Decimal) (schema.Response, error)
	CancelOrder(ctx context.Context, orderID int64) (schema.Response, error)
	CheckPastOrder(ctx context.Context, orderID int64) (schema.Response, error)
	ActiveOrders(ctx context.Context, pair string) (schema.Response, error)
	OrderInfo(ctx context.Context, orderID int64) (schema.Response, error)

	// Nonce returns the last nonce handed out.
	Nonce() int64
}

// Exchange bundles market type and available clients.
type Exchange interface {
	Name() schema.ExchangeName
	Market() schema.MarketType
	Public() PublicClient
	Trade() TradeClient
}
