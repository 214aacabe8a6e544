package sdk

import (
	"context"

	"github.com/shopspring/decimal"

	btcespot "github.com/kingsmao/btce-connector/internal/exchange/btce/spot"
	"github.com/kingsmao/btce-connector/pkg/config"
	"github.com/kingsmao/btce-connector/pkg/interfaces"
	"github.com/kingsmao/btce-connector/pkg/logger"
	"github.com/kingsmao/btce-connector/pkg/schema"
)

// Client is the high-level BTC-e client: public market data plus the signed trade API.
// One Client owns one nonce sequence; share it rather than building several per key.
type Client struct {
	exchange interfaces.Exchange
	public   interfaces.PublicClient
	trade    interfaces.TradeClient
}

// NewClient creates a client. API key and secret are required; cfg.Nonce seeds the
// request counter, otherwise the current unix time is used.
func NewClient(cfg config.Config) (*Client, error) {
	ex, err := btcespot.NewSpotExchange(cfg)
	if err != nil {
		return nil, err
	}
	return newClient(ex), nil
}

// NewClientFromFile loads config from path (may be empty), .env and the environment.
func NewClientFromFile(path string) (*Client, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := logger.InitWithConfig(cfg.Log); err != nil {
		logger.Warn("初始化日志文件失败: %v", err)
	}
	return NewClient(*cfg)
}

func newClient(ex interfaces.Exchange) *Client {
	return &Client{
		exchange: ex,
		public:   ex.Public(),
		trade:    ex.Trade(),
	}
}

// Name returns the exchange the client talks to.
func (c *Client) Name() schema.ExchangeName { return c.exchange.Name() }

// Nonce returns the last nonce handed out.
func (c *Client) Nonce() int64 { return c.trade.Nonce() }

// GetMarketInfo returns /info, or nil when the call failed.
func (c *Client) GetMarketInfo(ctx context.Context) schema.Response {
	return c.public.GetMarketInfo(ctx)
}

// GetPairFee returns /fee/{pair}, or nil when the call failed.
func (c *Client) GetPairFee(ctx context.Context, pair string) schema.Response {
	return c.public.GetPairFee(ctx, pair)
}

// GetTicker returns /ticker/{pair}, or nil when the call failed.
func (c *Client) GetTicker(ctx context.Context, pair string) schema.Response {
	return c.public.GetTicker(ctx, pair)
}

// GetTrades returns /trades/{pair}, or nil when the call failed.
func (c *Client) GetTrades(ctx context.Context, pair string) schema.Response {
	return c.public.GetTrades(ctx, pair)
}

// GetDepth returns /depth/{pair}, or nil when the call failed.
func (c *Client) GetDepth(ctx context.Context, pair string) schema.Response {
	return c.public.GetDepth(ctx, pair)
}

// FetchExchangeInfo returns the typed pair rules.
func (c *Client) FetchExchangeInfo(ctx context.Context) (schema.ExchangeInfo, error) {
	return c.public.FetchExchangeInfo(ctx)
}

// FetchTicker accepts BTC/USD or btc_usd.
func (c *Client) FetchTicker(ctx context.Context, symbol string) (schema.Ticker, error) {
	pair, err := schema.NormalizePair(symbol)
	if err != nil {
		return schema.Ticker{}, err
	}
	return c.public.FetchTicker(ctx, pair)
}

// FetchDepth accepts BTC/USD or btc_usd; limit <= 0 uses the exchange default.
func (c *Client) FetchDepth(ctx context.Context, symbol string, limit int) (schema.Depth, error) {
	pair, err := schema.NormalizePair(symbol)
	if err != nil {
		return schema.Depth{}, err
	}
	return c.public.FetchDepth(ctx, pair, limit)
}

// FetchTrades accepts BTC/USD or btc_usd; limit <= 0 uses the exchange default.
func (c *Client) FetchTrades(ctx context.Context, symbol string, limit int) ([]schema.Trade, error) {
	pair, err := schema.NormalizePair(symbol)
	if err != nil {
		return nil, err
	}
	return c.public.FetchTrades(ctx, pair, limit)
}

// APIQuery calls an arbitrary trade API method.
func (c *Client) APIQuery(ctx context.Context, method string, params *schema.Params) (schema.Response, error) {
	return c.trade.APIQuery(ctx, method, params)
}

// MakeOrder places a limit order of amount at price on pair.
func (c *Client) MakeOrder(ctx context.Context, amount decimal.Decimal, pair string, direction schema.OrderSide, price decimal.Decimal) (schema.Response, error) {
	return c.trade.MakeOrder(ctx, amount, pair, direction, price)
}

// CancelOrder cancels an open order.
func (c *Client) CancelOrder(ctx context.Context, orderID int64) (schema.Response, error) {
	return c.trade.CancelOrder(ctx, orderID)
}

// CheckPastOrder returns a completed order, failing when the exchange reports success=0.
func (c *Client) CheckPastOrder(ctx context.Context, orderID int64) (schema.Response, error) {
	return c.trade.CheckPastOrder(ctx, orderID)
}

// ActiveOrders lists open orders; an empty pair means all pairs.
func (c *Client) ActiveOrders(ctx context.Context, pair string) (schema.Response, error) {
	return c.trade.ActiveOrders(ctx, pair)
}

// OrderInfo returns one order by id.
func (c *Client) OrderInfo(ctx context.Context, orderID int64) (schema.Response, error) {
	return c.trade.OrderInfo(ctx, orderID)
}
