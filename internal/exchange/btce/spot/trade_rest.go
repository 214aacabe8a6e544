package spot

import (
	"context"
	"crypto/tls"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/kingsmao/btce-connector/pkg/config"
	"github.com/kingsmao/btce-connector/pkg/logger"
	"github.com/kingsmao/btce-connector/pkg/schema"
)

// trade API method names
const (
	methodTrade        = "Trade"
	methodCancelOrder  = "CancelOrder"
	methodOrderList    = "OrderList"
	methodActiveOrders = "ActiveOrders"
	methodOrderInfo    = "OrderInfo"
)

// SpotTradeREST implements TradeClient for the signed BTC-e trade API.
// Calls are serialized: the exchange rejects a nonce that is not greater than the last
// one it accepted, so send order has to follow nonce order.
type SpotTradeREST struct {
	http     *resty.Client
	tradeURL string
	key      string
	secret   string

	mu    sync.Mutex
	nonce int64
}

// NewSpotTradeREST validates credentials and seeds the nonce.
func NewSpotTradeREST(cfg config.Config) (*SpotTradeREST, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()

	c := resty.New().SetTimeout(cfg.TradeTimeout)
	if cfg.UserAgent != "" {
		c.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.InsecureSkipVerify {
		logger.Warn("BTC-e trade API: TLS certificate verification disabled by config")
		c.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	nonce := cfg.Nonce
	if nonce == 0 {
		nonce = time.Now().Unix()
	}

	return &SpotTradeREST{
		http:     c,
		tradeURL: cfg.TradeURL,
		key:      cfg.APIKey,
		secret:   cfg.APISecret,
		nonce:    nonce,
	}, nil
}

// Nonce returns the last nonce handed out (or the seed before the first call).
func (t *SpotTradeREST) Nonce() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.nonce
}

// APIQuery signs params plus method and nonce, posts them and returns the decoded
// reply. A stale nonce reported by the exchange is corrected from the error text and
// the call is resent once.
func (t *SpotTradeREST) APIQuery(ctx context.Context, method string, params *schema.Params) (schema.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// may have been cancelled while queued behind other calls
	if err := ctx.Err(); err != nil {
		return nil, &schema.TransportError{Method: method, Err: errors.WithStack(err)}
	}

	retried := false
	for {
		result, err := t.send(ctx, method, params)
		if err != nil {
			return nil, err
		}

		msg, failed := result.ErrorMessage()
		if !failed {
			return result, nil
		}

		if retried || !strings.Contains(msg, "nonce") {
			return nil, &schema.APIError{Method: method, Message: msg, Response: result}
		}

		serverNonce, ok := parseNonce(msg)
		if !ok {
			return nil, &schema.APIError{
				Method:   method,
				Message:  "nonce error message unparseable: " + msg,
				Response: result,
			}
		}
		logger.Warn("Nonce we sent (%d) is invalid, retrying %s with server returned nonce: (%d)", t.nonce, method, serverNonce)
		t.nonce = serverNonce
		retried = true
	}
}

// send performs one signed round trip. Caller holds t.mu.
func (t *SpotTradeREST) send(ctx context.Context, method string, params *schema.Params) (schema.Response, error) {
	t.nonce++

	req := params.Clone()
	req.Set("method", method)
	req.Set("nonce", strconv.FormatInt(t.nonce, 10))
	body := req.Encode()

	r, err := t.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader("Key", t.key).
		SetHeader("Sign", Sign(t.secret, body)).
		SetBody(body).
		Post(t.tradeURL)
	if err != nil {
		return nil, &schema.TransportError{Method: method, Err: errors.WithStack(err)}
	}

	logger.Debug("BTC-e Trade %s nonce=%d 原始响应: %s", method, t.nonce, string(r.Body()))

	result, err := schema.DecodeResponse(r.Body())
	if err != nil || len(result) == 0 {
		if err == nil {
			err = errors.New("empty result")
		}
		return nil, &schema.InvalidResponseError{
			Method:     method,
			StatusCode: r.StatusCode(),
			Body:       string(r.Body()),
			Err:        err,
		}
	}
	return result, nil
}

// MakeOrder places a limit order. direction must be buy or sell; anything else fails
// before a request is made.
func (t *SpotTradeREST) MakeOrder(ctx context.Context, amount decimal.Decimal, pair string, direction schema.OrderSide, price decimal.Decimal) (schema.Response, error) {
	if !direction.Valid() {
		return nil, &schema.InvalidParameterError{
			Name:  "direction",
			Value: string(direction),
			Want:  string(schema.OrderSideBuy) + " or " + string(schema.OrderSideSell),
		}
	}
	return t.APIQuery(ctx, methodTrade, schema.NewParams(
		"pair", pair,
		"type", string(direction),
		"rate", price.String(),
		"amount", amount.String(),
	))
}

func (t *SpotTradeREST) CancelOrder(ctx context.Context, orderID int64) (schema.Response, error) {
	return t.APIQuery(ctx, methodCancelOrder, schema.NewParams(
		"order_id", strconv.FormatInt(orderID, 10),
	))
}

// CheckPastOrder looks up a completed (non-active) order by id.
func (t *SpotTradeREST) CheckPastOrder(ctx context.Context, orderID int64) (schema.Response, error) {
	id := strconv.FormatInt(orderID, 10)
	data, err := t.APIQuery(ctx, methodOrderList, schema.NewParams(
		"from_id", id,
		"to_id", id,
		"active", "0",
	))
	if err != nil {
		return nil, err
	}
	if data.Failed() {
		msg, _ := data.ErrorMessage()
		return nil, &schema.APIError{Method: methodOrderList, Message: "Error: " + msg, Response: data}
	}
	return data, nil
}

// ActiveOrders lists open orders, optionally for one pair.
func (t *SpotTradeREST) ActiveOrders(ctx context.Context, pair string) (schema.Response, error) {
	params := schema.NewParams()
	if pair != "" {
		params.Set("pair", pair)
	}
	return t.APIQuery(ctx, methodActiveOrders, params)
}

func (t *SpotTradeREST) OrderInfo(ctx context.Context, orderID int64) (schema.Response, error) {
	return t.APIQuery(ctx, methodOrderInfo, schema.NewParams(
		"order_id", strconv.FormatInt(orderID, 10),
	))
}
