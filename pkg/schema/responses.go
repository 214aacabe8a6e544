package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// BTC-e public API v3 response types. Every per-pair endpoint wraps its payload in an
// object keyed by the pair, e.g. {"btc_usd": {...}}.

// BtceInfoResponse represents /api/3/info
type BtceInfoResponse struct {
	ServerTime int64 `json:"server_time"`
	Pairs      map[string]struct {
		DecimalPlaces int             `json:"decimal_places"`
		MinPrice      decimal.Decimal `json:"min_price"`
		MaxPrice      decimal.Decimal `json:"max_price"`
		MinAmount     decimal.Decimal `json:"min_amount"`
		Hidden        int             `json:"hidden"`
		Fee           decimal.Decimal `json:"fee"`
	} `json:"pairs"`
}

// BtceTickerResponse represents /api/3/ticker/{pair}
type BtceTickerResponse map[string]struct {
	High    decimal.Decimal `json:"high"`
	Low     decimal.Decimal `json:"low"`
	Avg     decimal.Decimal `json:"avg"`
	Vol     decimal.Decimal `json:"vol"`
	VolCur  decimal.Decimal `json:"vol_cur"`
	Last    decimal.Decimal `json:"last"`
	Buy     decimal.Decimal `json:"buy"`
	Sell    decimal.Decimal `json:"sell"`
	Updated int64           `json:"updated"`
}

// BtceDepthResponse represents /api/3/depth/{pair}
// each level is [price, amount]
type BtceDepthResponse map[string]struct {
	Asks [][]decimal.Decimal `json:"asks"`
	Bids [][]decimal.Decimal `json:"bids"`
}

// BtceTradesResponse represents /api/3/trades/{pair}
type BtceTradesResponse map[string][]struct {
	Type      string          `json:"type"` // "ask" or "bid"
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	TID       int64           `json:"tid"`
	Timestamp int64           `json:"timestamp"`
}

// DecodeResponse decodes a JSON object body into a Response, keeping numbers as
// json.Number so nonces and order ids survive untouched.
func DecodeResponse(body []byte) (Response, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var out Response
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	// 整个body必须只有一个JSON值，代理错误页常常拼在后面
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("trailing data after JSON value")
	}
	return out, nil
}

// ParseExchangeInfo converts an /info body into ExchangeInfo.
func ParseExchangeInfo(body []byte) (ExchangeInfo, error) {
	var resp BtceInfoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return ExchangeInfo{}, errors.Wrap(err, "decode info")
	}
	if resp.Pairs == nil {
		return ExchangeInfo{}, errors.New("info response has no pairs")
	}

	pairs := make(map[string]PairInfo, len(resp.Pairs))
	for name, p := range resp.Pairs {
		pairs[name] = PairInfo{
			Symbol:        name,
			DecimalPlaces: p.DecimalPlaces,
			MinPrice:      p.MinPrice,
			MaxPrice:      p.MaxPrice,
			MinAmount:     p.MinAmount,
			Fee:           p.Fee,
			Hidden:        p.Hidden != 0,
		}
	}
	return ExchangeInfo{
		Exchange:   BTCE,
		Market:     SPOT,
		Pairs:      pairs,
		ServerTime: time.Unix(resp.ServerTime, 0),
		UpdatedAt:  time.Now(),
	}, nil
}

// ParseTicker converts a /ticker/{pair} body into a Ticker.
func ParseTicker(body []byte, pair string) (Ticker, error) {
	var resp BtceTickerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Ticker{}, errors.Wrap(err, "decode ticker")
	}
	t, ok := resp[pair]
	if !ok {
		return Ticker{}, fmt.Errorf("no ticker data for %s", pair)
	}
	return Ticker{
		Exchange:  BTCE,
		Market:    SPOT,
		Symbol:    pair,
		High:      t.High,
		Low:       t.Low,
		Avg:       t.Avg,
		Last:      t.Last,
		Buy:       t.Buy,
		Sell:      t.Sell,
		Volume:    t.VolCur,
		QuoteVol:  t.Vol,
		Timestamp: time.Unix(t.Updated, 0),
	}, nil
}

// ParseDepth converts a /depth/{pair} body into a Depth snapshot.
func ParseDepth(body []byte, pair string) (Depth, error) {
	var resp BtceDepthResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Depth{}, errors.Wrap(err, "decode depth")
	}
	d, ok := resp[pair]
	if !ok {
		return Depth{}, fmt.Errorf("no depth data for %s", pair)
	}

	convert := func(levels [][]decimal.Decimal) []PriceLevel {
		out := make([]PriceLevel, 0, len(levels))
		for _, lv := range levels {
			if len(lv) < 2 {
				continue
			}
			out = append(out, PriceLevel{Price: lv[0], Quantity: lv[1]})
		}
		return out
	}

	bids := convert(d.Bids)
	asks := convert(d.Asks)
	sort.SliceStable(bids, func(i, j int) bool { return bids[i].Price.GreaterThan(bids[j].Price) })
	sort.SliceStable(asks, func(i, j int) bool { return asks[i].Price.LessThan(asks[j].Price) })

	return Depth{
		Exchange:  BTCE,
		Market:    SPOT,
		Symbol:    pair,
		Bids:      bids,
		Asks:      asks,
		UpdatedAt: time.Now(),
	}, nil
}

// ParseTrades converts a /trades/{pair} body into trades, newest first as served.
func ParseTrades(body []byte, pair string) ([]Trade, error) {
	var resp BtceTradesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "decode trades")
	}
	rows, ok := resp[pair]
	if !ok {
		return nil, fmt.Errorf("no trades data for %s", pair)
	}

	out := make([]Trade, 0, len(rows))
	for _, r := range rows {
		// "bid" means the taker bought
		side := OrderSideSell
		if r.Type == "bid" {
			side = OrderSideBuy
		}
		out = append(out, Trade{
			Exchange:  BTCE,
			Market:    SPOT,
			Symbol:    pair,
			TradeID:   fmt.Sprintf("%d", r.TID),
			Side:      side,
			Price:     r.Price,
			Quantity:  r.Amount,
			Timestamp: time.Unix(r.Timestamp, 0),
		})
	}
	return out, nil
}
