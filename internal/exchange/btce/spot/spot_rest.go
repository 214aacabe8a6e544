package spot

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/kingsmao/btce-connector/pkg/config"
	"github.com/kingsmao/btce-connector/pkg/logger"
	"github.com/kingsmao/btce-connector/pkg/schema"
)

const (
	// public API v3 endpoints, relative to the public base URL
	apiInfo   = "/info"
	apiFee    = "/fee/%s"
	apiTicker = "/ticker/%s"
	apiTrades = "/trades/%s"
	apiDepth  = "/depth/%s"
)

// SpotREST implements PublicClient for the BTC-e public API.
type SpotREST struct {
	http *resty.Client
}

func NewSpotREST() *SpotREST {
	return NewSpotRESTWithConfig(config.Default())
}

// NewSpotRESTWithConfig builds the public client from cfg; credentials are not needed.
func NewSpotRESTWithConfig(cfg config.Config) *SpotREST {
	cfg = cfg.WithDefaults()
	c := resty.New().SetBaseURL(cfg.PublicURL).SetTimeout(cfg.PublicTimeout)
	if cfg.UserAgent != "" {
		c.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.InsecureSkipVerify {
		logger.Warn("BTC-e public API: TLS certificate verification disabled by config")
		c.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	return &SpotREST{http: c}
}

func pairPath(format, pair string) string {
	return fmt.Sprintf(format, url.PathEscape(pair))
}

// fetch performs a GET and returns the body of a 2xx reply.
func (s *SpotREST) fetch(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	r, err := s.http.R().SetContext(ctx).SetQueryParams(query).Get(path)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", path)
	}
	if r.IsError() {
		return nil, errors.New(r.Status())
	}

	// 保存原始响应结果用于调试
	logger.Debug("BTC-e Public %s 原始响应: %s", path, string(r.Body()))
	return r.Body(), nil
}

// retrieveJSON never fails: transport errors, non-2xx replies and bodies that are not
// JSON objects all come back as nil.
func (s *SpotREST) retrieveJSON(ctx context.Context, path string) schema.Response {
	body, err := s.fetch(ctx, path, nil)
	if err != nil {
		logger.Warn("BTC-e Public %s 请求失败: %v", path, err)
		return nil
	}
	resp, err := schema.DecodeResponse(body)
	if err != nil {
		logger.Warn("BTC-e Public %s 响应不是合法JSON: %v", path, err)
		return nil
	}
	return resp
}

// GetMarketInfo returns the raw /info document.
func (s *SpotREST) GetMarketInfo(ctx context.Context) schema.Response {
	return s.retrieveJSON(ctx, apiInfo)
}

// GetPairFee returns the raw /fee/{pair} document.
func (s *SpotREST) GetPairFee(ctx context.Context, pair string) schema.Response {
	return s.retrieveJSON(ctx, pairPath(apiFee, pair))
}

// GetTicker returns the raw /ticker/{pair} document.
func (s *SpotREST) GetTicker(ctx context.Context, pair string) schema.Response {
	return s.retrieveJSON(ctx, pairPath(apiTicker, pair))
}

// GetTrades returns the raw /trades/{pair} document.
func (s *SpotREST) GetTrades(ctx context.Context, pair string) schema.Response {
	return s.retrieveJSON(ctx, pairPath(apiTrades, pair))
}

// GetDepth returns the raw /depth/{pair} document.
func (s *SpotREST) GetDepth(ctx context.Context, pair string) schema.Response {
	return s.retrieveJSON(ctx, pairPath(apiDepth, pair))
}

func limitQuery(limit int) map[string]string {
	if limit <= 0 {
		return nil
	}
	return map[string]string{"limit": strconv.Itoa(limit)}
}

func (s *SpotREST) FetchExchangeInfo(ctx context.Context) (schema.ExchangeInfo, error) {
	body, err := s.fetch(ctx, apiInfo, nil)
	if err != nil {
		return schema.ExchangeInfo{}, err
	}
	return schema.ParseExchangeInfo(body)
}

func (s *SpotREST) FetchTicker(ctx context.Context, pair string) (schema.Ticker, error) {
	body, err := s.fetch(ctx, pairPath(apiTicker, pair), nil)
	if err != nil {
		return schema.Ticker{}, err
	}
	return schema.ParseTicker(body, pair)
}

func (s *SpotREST) FetchDepth(ctx context.Context, pair string, limit int) (schema.Depth, error) {
	body, err := s.fetch(ctx, pairPath(apiDepth, pair), limitQuery(limit))
	if err != nil {
		return schema.Depth{}, err
	}
	return schema.ParseDepth(body, pair)
}

func (s *SpotREST) FetchTrades(ctx context.Context, pair string, limit int) ([]schema.Trade, error) {
	body, err := s.fetch(ctx, pairPath(apiTrades, pair), limitQuery(limit))
	if err != nil {
		return nil, err
	}
	return schema.ParseTrades(body, pair)
}
