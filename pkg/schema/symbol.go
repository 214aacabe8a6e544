package schema

import (
	"fmt"
	"strings"
)

// Symbol 表示一个完整的币对信息
type Symbol struct {
	Symbol       string       `json:"symbol"`       // 交易所格式的币对符号, 如 btc_usd
	Base         string       `json:"base"`         // 基础币种
	Quote        string       `json:"quote"`        // 计价币种
	ExchangeName ExchangeName `json:"exchangeName"` // 交易所名称
	MarketType   MarketType   `json:"marketType"`   // 市场类型
}

// NewSymbol 创建一个新的Symbol实例
func NewSymbol(symbol, base, quote string, exchangeName ExchangeName, marketType MarketType) *Symbol {
	return &Symbol{
		Symbol:       symbol,
		Base:         strings.ToUpper(base),
		Quote:        strings.ToUpper(quote),
		ExchangeName: exchangeName,
		MarketType:   marketType,
	}
}

// String 返回币对的字符串表示
func (s *Symbol) String() string {
	return fmt.Sprintf("%s/%s", s.Base, s.Quote)
}

// Pair returns the exchange pair name, e.g. btc_usd.
func (s *Symbol) Pair() string {
	return FormatPair(s.Base, s.Quote)
}

// ParseSymbol 解析币对格式 [base]/[quote]
// - symbolStr: 币对字符串，如 "BTC/USD"
func ParseSymbol(symbolStr string) (*Symbol, error) {
	symbolStr = strings.TrimSpace(symbolStr)

	base, quote, err := parseBaseQuote(symbolStr)
	if err != nil {
		return nil, fmt.Errorf("invalid spot symbol format: %w", err)
	}

	return NewSymbol(FormatPair(base, quote), base, quote, BTCE, SPOT), nil
}

// parseBaseQuote 解析基础币种和计价币种
func parseBaseQuote(baseQuote string) (base, quote string, err error) {
	baseQuote = strings.TrimSpace(baseQuote)

	parts := strings.Split(baseQuote, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid format: must be [base]/[quote], got: %s", baseQuote)
	}

	base = strings.TrimSpace(parts[0])
	quote = strings.TrimSpace(parts[1])

	if base == "" || quote == "" {
		return "", "", fmt.Errorf("invalid format: base and quote cannot be empty, got: %s", baseQuote)
	}

	return base, quote, nil
}

// FormatPair builds the exchange pair name: lower case, underscore separated.
func FormatPair(base, quote string) string {
	return strings.ToLower(strings.TrimSpace(base)) + "_" + strings.ToLower(strings.TrimSpace(quote))
}

// ParsePair 从交易所币对符号 (btc_usd) 反解析出 Symbol
func ParsePair(pair string) (*Symbol, error) {
	pair = strings.TrimSpace(pair)
	if pair == "" {
		return nil, fmt.Errorf("pair cannot be empty")
	}

	parts := strings.Split(pair, "_")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid pair format: must be [base]_[quote], got: %s", pair)
	}

	return NewSymbol(strings.ToLower(pair), parts[0], parts[1], BTCE, SPOT), nil
}

// NormalizePair accepts either BTC/USD or btc_usd and returns btc_usd.
func NormalizePair(s string) (string, error) {
	if strings.Contains(s, "/") {
		sym, err := ParseSymbol(s)
		if err != nil {
			return "", err
		}
		return sym.Symbol, nil
	}
	sym, err := ParsePair(s)
	if err != nil {
		return "", err
	}
	return sym.Symbol, nil
}

// JoinPairs joins pairs with "-" so one public call covers several pairs.
func JoinPairs(pairs ...string) string {
	return strings.Join(pairs, "-")
}
