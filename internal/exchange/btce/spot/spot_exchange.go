package spot

import (
	"github.com/kingsmao/btce-connector/pkg/config"
	"github.com/kingsmao/btce-connector/pkg/interfaces"
	"github.com/kingsmao/btce-connector/pkg/schema"
)

// SpotExchange bundles public REST and trade REST for BTC-e Spot.
type SpotExchange struct {
	rest  *SpotREST
	trade *SpotTradeREST
}

func NewSpotExchange(cfg config.Config) (*SpotExchange, error) {
	trade, err := NewSpotTradeREST(cfg)
	if err != nil {
		return nil, err
	}
	return &SpotExchange{
		rest:  NewSpotRESTWithConfig(cfg),
		trade: trade,
	}, nil
}

func (s *SpotExchange) Name() schema.ExchangeName       { return schema.BTCE }
func (s *SpotExchange) Market() schema.MarketType       { return schema.SPOT }
func (s *SpotExchange) Public() interfaces.PublicClient { return s.rest }
func (s *SpotExchange) Trade() interfaces.TradeClient   { return s.trade }
