package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kingsmao/btce-connector/pkg/logger"
	"github.com/kingsmao/btce-connector/pkg/sdk"
)

// Usage: quick_start [config.yaml]
// Credentials come from the file, .env, or BTCE_API_KEY / BTCE_API_SECRET.
func main() {
	fmt.Println("=== BTC-e Connector 快速开始 ===")
	logger.Init()

	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// 1. 创建客户端
	client, err := sdk.NewClientFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "创建客户端失败: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 2. 公共行情
	if ticker, err := client.FetchTicker(ctx, "BTC/USD"); err == nil {
		fmt.Printf("BTC/USD 最新价=%s, 买一=%s, 卖一=%s, 成交量=%s\n",
			ticker.Last, ticker.Buy, ticker.Sell, ticker.Volume)
	} else {
		fmt.Printf("BTC/USD ticker: 暂无数据 (%v)\n", err)
	}

	if depth, err := client.FetchDepth(ctx, "BTC/USD", 5); err == nil && len(depth.Bids) > 0 && len(depth.Asks) > 0 {
		fmt.Printf("BTC/USD 深度: 买单%d档, 卖单%d档, 买一=%s, 卖一=%s\n",
			len(depth.Bids), len(depth.Asks), depth.Bids[0].Price, depth.Asks[0].Price)
	} else {
		fmt.Println("BTC/USD 深度: 暂无数据")
	}

	if fee := client.GetPairFee(ctx, "btc_usd"); fee != nil {
		fmt.Printf("btc_usd 手续费: %v\n", fee["btc_usd"])
	}

	// 3. 交易接口：只读查询当前挂单
	orders, err := client.ActiveOrders(ctx, "btc_usd")
	if err != nil {
		fmt.Printf("查询挂单失败: %v\n", err)
		return
	}
	fmt.Printf("当前挂单: %v (nonce=%d)\n", orders.Return(), client.Nonce())
}
