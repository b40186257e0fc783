package consts

// DefaultUSDPrices 是静态代币美元价格表（key 为展示类型，如 "SUI Coin"）。
// 这是一份注入式配置数据而非实时行情，估值仅供参考。
var DefaultUSDPrices = map[string]float64{
	"SUI Coin":    2.50,
	"USDC Coin":   1.00,
	"USDT Coin":   1.00,
	"WETH Coin":   3500.00,
	"WBTC Coin":   65000.00,
	"CETUS Coin":  0.15,
	"TURBOS Coin": 0.05,
	"KRIYA Coin":  0.25,
	"FLOWX Coin":  0.10,
	"LOFI Coin":   0.02,
	"BUCK Coin":   1.00,
	"NAVX Coin":   0.30,
	"HAY Coin":    1.00,
	"DEEP Coin":   0.08,
	"MOVE Coin":   0.12,
	"FUD Coin":    0.001,
	"BONK Coin":   0.00002,
	"PEPE Coin":   0.000001,
	"DOGE Coin":   0.08,
	"SHIB Coin":   0.00001,
}

// DefaultAvgGasCosts 是按交易类型划分的平均 gas 成本（单位 SUI），
// 用于把单笔交易成本归入相对费用档位。
var DefaultAvgGasCosts = map[string]float64{
	"transfer":     0.001,
	"swap":         0.01,
	"liquidity":    0.015,
	"nft_mint":     0.005,
	"nft_transfer": 0.001,
	"flashloan":    0.02,
	"default":      0.01,
}

// DefaultGasCostKey 未匹配任何交易类型时使用的档位 key
const DefaultGasCostKey = "default"
