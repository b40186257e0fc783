package consts

import "strings"

// TokenDisplayNames 是常见 Sui 代币符号 → 展示名映射（大写符号作为 key）。
// 未命中时直接使用链上符号本身。
var TokenDisplayNames = map[string]string{
	"SUI":       "SUI",
	"USDC":      "USDC",
	"USDT":      "USDT",
	"WETH":      "WETH",
	"WBTC":      "WBTC",
	"CETUS":     "CETUS",
	"TURBOS":    "TURBOS",
	"KRIYA":     "KRIYA",
	"FLOWX":     "FLOWX",
	"AFTERMATH": "AFTERMATH",
	"LOFI":      "LOFI",
	"BUCK":      "BUCK",
	"NAVX":      "NAVX",
	"HAY":       "HAY",
	"DEEP":      "DEEP",
	"MOVE":      "MOVE",
	"FUD":       "FUD",
	"BONK":      "BONK",
	"PEPE":      "PEPE",
	"DOGE":      "DOGE",
	"SHIB":      "SHIB",
}

// TokenDisplayName 查表获取展示名，未收录的符号原样返回
func TokenDisplayName(symbol string) string {
	if name, ok := TokenDisplayNames[strings.ToUpper(symbol)]; ok {
		return name
	}
	return symbol
}
