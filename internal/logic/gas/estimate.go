package gas

import (
	"fmt"
	"strconv"

	"sui-tx-explainer/internal/cache"
	"sui-tx-explainer/internal/consts"
	"sui-tx-explainer/internal/logic/core"
)

// 相对费用五档，从便宜到昂贵依次排列
const (
	TierVeryCheap     = "very_cheap"
	TierCheap         = "cheap"
	TierNormal        = "normal"
	TierExpensive     = "expensive"
	TierVeryExpensive = "very_expensive"
)

// costKeys 把分类 label 映射到平均成本表的 key；具名 DEX 协议按 swap 档计
var costKeys = map[string]string{
	"Transfer":     "transfer",
	"Swap":         "swap",
	"Liquidity":    "liquidity",
	"NFT Mint":     "nft_mint",
	"NFT Transfer": "nft_transfer",
	"Flashloan":    "flashloan",
	"Cetus":        "swap",
	"Turbos":       "swap",
	"Kriya":        "swap",
	"FlowX":        "swap",
	"Aftermath":    "swap",
}

// Estimate 把净成本与该类交易的历史均值对比，归入相对费用档位。
// 两个最便宜档位按绝对成本判定，优先于比值档位。
func Estimate(info core.GasInfo, categoryLabel string, tables *cache.StaticTables) core.GasEstimate {
	cost, _ := strconv.ParseFloat(info.TotalCostSUI, 64)
	avg := tables.AvgGasCost(costKeyFor(categoryLabel))
	ratio := cost / avg

	est := core.GasEstimate{Cost: cost}
	switch {
	case cost < 0.001:
		est.Category = TierVeryCheap
		est.Comparison = fmt.Sprintf("Extremely cheap (%.0f%% of average)", ratio*100)
		est.Tip = "Great gas efficiency!"
	case cost < 0.01:
		est.Category = TierCheap
		est.Comparison = fmt.Sprintf("Cheap (%.0f%% of average)", ratio*100)
		est.Tip = "Good gas usage"
	case ratio < 1.5:
		est.Category = TierNormal
		est.Comparison = fmt.Sprintf("Normal (%.0f%% of average)", ratio*100)
	case ratio < 3:
		est.Category = TierExpensive
		est.Comparison = fmt.Sprintf("Expensive (%.0f%% of average)", ratio*100)
		est.Tip = "Consider batching transactions to save gas"
	default:
		est.Category = TierVeryExpensive
		est.Comparison = fmt.Sprintf("Very expensive (%.0f%% of average)", ratio*100)
		est.Tip = "This transaction used significantly more gas than typical. Check for optimization opportunities."
	}
	return est
}

func costKeyFor(label string) string {
	if k, ok := costKeys[label]; ok {
		return k
	}
	return consts.DefaultGasCostKey
}
