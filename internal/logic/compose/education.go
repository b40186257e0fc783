package compose

import (
	"strings"

	"sui-tx-explainer/internal/consts"
	"sui-tx-explainer/internal/logic/core"
)

const (
	portfolioUpRemark   = "💰 Your portfolio value increased from this transaction. This could be from trading profits, staking rewards, or receiving tokens."
	portfolioDownRemark = "📉 Your portfolio value decreased from this transaction. This is normal for trades, fees, or when sending tokens to others."
	lpRemark            = "🔄 Liquidity Pool (LP) tokens represent your share in a trading pool. When you provide liquidity, you earn fees from trades that happen in that pool."
	createdRemark       = "✨ Creating new objects on Sui is gas-efficient. The network's object-centric model makes it easy to create and manage digital assets."
	rebateRemark        = "⚡ Sui's gas model is unique - you can earn SUI from storage rebates when you delete objects, making some transactions actually profitable!"
)

// Educational 生成科普提示列表，顺序固定：协议提示 → 组合价值走向 →
// LP 说明 → 对象创建效率 → rebate 结尾（最后一条无条件追加）。
func Educational(class core.Classification, changes []core.ObjectChange, netUSD float64, hasBalances bool) []string {
	var content []string

	for _, p := range consts.KnownProtocols {
		if p.Name == class.Label {
			content = append(content, p.Education)
			break
		}
	}

	// 恰好为零或没有余额变更时不给走向判断
	if hasBalances {
		if netUSD > 0 {
			content = append(content, portfolioUpRemark)
		} else if netUSD < 0 {
			content = append(content, portfolioDownRemark)
		}
	}

	hasLP, hasCreated := false, false
	for _, c := range changes {
		if strings.Contains(c.DisplayType, "LP") {
			hasLP = true
		}
		if c.Kind == core.ChangeCreated {
			hasCreated = true
		}
	}
	if hasLP {
		content = append(content, lpRemark)
	}
	if hasCreated {
		content = append(content, createdRemark)
	}

	content = append(content, rebateRemark)
	return content
}
