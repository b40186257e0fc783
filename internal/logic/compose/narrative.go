package compose

import (
	"fmt"
	"strconv"
	"strings"

	"sui-tx-explainer/internal/consts"
	"sui-tx-explainer/internal/logic/core"
)

// categoryNarratives 是通用类别 → 叙述句的固定文案
var categoryNarratives = map[string]string{
	"Swap":     "You performed a token swap on a decentralized exchange. This allows you to trade one token for another without needing a centralized intermediary.",
	"Staking":  "You staked your tokens to earn rewards. Staking helps secure the network while providing you with passive income.",
	"NFT Mint": "You minted new tokens. This could be creating a new token or minting additional supply of an existing token.",
	"Transfer": "You transferred tokens to another address. This is a simple peer-to-peer transaction on the Sui blockchain.",
}

const fallbackNarrative = "This transaction was executed successfully on the Sui blockchain. All operations completed as intended."

// Narrative 生成展开叙述段落，按 协议 → 对象变更 → gas 的顺序组句，空格连接
func Narrative(class core.Classification, changes []core.ObjectChange, gasInfo core.GasInfo) string {
	var sentences []string

	if s := narrativeForLabel(class.Label); s != "" {
		sentences = append(sentences, s)
	}

	if s := changesSentence(changes); s != "" {
		sentences = append(sentences, s)
	}

	if s := gasSentence(gasInfo); s != "" {
		sentences = append(sentences, s)
	}

	if len(sentences) == 0 {
		return fallbackNarrative
	}
	return strings.Join(sentences, " ")
}

func narrativeForLabel(label string) string {
	for _, p := range consts.KnownProtocols {
		if p.Name == label {
			return p.Narrative
		}
	}
	return categoryNarratives[label]
}

// changesSentence 刻画主导的对象变更模式：swap、单币转出或余额更新
func changesSentence(changes []core.ObjectChange) string {
	var coinChanges []core.ObjectChange
	var transfers, mutations int
	for _, c := range changes {
		if strings.Contains(c.DisplayType, "Coin") {
			coinChanges = append(coinChanges, c)
		}
		switch c.Kind {
		case core.ChangeTransferred:
			transfers++
		case core.ChangeMutated:
			mutations++
		}
	}

	if transfers > 0 && len(coinChanges) > 0 {
		types := distinctTypes(coinChanges)
		switch len(types) {
		case 2:
			return fmt.Sprintf("You swapped %s for %s. This transaction involved exchanging one type of token for another at the current market rate.", types[0], types[1])
		case 1:
			return fmt.Sprintf("You transferred %s to another address. The tokens have been moved from your wallet to the recipient's wallet.", types[0])
		}
		return ""
	}

	if mutations > 0 && len(coinChanges) > 0 {
		return "Your token balances were updated. This typically happens when you receive tokens, make a purchase, or when your staking rewards are distributed."
	}
	return ""
}

// gasSentence 刻画 gas 成本：负值说 rebate，零成本不说，小额说省，其余报字面值
func gasSentence(gasInfo core.GasInfo) string {
	cost, err := strconv.ParseFloat(gasInfo.TotalCostSUI, 64)
	if err != nil {
		return ""
	}
	switch {
	case cost < 0:
		return "Great news! You actually earned SUI from this transaction due to storage rebates. Sui's unique gas model can reward users when they free up storage space."
	case cost == 0:
		return ""
	case cost < 0.001:
		return "This transaction was very cost-effective, costing less than $0.01. Sui's efficient architecture keeps transaction costs low for users."
	default:
		return fmt.Sprintf("This transaction cost %s SUI in gas fees. The cost covers computation and storage, with any storage rebates deducted from the total.", gasInfo.TotalCostSUI)
	}
}
