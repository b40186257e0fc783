package compose

import (
	"fmt"
	"strings"

	"sui-tx-explainer/internal/logic/core"
)

// fallbackSummary 在没有任何可说内容时作为概要字面值
const fallbackSummary = "Transaction executed successfully"

// genericLabels 是不适合领起概要的泛化分类
var genericLabels = map[string]bool{
	"Custom Move Call": true,
	"Other":            true,
}

// Summary 生成一行概要，保证非空。
// 先以协议判定或调用名领起，再按优先级追加币种转移/余额更新/通用计数描述。
func Summary(class core.Classification, call *core.MoveCallInfo, changes []core.ObjectChange) string {
	var parts []string

	if call != nil {
		if !genericLabels[class.Label] {
			parts = append(parts, class.Description)
		} else {
			parts = append(parts, fmt.Sprintf("Called %s::%s", call.Module, call.Function))
		}
	}

	var coinTransfers, coinMutations []core.ObjectChange
	var transfers, created, mutated int
	for _, c := range changes {
		switch c.Kind {
		case core.ChangeTransferred:
			transfers++
		case core.ChangeCreated:
			created++
		case core.ChangeMutated:
			mutated++
		}
		if strings.Contains(c.DisplayType, "Coin") {
			switch c.Kind {
			case core.ChangeTransferred:
				coinTransfers = append(coinTransfers, c)
			case core.ChangeMutated:
				coinMutations = append(coinMutations, c)
			}
		}
	}

	switch {
	case len(coinTransfers) > 0:
		types := distinctTypes(coinTransfers)
		switch len(types) {
		case 1:
			parts = append(parts, fmt.Sprintf("Transferred %s", types[0]))
		case 2:
			// 恰好两种币种按 swap 推断，这是尽力而为的启发式而非账本核实
			parts = append(parts, fmt.Sprintf("Swapped %s for %s", types[0], types[1]))
		default:
			parts = append(parts, fmt.Sprintf("Transferred %d different tokens", len(coinTransfers)))
		}

	case len(coinMutations) > 0:
		types := distinctTypes(coinMutations)
		if len(types) == 1 {
			parts = append(parts, fmt.Sprintf("Updated %s balance", types[0]))
		} else {
			parts = append(parts, fmt.Sprintf("Updated %d token balances", len(coinMutations)))
		}

	default:
		if transfers > 0 {
			parts = append(parts, fmt.Sprintf("%d object%s transferred", transfers, plural(transfers)))
		}
		if created > 0 {
			parts = append(parts, fmt.Sprintf("%d object%s created", created, plural(created)))
		}
		if mutated > 0 {
			parts = append(parts, fmt.Sprintf("%d object%s modified", mutated, plural(mutated)))
		}
	}

	if len(parts) == 0 {
		return fallbackSummary
	}
	return strings.Join(parts, ", ")
}

// distinctTypes 返回按首次出现顺序去重的展示类型
func distinctTypes(changes []core.ObjectChange) []string {
	seen := make(map[string]bool, len(changes))
	var types []string
	for _, c := range changes {
		if !seen[c.DisplayType] {
			seen[c.DisplayType] = true
			types = append(types, c.DisplayType)
		}
	}
	return types
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
