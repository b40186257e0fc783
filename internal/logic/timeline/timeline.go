package timeline

import (
	"fmt"
	"strconv"
	"strings"

	"sui-tx-explainer/internal/logic/core"
)

// Generate 生成逐步叙事时间线。步骤按固定顺序追加（借贷 → 交换 → 加流动性 →
// 移除流动性 → 偿还 → 铸造 → 转移 → 创建 → 状态更新 → 付 gas），命中才追加，
// 序号从 1 开始连续递增。全空输入产生空时间线，属合法结果。
func Generate(callName string, changes []core.ObjectChange, gasInfo core.GasInfo) []core.TimelineStep {
	var steps []core.TimelineStep
	call := strings.ToLower(callName)
	swapped := false

	add := func(action, description, icon string, details []string) {
		steps = append(steps, core.TimelineStep{
			Step:        len(steps) + 1,
			Action:      action,
			Description: description,
			Icon:        icon,
			Details:     details,
		})
	}

	if call != "" {
		if strings.Contains(call, "flashloan") || strings.Contains(call, "borrow") {
			add("Borrow Flashloan", "Borrowed assets for flashloan", "⚡",
				[]string{"Temporary borrowing without collateral"})
		}
		if strings.Contains(call, "swap") || strings.Contains(call, "trade") {
			add("Execute Swap", "Swapped tokens", "🔄", nil)
			swapped = true
		}
		if strings.Contains(call, "liquidity") || strings.Contains(call, "add_liquidity") {
			add("Add Liquidity", "Added liquidity to pool", "💧", nil)
		}
		if strings.Contains(call, "remove_liquidity") {
			add("Remove Liquidity", "Removed liquidity from pool", "💧", nil)
		}
		if strings.Contains(call, "repay") || strings.Contains(call, "return") {
			add("Repay Flashloan", "Repaid borrowed assets", "💳",
				[]string{"Returned flashloan with interest"})
		}
		if strings.Contains(call, "mint") || strings.Contains(call, "create") {
			add("Mint Assets", "Created new assets", "✨", nil)
		}
	}

	var transferred, created, mutated []core.ObjectChange
	for _, c := range changes {
		switch c.Kind {
		case core.ChangeTransferred:
			transferred = append(transferred, c)
		case core.ChangeCreated:
			created = append(created, c)
		case core.ChangeMutated:
			mutated = append(mutated, c)
		}
	}

	// swap 步骤本身已含代币转移，不再重复报告
	if len(transferred) > 0 && !swapped {
		details := make([]string, 0, 3)
		for _, c := range transferred[:min(3, len(transferred))] {
			details = append(details, c.Description)
		}
		add("Transfer Assets",
			fmt.Sprintf("Transferred %d object%s", len(transferred), plural(len(transferred))),
			"➡️", details)
	}

	if len(created) > 0 {
		add("Create Objects",
			fmt.Sprintf("Created %d object%s", len(created), plural(len(created))),
			"✨", nil)
	}

	// 调用名本身已含 mutate 时不再重复报告状态更新
	if len(mutated) > 0 && !strings.Contains(call, "mutate") {
		add("Update State",
			fmt.Sprintf("Modified %d object%s", len(mutated), plural(len(mutated))),
			"🔄", nil)
	}

	if cost, err := strconv.ParseFloat(gasInfo.TotalCostSUI, 64); err == nil && cost > 0 {
		add("Pay Gas",
			fmt.Sprintf("Paid %s SUI for gas", gasInfo.TotalCostSUI),
			"⛽", []string{"Transaction finalized"})
	}

	return steps
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
