package timeline

import (
	"testing"

	"sui-tx-explainer/internal/logic/core"
)

func gasOf(totalSUI string) core.GasInfo {
	return core.GasInfo{TotalCostSUI: totalSUI}
}

func actions(steps []core.TimelineStep) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.Action)
	}
	return out
}

func assertActions(t *testing.T, steps []core.TimelineStep, want ...string) {
	t.Helper()
	got := actions(steps)
	if len(got) != len(want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("actions = %v, want %v", got, want)
		}
	}
	// 序号必须从 1 开始连续递增
	for i, s := range steps {
		if s.Step != i+1 {
			t.Errorf("step[%d].Step = %d, want %d", i, s.Step, i+1)
		}
	}
}

func TestGenerateFlashloanSequence(t *testing.T) {
	steps := Generate("0xaaa::lending::flashloan_swap_repay", nil, gasOf("0.002000"))
	assertActions(t, steps, "Borrow Flashloan", "Execute Swap", "Repay Flashloan", "Pay Gas")
}

func TestGenerateSwapSuppressesTransfer(t *testing.T) {
	changes := []core.ObjectChange{
		{Kind: core.ChangeTransferred, Description: "Sent SUI Coin to 0xaaa"},
	}
	// swap 步骤本身已含代币转移，不再单列 Transfer Assets
	steps := Generate("0x1eab...b2fb::cetus::swap", changes, gasOf("0.000600"))
	assertActions(t, steps, "Execute Swap", "Pay Gas")
}

func TestGenerateTransferDetails(t *testing.T) {
	changes := []core.ObjectChange{
		{Kind: core.ChangeTransferred, Description: "Sent SUI Coin to 0xaaa"},
		{Kind: core.ChangeTransferred, Description: "Sent USDC Coin to 0xbbb"},
		{Kind: core.ChangeTransferred, Description: "Transferred Hero to 0xccc"},
		{Kind: core.ChangeTransferred, Description: "Transferred Hero to 0xddd"},
	}
	steps := Generate("", changes, gasOf("0.000100"))
	assertActions(t, steps, "Transfer Assets", "Pay Gas")

	if steps[0].Description != "Transferred 4 objects" {
		t.Errorf("description = %q", steps[0].Description)
	}
	// 明细最多收 3 条
	if len(steps[0].Details) != 3 || steps[0].Details[0] != "Sent SUI Coin to 0xaaa" {
		t.Errorf("details = %v", steps[0].Details)
	}
}

func TestGenerateCreatedWithoutGas(t *testing.T) {
	changes := []core.ObjectChange{
		{Kind: core.ChangeCreated, Description: "Created new NFT: HeroNFT"},
		{Kind: core.ChangeCreated, Description: "Created new NFT: HeroNFT"},
	}
	// 零成本不出 Pay Gas 步骤
	steps := Generate("", changes, gasOf("0.000000"))
	assertActions(t, steps, "Create Objects")
	if steps[0].Description != "Created 2 objects" {
		t.Errorf("description = %q", steps[0].Description)
	}
}

func TestGenerateMutateCallSkipsUpdateState(t *testing.T) {
	changes := []core.ObjectChange{
		{Kind: core.ChangeMutated, Description: "Modified Registry"},
	}
	steps := Generate("0xaaa::registry::mutate_record", changes, gasOf("0.000100"))
	assertActions(t, steps, "Pay Gas")

	// 调用名不含 mutate 时正常报告状态更新
	steps = Generate("0xaaa::registry::update_record", changes, gasOf("0.000100"))
	assertActions(t, steps, "Update State", "Pay Gas")
	if steps[0].Description != "Modified 1 object" {
		t.Errorf("description = %q", steps[0].Description)
	}
}

func TestGenerateLiquiditySteps(t *testing.T) {
	steps := Generate("0xaaa::pool::add_liquidity", nil, gasOf("0.001000"))
	assertActions(t, steps, "Add Liquidity", "Pay Gas")

	steps = Generate("0xaaa::pool::remove_liquidity", nil, gasOf("0.001000"))
	// remove_liquidity 同时含 liquidity 关键字，两个步骤先后命中
	assertActions(t, steps, "Add Liquidity", "Remove Liquidity", "Pay Gas")
}

func TestGenerateEmptyInput(t *testing.T) {
	// 全空输入产生空时间线，属合法结果
	if steps := Generate("", nil, core.GasInfo{}); len(steps) != 0 {
		t.Errorf("expected empty timeline, got %v", actions(steps))
	}
}

func TestGeneratePayGasStep(t *testing.T) {
	steps := Generate("", nil, gasOf("0.000600"))
	assertActions(t, steps, "Pay Gas")
	if steps[0].Description != "Paid 0.000600 SUI for gas" {
		t.Errorf("description = %q", steps[0].Description)
	}
	if len(steps[0].Details) != 1 || steps[0].Details[0] != "Transaction finalized" {
		t.Errorf("details = %v", steps[0].Details)
	}

	// 负净值（rebate 为主）同样不出付 gas 步骤
	if steps := Generate("", nil, gasOf("-0.002000")); len(steps) != 0 {
		t.Errorf("expected no steps for negative cost, got %v", actions(steps))
	}
}
