package compose

import (
	"strings"
	"testing"

	"sui-tx-explainer/internal/logic/core"
)

func TestSummaryProtocolLead(t *testing.T) {
	class := core.Classification{Label: "Cetus", Description: "Cetus DEX swap transaction"}
	call := &core.MoveCallInfo{Module: "cetus", Function: "swap"}
	changes := []core.ObjectChange{
		{Kind: core.ChangeTransferred, DisplayType: "SUI Coin"},
	}

	got := Summary(class, call, changes)
	if got != "Cetus DEX swap transaction, Transferred SUI Coin" {
		t.Errorf("summary = %q", got)
	}
}

func TestSummaryGenericLabelUsesCallName(t *testing.T) {
	class := core.Classification{Label: "Custom Move Call", Description: "Custom Move function call"}
	call := &core.MoveCallInfo{Module: "registry", Function: "update_record"}

	got := Summary(class, call, nil)
	if got != "Called registry::update_record" {
		t.Errorf("summary = %q", got)
	}
}

func TestSummaryCountsWithoutCall(t *testing.T) {
	class := core.Classification{Label: "NFT Transfer", Description: "NFT transfer"}
	changes := []core.ObjectChange{
		{Kind: core.ChangeCreated, DisplayType: "HeroNFT"},
		{Kind: core.ChangeCreated, DisplayType: "HeroNFT"},
	}

	// 无调用时不领起，只报计数
	got := Summary(class, nil, changes)
	if got != "2 objects created" {
		t.Errorf("summary = %q", got)
	}
}

func TestSummarySwapHeuristic(t *testing.T) {
	changes := []core.ObjectChange{
		{Kind: core.ChangeTransferred, DisplayType: "SUI Coin"},
		{Kind: core.ChangeTransferred, DisplayType: "USDC Coin"},
	}
	// 恰好两种币种转移按 swap 推断
	got := Summary(core.Classification{Label: "Other"}, nil, changes)
	if got != "Swapped SUI Coin for USDC Coin" {
		t.Errorf("summary = %q", got)
	}

	// 三种及以上只报种数
	changes = append(changes, core.ObjectChange{Kind: core.ChangeTransferred, DisplayType: "USDT Coin"})
	got = Summary(core.Classification{Label: "Other"}, nil, changes)
	if got != "Transferred 3 different tokens" {
		t.Errorf("summary = %q", got)
	}
}

func TestSummaryCoinMutations(t *testing.T) {
	changes := []core.ObjectChange{
		{Kind: core.ChangeMutated, DisplayType: "SUI Coin"},
		{Kind: core.ChangeMutated, DisplayType: "SUI Coin"},
	}
	got := Summary(core.Classification{Label: "Other"}, nil, changes)
	if got != "Updated SUI Coin balance" {
		t.Errorf("summary = %q", got)
	}

	changes[1].DisplayType = "USDC Coin"
	got = Summary(core.Classification{Label: "Other"}, nil, changes)
	if got != "Updated 2 token balances" {
		t.Errorf("summary = %q", got)
	}
}

func TestSummaryNeverEmpty(t *testing.T) {
	got := Summary(core.Classification{Label: "Other"}, nil, nil)
	if got != fallbackSummary {
		t.Errorf("summary = %q, want fallback", got)
	}
}

func TestNarrativeProtocolAndGas(t *testing.T) {
	class := core.Classification{Label: "Cetus"}
	changes := []core.ObjectChange{
		{Kind: core.ChangeTransferred, DisplayType: "SUI Coin"},
	}
	got := Narrative(class, changes, core.GasInfo{TotalCostSUI: "0.050000"})

	if !strings.Contains(got, "You interacted with Cetus") {
		t.Errorf("missing protocol sentence: %q", got)
	}
	if !strings.Contains(got, "You transferred SUI Coin to another address.") {
		t.Errorf("missing transfer sentence: %q", got)
	}
	if !strings.Contains(got, "This transaction cost 0.050000 SUI in gas fees.") {
		t.Errorf("missing gas sentence: %q", got)
	}
}

func TestNarrativeGasSentenceTiers(t *testing.T) {
	cases := []struct {
		name  string
		total string
		want  string
	}{
		{"negative cost mentions rebate", "-0.002000", "storage rebates"},
		{"tiny cost mentions efficiency", "0.000600", "very cost-effective"},
		{"regular cost quotes the figure", "0.020000", "0.020000 SUI in gas fees"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Narrative(core.Classification{Label: "Other"}, nil, core.GasInfo{TotalCostSUI: tc.total})
			if !strings.Contains(got, tc.want) {
				t.Errorf("narrative = %q, want substring %q", got, tc.want)
			}
		})
	}

	// 零成本不出 gas 句，没有其他可说内容时落到兜底文案
	got := Narrative(core.Classification{Label: "Other"}, nil, core.GasInfo{TotalCostSUI: "0.000000"})
	if got != fallbackNarrative {
		t.Errorf("narrative = %q, want fallback", got)
	}
}

func TestNarrativeSwapSentence(t *testing.T) {
	changes := []core.ObjectChange{
		{Kind: core.ChangeTransferred, DisplayType: "SUI Coin"},
		{Kind: core.ChangeTransferred, DisplayType: "USDC Coin"},
	}
	got := Narrative(core.Classification{Label: "Other"}, changes, core.GasInfo{TotalCostSUI: "0.000000"})
	if !strings.Contains(got, "You swapped SUI Coin for USDC Coin.") {
		t.Errorf("narrative = %q", got)
	}
}

func TestEducationalOrdering(t *testing.T) {
	class := core.Classification{Label: "Cetus"}
	changes := []core.ObjectChange{
		{Kind: core.ChangeCreated, DisplayType: "LP Token (SUI-USDC)"},
	}
	got := Educational(class, changes, -3.5, true)

	if len(got) != 5 {
		t.Fatalf("expected 5 remarks, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], "Cetus") {
		t.Errorf("first remark should be the protocol tip: %q", got[0])
	}
	if got[1] != portfolioDownRemark {
		t.Errorf("second remark = %q", got[1])
	}
	if got[2] != lpRemark || got[3] != createdRemark {
		t.Errorf("remarks = %v", got)
	}
	// rebate 结尾无条件追加且永远在最后
	if got[len(got)-1] != rebateRemark {
		t.Errorf("closing remark = %q", got[len(got)-1])
	}
}

func TestEducationalNeutralPortfolio(t *testing.T) {
	// 净值恰好为零或没有余额变更时不给走向判断
	got := Educational(core.Classification{Label: "Other"}, nil, 0, true)
	if len(got) != 1 || got[0] != rebateRemark {
		t.Errorf("remarks = %v", got)
	}

	got = Educational(core.Classification{Label: "Other"}, nil, 5.0, false)
	if len(got) != 1 || got[0] != rebateRemark {
		t.Errorf("remarks = %v", got)
	}

	got = Educational(core.Classification{Label: "Other"}, nil, 5.0, true)
	if len(got) != 2 || got[0] != portfolioUpRemark {
		t.Errorf("remarks = %v", got)
	}
}
