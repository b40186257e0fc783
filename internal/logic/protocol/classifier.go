package protocol

import (
	"strings"

	"sui-tx-explainer/internal/consts"
	"sui-tx-explainer/internal/logic/core"
)

// matchInput 是规则判定的预处理输入，字符串均已小写
type matchInput struct {
	hasCall     bool
	fullName    string // 调用全名，无调用时为空串
	objectTypes string // 所有对象展示类型拼接
	changes     []core.ObjectChange
}

// rule 是 (判定, 结果) 对。规则表按优先级自上而下求值，首个命中即返回，
// 即使后面的规则同样满足。
type rule struct {
	name   string
	match  func(in *matchInput) bool
	result core.Classification
}

// rules 是完整的优先级链：具名协议 > flashloan > 通用 swap > 流动性 >
// NFT > 质押 > 治理 > 纯转账启发式 > 自定义调用 > 兜底
var rules = buildRules()

func buildRules() []rule {
	rs := make([]rule, 0, len(consts.KnownProtocols)+10)

	// 具名协议：关键字或主包地址命中调用全名
	for _, p := range consts.KnownProtocols {
		rs = append(rs, rule{
			name: p.Name,
			match: matchCall(func(fullName string) bool {
				return strings.Contains(fullName, p.Keyword) ||
					strings.Contains(fullName, strings.ToLower(p.PackageAddr))
			}),
			result: core.Classification{
				Label:       p.Name,
				Confidence:  p.Confidence,
				Description: p.Description,
				Icon:        p.Icon,
			},
		})
	}

	rs = append(rs,
		rule{
			name:  "Flashloan",
			match: matchCall(callContains("flashloan", "borrow_flashloan")),
			result: core.Classification{
				Label:       "Flashloan",
				Confidence:  0.95,
				Description: "Flashloan transaction",
				Icon:        "⚡",
			},
		},
		rule{
			name:  "Swap",
			match: matchCall(callContains("swap", "trade")),
			result: core.Classification{
				Label:       "Swap",
				Confidence:  0.9,
				Description: "Token swap or trade",
				Icon:        "🔄",
			},
		},
		rule{
			name:  "Liquidity",
			match: matchCall(callContains("liquidity", "add_liquidity", "remove_liquidity")),
			result: core.Classification{
				Label:       "Liquidity",
				Confidence:  0.9,
				Description: "Liquidity pool operation",
				Icon:        "💧",
			},
		},
		rule{
			name: "NFT Mint",
			match: func(in *matchInput) bool {
				return in.mentionsNFT() && (strings.Contains(in.fullName, "mint") || strings.Contains(in.fullName, "create"))
			},
			result: core.Classification{
				Label:       "NFT Mint",
				Confidence:  0.85,
				Description: "NFT minting",
				Icon:        "✨",
			},
		},
		rule{
			name: "NFT Transfer",
			match: func(in *matchInput) bool {
				return in.mentionsNFT()
			},
			result: core.Classification{
				Label:       "NFT Transfer",
				Confidence:  0.85,
				Description: "NFT transfer",
				Icon:        "🖼️",
			},
		},
		rule{
			name:  "Staking",
			match: matchCall(callContains("stake", "unstake")),
			result: core.Classification{
				Label:       "Staking",
				Confidence:  0.85,
				Description: "Staking operation",
				Icon:        "🔒",
			},
		},
		rule{
			name:  "Governance",
			match: matchCall(callContains("vote", "proposal")),
			result: core.Classification{
				Label:       "Governance",
				Confidence:  0.85,
				Description: "Governance action",
				Icon:        "🗳️",
			},
		},
		// 纯转账启发式：无调用、存在 transferred 且变更总数不超过 3
		rule{
			name: "Transfer",
			match: func(in *matchInput) bool {
				if in.hasCall || len(in.changes) == 0 || len(in.changes) > 3 {
					return false
				}
				for _, c := range in.changes {
					if c.Kind == core.ChangeTransferred {
						return true
					}
				}
				return false
			},
			result: core.Classification{
				Label:       "Transfer",
				Confidence:  0.8,
				Description: "Simple token transfer",
				Icon:        "➡️",
			},
		},
		rule{
			name: "Custom Move Call",
			match: func(in *matchInput) bool {
				return in.hasCall
			},
			result: core.Classification{
				Label:       "Custom Move Call",
				Confidence:  0.7,
				Description: "Custom Move function call",
				Icon:        "⚙️",
			},
		},
	)
	return rs
}

// fallback 兜底分类，任何规则都未命中时返回
var fallback = core.Classification{
	Label:       "Other",
	Confidence:  0.5,
	Description: "Unknown transaction type",
	Icon:        "📦",
}

// Classify 对一笔交易做协议/类别判定，恰好返回一条结果
func Classify(call *core.MoveCallInfo, changes []core.ObjectChange) core.Classification {
	in := buildInput(call, changes)
	for _, r := range rules {
		if r.match(in) {
			return r.result
		}
	}
	return fallback
}

func buildInput(call *core.MoveCallInfo, changes []core.ObjectChange) *matchInput {
	in := &matchInput{changes: changes}
	if call != nil {
		in.hasCall = true
		in.fullName = strings.ToLower(call.FullName)
	}

	var sb strings.Builder
	for i, c := range changes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strings.ToLower(c.DisplayType))
	}
	in.objectTypes = sb.String()
	return in
}

func (in *matchInput) mentionsNFT() bool {
	return strings.Contains(in.objectTypes, "nft") || strings.Contains(in.fullName, "nft")
}

// matchCall 包装只依赖调用全名的判定，无调用时恒不命中
func matchCall(f func(fullName string) bool) func(in *matchInput) bool {
	return func(in *matchInput) bool {
		return in.hasCall && f(in.fullName)
	}
}

// callContains 生成「全名含任一关键字」的判定
func callContains(keywords ...string) func(fullName string) bool {
	return func(fullName string) bool {
		for _, kw := range keywords {
			if strings.Contains(fullName, kw) {
				return true
			}
		}
		return false
	}
}
