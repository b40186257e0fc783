package consts

// ProtocolInfo 描述一个已知 Sui 协议的识别特征与文案。
// Keyword 与 PackageAddr 均按小写子串匹配调用全名。
type ProtocolInfo struct {
	Name        string  // 协议名，同时作为分类 label
	Keyword     string  // 名称关键字（小写）
	PackageAddr string  // 协议主包地址（小写）
	Description string  // 分类描述，概要首句直接使用
	Icon        string
	Confidence  float64
	Narrative   string // 叙述段落中的协议句
	Education   string // 协议科普提示
}

// KnownProtocols 是已知协议识别表，按优先级顺序排列。
// 该表是示例性/可扩展的，不追求覆盖全生态。
var KnownProtocols = []ProtocolInfo{
	{
		Name:        "Cetus",
		Keyword:     "cetus",
		PackageAddr: "0x1eabed72c53feb3805120a081dc15963c204dc8d091542592abaf7a35689b2fb",
		Description: "Cetus DEX swap transaction",
		Icon:        "🔄",
		Confidence:  0.95,
		Narrative:   "You interacted with Cetus, a leading DEX on Sui that provides efficient token swaps with low slippage and competitive rates.",
		Education:   "💡 Cetus is a leading DEX on Sui that uses concentrated liquidity. This means liquidity providers can focus their capital on specific price ranges, leading to better capital efficiency and lower slippage for traders.",
	},
	{
		Name:        "Turbos",
		Keyword:     "turbos",
		PackageAddr: "0x5d1f470ea021f4e281a4561a42ebbb0c11bf5af967f81b51814cd6c6b31d0f6",
		Description: "Turbos Finance transaction",
		Icon:        "🔄",
		Confidence:  0.9,
		Narrative:   "You used Turbos Finance, a concentrated liquidity DEX on Sui that offers capital-efficient trading with customizable price ranges.",
		Education:   "💡 Turbos Finance uses concentrated liquidity similar to Uniswap V3. This allows for more efficient use of capital and better price discovery compared to traditional constant product AMMs.",
	},
	{
		Name:        "Kriya",
		Keyword:     "kriya",
		PackageAddr: "0xa0eba10b173538c8fecca1dff298e4883971085b",
		Description: "Kriya DEX transaction",
		Icon:        "🔄",
		Confidence:  0.9,
		Narrative:   "You traded on Kriya, a decentralized exchange on Sui that focuses on providing the best execution for your trades.",
		Education:   "💡 Kriya is designed for optimal trade execution on Sui. It aggregates liquidity from multiple sources to provide the best possible prices for your trades.",
	},
	{
		Name:        "FlowX",
		Keyword:     "flowx",
		PackageAddr: "0x7e8e8b0b8b8b8b8b8b8b8b8b8b8b8b8b8b8b8b8b",
		Description: "FlowX Finance transaction",
		Icon:        "🔄",
		Confidence:  0.9,
		Narrative:   "You interacted with FlowX Finance, a DeFi protocol on Sui offering various financial services and trading opportunities.",
		Education:   "💡 FlowX Finance offers a comprehensive DeFi suite on Sui, including trading, lending, and yield farming opportunities.",
	},
	{
		Name:        "Aftermath",
		Keyword:     "aftermath",
		PackageAddr: "0xab4b92c1cbb4e3475a8a5a2a2a2a2a2a2a2a2a2a2",
		Description: "Aftermath Finance transaction",
		Icon:        "🔄",
		Confidence:  0.9,
		Narrative:   "You used Aftermath Finance, a comprehensive DeFi platform on Sui that aggregates liquidity from multiple sources.",
		Education:   "💡 Aftermath Finance aggregates liquidity from multiple DEXs on Sui, ensuring you get the best possible execution for your trades across the entire ecosystem.",
	},
}
