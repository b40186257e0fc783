package core

// ChangeKind 是对象变更类型，取值与链上 objectChanges.type 一致
type ChangeKind string

const (
	ChangeCreated     ChangeKind = "created"
	ChangeMutated     ChangeKind = "mutated"
	ChangeDeleted     ChangeKind = "deleted"
	ChangeTransferred ChangeKind = "transferred"
	ChangeWrapped     ChangeKind = "wrapped"
	ChangePublished   ChangeKind = "published"
)

// ObjectChange 是单条对象变更的解读结果，与原始 delta 一一对应且保持顺序
type ObjectChange struct {
	Kind        ChangeKind `json:"type"`
	ObjectID    string     `json:"objectId,omitempty"`
	DisplayType string     `json:"objectType"`
	Owner       string     `json:"owner,omitempty"`
	Description string     `json:"description"`
}

// Action 是按变更类型去重后的高层动作，每种 ChangeKind 至多一条
type Action struct {
	Kind        ChangeKind `json:"type"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
}

// MoveCallInfo 是交易中第一条 Move 调用的信息；无调用时整体缺省
type MoveCallInfo struct {
	Package  string `json:"package"`
	Module   string `json:"module"`
	Function string `json:"function"`
	FullName string `json:"fullName"`
}

// Classification 是协议/类别判定结果，每笔交易恰好一条。
// Confidence 为规则固定常量，非统计值。
type Classification struct {
	Label       string  `json:"category"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// GasInfo 汇总 gas 三要素与净成本。整数一律以十进制字符串输出，避免精度损失。
// TotalCost = computation + storage - rebate，允许为负（rebate 超过成本）。
type GasInfo struct {
	ComputationCost string `json:"computationCost"`
	StorageCost     string `json:"storageCost"`
	StorageRebate   string `json:"storageRebate"`
	TotalCost       string `json:"totalCost"`
	TotalCostSUI    string `json:"totalCostSUI"`
}

// GasEstimate 是净成本相对历史均值的档位判定
type GasEstimate struct {
	Cost       float64 `json:"cost"`
	Category   string  `json:"category"`
	Comparison string  `json:"comparison"`
	Tip        string  `json:"tip,omitempty"`
}

// BalanceChange 是单条余额变更的解读结果
type BalanceChange struct {
	Owner      string `json:"owner,omitempty"`
	CoinType   string `json:"coinType"`
	Amount     string `json:"amount"`
	AmountSUI  string `json:"amountSUI"`
	ChangeType string `json:"changeType"` // increase / decrease，与 Amount 符号一致
	USDValue   string `json:"usdValue"`
}

const (
	BalanceIncrease = "increase"
	BalanceDecrease = "decrease"
)

// EventInfo 是链上事件的展示信息
type EventInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// TimelineStep 是叙事时间线中的一步，Step 从 1 开始严格递增无空洞
type TimelineStep struct {
	Step        int      `json:"step"`
	Action      string   `json:"action"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Details     []string `json:"details,omitempty"`
}

// TransactionExplanation 是整条流水线的唯一输出，完全派生、不可变，
// 除回显的输入时间戳外不含任何时间相关状态。
type TransactionExplanation struct {
	Digest              string         `json:"digest"`
	TimestampMs         int64          `json:"timestampMs,omitempty"`
	Sender              string         `json:"sender"`
	Summary             string         `json:"summary"`
	Actions             []Action       `json:"actions"`
	ObjectChanges       []ObjectChange `json:"objectChanges"`
	GasUsed             GasInfo        `json:"gasUsed"`
	GasEstimate         GasEstimate    `json:"gasEstimate"`
	MoveCall            *MoveCallInfo  `json:"moveCall,omitempty"`
	Category            Classification `json:"category"`
	Success             bool           `json:"success"`
	Events              []EventInfo    `json:"events,omitempty"`
	BalanceChanges      []BalanceChange `json:"balanceChanges,omitempty"`
	Timeline            []TimelineStep `json:"timeline"`
	DetailedExplanation string         `json:"detailedExplanation,omitempty"`
	EducationalContent  []string       `json:"educationalContent"`
}
