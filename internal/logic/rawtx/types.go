package rawtx

import "encoding/json"

// RawTransaction 是 sui_getTransactionBlock 返回的交易记录（已选定
// showInput/showEffects/showEvents/showObjectChanges/showBalanceChanges）。
// 获取后不可变，整条流水线只读。
type RawTransaction struct {
	Digest         string          `json:"digest"`
	TimestampMs    string          `json:"timestampMs,omitempty"`
	Transaction    *Transaction    `json:"transaction"`
	Effects        *Effects        `json:"effects"`
	Events         []Event         `json:"events,omitempty"`
	ObjectChanges  []ObjectChange  `json:"objectChanges,omitempty"`
	BalanceChanges []BalanceChange `json:"balanceChanges,omitempty"`
}

type Transaction struct {
	Data *TransactionData `json:"data"`
}

type TransactionData struct {
	Sender      string   `json:"sender"`
	Transaction *Payload `json:"transaction"`
}

// Payload 是交易的指令负载。Kind 非 "ProgrammableTransaction" 时
// Transactions 为空。
type Payload struct {
	Kind         string    `json:"kind"`
	Transactions []Command `json:"transactions,omitempty"`
}

// Command 是可编程交易中的单条命令。只关心 MoveCall 变体，
// 其余命令（SplitCoins、TransferObjects 等）解码后各字段为零值。
type Command struct {
	MoveCall *MoveCall `json:"MoveCall,omitempty"`
}

type MoveCall struct {
	Package  string `json:"package"`
	Module   string `json:"module"`
	Function string `json:"function"`
}

type Effects struct {
	Status  Status   `json:"status"`
	GasUsed *GasUsed `json:"gasUsed"`
}

type Status struct {
	Status string `json:"status"` // "success" / "failure"
	Error  string `json:"error,omitempty"`
}

// GasUsed 的三个成本字段是字符串编码的整数（MIST），保住 64 位以上精度
type GasUsed struct {
	ComputationCost string `json:"computationCost"`
	StorageCost     string `json:"storageCost"`
	StorageRebate   string `json:"storageRebate"`
}

type Event struct {
	Type string `json:"type"`
}

type ObjectChange struct {
	Type       string `json:"type"`
	ObjectID   string `json:"objectId,omitempty"`
	ObjectType string `json:"objectType,omitempty"`
	Owner      *Owner `json:"owner,omitempty"`
	Recipient  *Owner `json:"recipient,omitempty"`
}

type BalanceChange struct {
	Owner    *Owner `json:"owner,omitempty"`
	CoinType string `json:"coinType"`
	Amount   string `json:"amount"`
}

// Owner 兼容 Sui 的三种 owner 编码：
// {"AddressOwner": "0x.."}、{"ObjectOwner": "0x.."}、{"Shared": {...}}，
// 以及字面量字符串 "Immutable"。
type Owner struct {
	AddressOwner string `json:"AddressOwner,omitempty"`
	ObjectOwner  string `json:"ObjectOwner,omitempty"`
}

func (o *Owner) UnmarshalJSON(data []byte) error {
	// "Immutable" 等字符串形式直接忽略，两个字段保持为空
	if len(data) > 0 && data[0] == '"' {
		return nil
	}
	type alias Owner
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*o = Owner(a)
	return nil
}

// Address 返回地址型 owner，其次对象型 owner，共享/不可变对象返回空串
func (o *Owner) Address() string {
	if o == nil {
		return ""
	}
	if o.AddressOwner != "" {
		return o.AddressOwner
	}
	return o.ObjectOwner
}
