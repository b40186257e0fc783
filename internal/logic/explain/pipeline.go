package explain

import (
	"fmt"
	"runtime/debug"
	"strconv"

	"sui-tx-explainer/internal/cache"
	"sui-tx-explainer/internal/logic/balance"
	"sui-tx-explainer/internal/logic/compose"
	"sui-tx-explainer/internal/logic/core"
	"sui-tx-explainer/internal/logic/gas"
	"sui-tx-explainer/internal/logic/protocol"
	"sui-tx-explainer/internal/logic/rawtx"
	"sui-tx-explainer/internal/logic/timeline"
	"sui-tx-explainer/pkg/logger"
)

// Pipeline 是交易解读流水线。除注入的不可变查表数据外不持有任何状态，
// 对同一输入的输出字节级一致，可被任意并发调用。
type Pipeline struct {
	tables *cache.StaticTables
}

func NewPipeline(tables *cache.StaticTables) *Pipeline {
	if tables == nil {
		tables = cache.DefaultTables()
	}
	return &Pipeline{tables: tables}
}

// Explain 把原始交易记录解读为结构化解释。
// 缺少必备的 effects/调用上下文立即整体失败；其余未识别的子值退化为
// 通用文案继续产出（尽力而为，但输入不完整绝不出部分结果）。
func (p *Pipeline) Explain(tx *rawtx.RawTransaction) (expl *core.TransactionExplanation, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[explain] panic tx=%s: %+v\nstack: %s", safeDigest(tx), r, debug.Stack())
			expl = nil
			err = fmt.Errorf("explain panic: %v", r)
		}
	}()

	if vErr := rawtx.Validate(tx); vErr != nil {
		return nil, fmt.Errorf("transaction data incomplete: %w", vErr)
	}

	gasInfo, err := gas.ParseGasUsed(tx.Effects.GasUsed)
	if err != nil {
		return nil, fmt.Errorf("transaction data incomplete: %w", err)
	}

	objectChanges := InterpretObjectChanges(tx.ObjectChanges)
	actions := AggregateActions(objectChanges)
	moveCall := ParseMoveCall(tx.Transaction.Data.Transaction)
	class := protocol.Classify(moveCall, objectChanges)
	estimate := gas.Estimate(gasInfo, class.Label, p.tables)
	balances, netUSD := balance.Interpret(tx.BalanceChanges, p.tables)
	events := InterpretEvents(tx.Events)

	callName := ""
	if moveCall != nil {
		callName = moveCall.FullName
	}
	steps := timeline.Generate(callName, objectChanges, gasInfo)

	return &core.TransactionExplanation{
		Digest:              tx.Digest,
		TimestampMs:         parseTimestamp(tx.TimestampMs),
		Sender:              tx.Transaction.Data.Sender,
		Summary:             compose.Summary(class, moveCall, objectChanges),
		Actions:             actions,
		ObjectChanges:       objectChanges,
		GasUsed:             gasInfo,
		GasEstimate:         estimate,
		MoveCall:            moveCall,
		Category:            class,
		Success:             tx.Success(),
		Events:              events,
		BalanceChanges:      balances,
		Timeline:            steps,
		DetailedExplanation: compose.Narrative(class, objectChanges, gasInfo),
		EducationalContent:  compose.Educational(class, objectChanges, netUSD, len(balances) > 0),
	}, nil
}

func parseTimestamp(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func safeDigest(tx *rawtx.RawTransaction) string {
	if tx == nil {
		return "<nil>"
	}
	return tx.Digest
}
