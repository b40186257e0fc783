package explain

import (
	"fmt"

	"sui-tx-explainer/internal/logic/core"
	"sui-tx-explainer/internal/logic/rawtx"
	"sui-tx-explainer/internal/logic/typefmt"
)

const kindProgrammable = "ProgrammableTransaction"

// ParseMoveCall 从指令负载里取出第一条 Move 调用。
// 非可编程交易、或命令列表中没有 MoveCall 时返回 nil。
// 多次调用只取第一条，这是有意的简化。
func ParseMoveCall(payload *rawtx.Payload) *core.MoveCallInfo {
	if payload == nil || payload.Kind != kindProgrammable {
		return nil
	}

	for _, cmd := range payload.Transactions {
		if cmd.MoveCall == nil {
			continue
		}
		pkg := typefmt.ShortenAddress(cmd.MoveCall.Package)
		return &core.MoveCallInfo{
			Package:  pkg,
			Module:   cmd.MoveCall.Module,
			Function: cmd.MoveCall.Function,
			FullName: fmt.Sprintf("%s::%s::%s", pkg, cmd.MoveCall.Module, cmd.MoveCall.Function),
		}
	}
	return nil
}
