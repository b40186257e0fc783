package explain

import (
	"fmt"

	"sui-tx-explainer/internal/logic/core"
	"sui-tx-explainer/internal/logic/rawtx"
	"sui-tx-explainer/internal/logic/typefmt"
)

// InterpretEvents 把链上事件类型串转成展示信息
func InterpretEvents(events []rawtx.Event) []core.EventInfo {
	out := make([]core.EventInfo, 0, len(events))
	for _, e := range events {
		t := typefmt.FormatObjectType(e.Type)
		out = append(out, core.EventInfo{
			Type:        t,
			Description: fmt.Sprintf("Event: %s", t),
		})
	}
	return out
}
