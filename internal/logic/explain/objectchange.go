package explain

import (
	"fmt"
	"strings"

	"sui-tx-explainer/internal/logic/core"
	"sui-tx-explainer/internal/logic/rawtx"
	"sui-tx-explainer/internal/logic/typefmt"
)

// InterpretObjectChanges 把原始对象变更逐条转成带描述的 ObjectChange，保持输入顺序。
// 该函数永不失败：未知/畸形的变更退化为尽力而为的文案继续输出。
func InterpretObjectChanges(changes []rawtx.ObjectChange) []core.ObjectChange {
	out := make([]core.ObjectChange, 0, len(changes))
	for _, c := range changes {
		out = append(out, interpretObjectChange(c))
	}
	return out
}

func interpretObjectChange(c rawtx.ObjectChange) core.ObjectChange {
	kind := core.ChangeKind(c.Type)

	displayType := "Unknown"
	if c.ObjectType != "" {
		displayType = typefmt.FormatObjectType(c.ObjectType)
	}

	var description string
	switch kind {
	case core.ChangeCreated:
		switch {
		case strings.Contains(displayType, "Coin"):
			description = fmt.Sprintf("Minted new %s", displayType)
		case strings.Contains(displayType, "NFT"):
			description = fmt.Sprintf("Created new NFT: %s", displayType)
		default:
			description = fmt.Sprintf("Created new %s", displayType)
		}

	case core.ChangeMutated:
		switch {
		case strings.Contains(displayType, "Coin"):
			description = fmt.Sprintf("Updated %s balance", displayType)
		case strings.Contains(displayType, "Pool") || strings.Contains(displayType, "LP"):
			description = fmt.Sprintf("Updated liquidity pool: %s", displayType)
		default:
			description = fmt.Sprintf("Modified %s", displayType)
		}

	case core.ChangeDeleted:
		description = fmt.Sprintf("Burned/destroyed %s", displayType)

	case core.ChangeTransferred:
		recipient := c.Recipient.Address()
		if recipient == "" {
			recipient = "unknown"
		}
		recipient = typefmt.ShortenAddress(recipient)
		if strings.Contains(displayType, "Coin") {
			description = fmt.Sprintf("Sent %s to %s", displayType, recipient)
		} else {
			description = fmt.Sprintf("Transferred %s to %s", displayType, recipient)
		}

	case core.ChangeWrapped:
		description = fmt.Sprintf("Wrapped %s into NFT", displayType)

	case core.ChangePublished:
		description = "Deployed new smart contract package"
		displayType = "Smart Contract"

	default:
		// 未识别的变更类型保证有非空描述，kind 原样带出供上层甄别
		description = fmt.Sprintf("%s %s", typefmt.CapitalizeWords(c.Type), displayType)
	}

	return core.ObjectChange{
		Kind:        kind,
		ObjectID:    c.ObjectID,
		DisplayType: displayType,
		Owner:       c.Owner.Address(),
		Description: description,
	}
}
