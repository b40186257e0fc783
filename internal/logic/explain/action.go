package explain

import "sui-tx-explainer/internal/logic/core"

// actionIcons 是变更类型 → 动作图标的固定映射
var actionIcons = map[core.ChangeKind]string{
	core.ChangeTransferred: "➡️",
	core.ChangeCreated:     "✨",
	core.ChangeMutated:     "🔄",
	core.ChangeDeleted:     "🗑️",
	core.ChangeWrapped:     "📦",
	core.ChangePublished:   "🚀",
}

const defaultActionIcon = "📦"

// AggregateActions 把对象变更折叠为按类型去重的动作列表：
// 每种变更类型至多一条，按首次出现顺序排列，描述取该类型第一条变更的原文。
func AggregateActions(changes []core.ObjectChange) []core.Action {
	seen := make(map[core.ChangeKind]bool, len(changes))
	actions := make([]core.Action, 0, len(changes))

	for _, c := range changes {
		if seen[c.Kind] {
			continue
		}
		seen[c.Kind] = true

		icon, ok := actionIcons[c.Kind]
		if !ok {
			icon = defaultActionIcon
		}
		actions = append(actions, core.Action{
			Kind:        c.Kind,
			Description: c.Description,
			Icon:        icon,
		})
	}
	return actions
}
