package gas

import (
	"fmt"
	"strconv"

	"sui-tx-explainer/internal/consts"
	"sui-tx-explainer/internal/logic/core"
	"sui-tx-explainer/internal/logic/rawtx"
)

// ParseGasUsed 把字符串编码的三个成本字段换算成净成本。
// netTotal = computation + storage - rebate，允许为负（rebate 超出成本）。
// 任一字段不是合法整数视为输入不完整，由调用方整体拒绝。
func ParseGasUsed(g *rawtx.GasUsed) (core.GasInfo, error) {
	computation, err := parseCost("computationCost", g.ComputationCost)
	if err != nil {
		return core.GasInfo{}, err
	}
	storage, err := parseCost("storageCost", g.StorageCost)
	if err != nil {
		return core.GasInfo{}, err
	}
	rebate, err := parseCost("storageRebate", g.StorageRebate)
	if err != nil {
		return core.GasInfo{}, err
	}

	net := computation + storage - rebate
	return core.GasInfo{
		ComputationCost: strconv.FormatInt(computation, 10),
		StorageCost:     strconv.FormatInt(storage, 10),
		StorageRebate:   strconv.FormatInt(rebate, 10),
		TotalCost:       strconv.FormatInt(net, 10),
		TotalCostSUI:    FormatSui(net),
	}, nil
}

func parseCost(field, s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return v, nil
}

// FormatSui 把 MIST 数量格式化为 6 位小数的 SUI 展示值，保留符号
func FormatSui(mist int64) string {
	return strconv.FormatFloat(float64(mist)/consts.MistPerSui, 'f', consts.SuiDisplayDecimals, 64)
}
