package cache

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sui-tx-explainer/internal/consts"
)

// StaticTables 是注入流水线的不可变查表数据：静态美元价格表与
// 按交易类型划分的平均 gas 成本表。构造后不再修改，可被任意并发读取。
type StaticTables struct {
	prices  map[string]float64
	avgCost map[string]float64
}

// tablesFile 是 yaml 表文件的反序列化结构
type tablesFile struct {
	Prices      map[string]float64 `yaml:"prices"`
	AvgGasCosts map[string]float64 `yaml:"avg_gas_costs"`
}

// DefaultTables 使用内置默认表构造
func DefaultTables() *StaticTables {
	return newTables(consts.DefaultUSDPrices, consts.DefaultAvgGasCosts)
}

// LoadTables 从 yaml 文件加载表数据，文件中未出现的条目沿用内置默认值
func LoadTables(path string) (*StaticTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables file: %w", err)
	}
	var f tablesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse tables file %s: %w", path, err)
	}

	t := DefaultTables()
	for k, v := range f.Prices {
		t.prices[k] = v
	}
	for k, v := range f.AvgGasCosts {
		t.avgCost[k] = v
	}
	return t, nil
}

func newTables(prices, avgCost map[string]float64) *StaticTables {
	t := &StaticTables{
		prices:  make(map[string]float64, len(prices)),
		avgCost: make(map[string]float64, len(avgCost)),
	}
	for k, v := range prices {
		t.prices[k] = v
	}
	for k, v := range avgCost {
		t.avgCost[k] = v
	}
	return t
}

// PriceUSD 返回展示类型对应的静态美元价格，未收录返回 0
func (t *StaticTables) PriceUSD(coinDisplayType string) float64 {
	return t.prices[coinDisplayType]
}

// AvgGasCost 返回交易类型对应的平均 gas 成本（SUI），未收录时落到 default 档
func (t *StaticTables) AvgGasCost(txType string) float64 {
	if v, ok := t.avgCost[txType]; ok {
		return v
	}
	return t.avgCost[consts.DefaultGasCostKey]
}
