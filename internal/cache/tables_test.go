package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()

	if got := tables.PriceUSD("SUI Coin"); got != 2.50 {
		t.Errorf("PriceUSD(SUI Coin) = %v, want 2.50", got)
	}
	// 未收录币种估值为 0
	if got := tables.PriceUSD("XYZ Coin"); got != 0 {
		t.Errorf("PriceUSD(XYZ Coin) = %v, want 0", got)
	}

	if got := tables.AvgGasCost("swap"); got != 0.01 {
		t.Errorf("AvgGasCost(swap) = %v, want 0.01", got)
	}
	// 未收录类型落到 default 档
	if got := tables.AvgGasCost("mystery"); got != 0.01 {
		t.Errorf("AvgGasCost(mystery) = %v, want default 0.01", got)
	}
}

func TestLoadTablesOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	content := []byte(`
prices:
  "SUI Coin": 3.10
  "XYZ Coin": 0.42
avg_gas_costs:
  swap: 0.02
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	tables, err := LoadTables(path)
	if err != nil {
		t.Fatal(err)
	}

	// 文件中的条目覆盖默认值
	if got := tables.PriceUSD("SUI Coin"); got != 3.10 {
		t.Errorf("PriceUSD(SUI Coin) = %v, want 3.10", got)
	}
	if got := tables.PriceUSD("XYZ Coin"); got != 0.42 {
		t.Errorf("PriceUSD(XYZ Coin) = %v, want 0.42", got)
	}
	if got := tables.AvgGasCost("swap"); got != 0.02 {
		t.Errorf("AvgGasCost(swap) = %v, want 0.02", got)
	}
	// 未出现的条目沿用内置默认值
	if got := tables.PriceUSD("USDC Coin"); got != 1.00 {
		t.Errorf("PriceUSD(USDC Coin) = %v, want 1.00", got)
	}
	if got := tables.AvgGasCost("transfer"); got != 0.001 {
		t.Errorf("AvgGasCost(transfer) = %v, want 0.001", got)
	}
}

func TestLoadTablesErrors(t *testing.T) {
	if _, err := LoadTables(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file must fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("prices: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTables(path); err == nil {
		t.Error("malformed yaml must fail")
	}
}
