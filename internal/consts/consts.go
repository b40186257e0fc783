package consts

const (
	// MistPerSui 表示 1 SUI = 1e9 MIST
	MistPerSui = 1_000_000_000

	// SuiDisplayDecimals 表示 SUI 金额展示的小数位数
	SuiDisplayDecimals = 6

	// ShortAddrThreshold 超过该长度的地址才做缩写展示
	ShortAddrThreshold = 20
)
