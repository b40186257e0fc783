package rawtx

import "fmt"

// Validate 对交易记录做一次性边界校验。
// 缺少必备的 effects 或调用上下文即整体拒绝，不做部分解读。
func Validate(tx *RawTransaction) error {
	if tx == nil {
		return fmt.Errorf("nil transaction")
	}
	if tx.Digest == "" {
		return fmt.Errorf("missing transaction digest")
	}
	if tx.Transaction == nil || tx.Transaction.Data == nil {
		return fmt.Errorf("missing transaction data")
	}
	if tx.Transaction.Data.Sender == "" {
		return fmt.Errorf("missing sender address")
	}
	if tx.Effects == nil {
		return fmt.Errorf("missing effects block")
	}
	if tx.Effects.GasUsed == nil {
		return fmt.Errorf("missing gas usage in effects")
	}
	return nil
}

// Success 返回交易是否执行成功
func (tx *RawTransaction) Success() bool {
	return tx.Effects != nil && tx.Effects.Status.Status == "success"
}
