package balance

import (
	"fmt"
	"math"
	"strconv"

	"sui-tx-explainer/internal/cache"
	"sui-tx-explainer/internal/consts"
	"sui-tx-explainer/internal/logic/core"
	"sui-tx-explainer/internal/logic/rawtx"
	"sui-tx-explainer/internal/logic/typefmt"
	"sui-tx-explainer/pkg/logger"
)

// Interpret 把原始余额变更转成带方向与估值的记录。
// 返回的第二个值是按符号累加的净美元变动，供组句层判断组合价值走向。
// 价格来自注入的静态表，未收录的币种按 0 估值，永不失败。
func Interpret(changes []rawtx.BalanceChange, tables *cache.StaticTables) ([]core.BalanceChange, float64) {
	out := make([]core.BalanceChange, 0, len(changes))
	var netUSD float64

	for _, c := range changes {
		displayType := typefmt.FormatObjectType(c.CoinType)

		amount, err := strconv.ParseInt(c.Amount, 10, 64)
		if err != nil {
			// 畸形金额退化为 0 继续输出，不中断整条流水线
			logger.Warnf("[balance] invalid amount %q for %s, treated as 0", c.Amount, c.CoinType)
			amount = 0
		}

		direction := core.BalanceDecrease
		if amount > 0 {
			direction = core.BalanceIncrease
		}

		absSui := math.Abs(float64(amount)) / consts.MistPerSui
		usd := absSui * tables.PriceUSD(displayType)
		if direction == core.BalanceIncrease {
			netUSD += usd
		} else {
			netUSD -= usd
		}

		out = append(out, core.BalanceChange{
			Owner:      c.Owner.Address(),
			CoinType:   displayType,
			Amount:     strconv.FormatInt(amount, 10),
			AmountSUI:  strconv.FormatFloat(absSui, 'f', consts.SuiDisplayDecimals, 64),
			ChangeType: direction,
			USDValue:   FormatUSD(usd),
		})
	}
	return out, netUSD
}

// FormatUSD 按额度分档格式化美元估值：
// 不足一美分给 "< $0.01"，1 美元内 3 位小数，1000 美元内 2 位小数，更大按千计。
func FormatUSD(usd float64) string {
	switch {
	case usd < 0.01:
		return "< $0.01"
	case usd < 1:
		return fmt.Sprintf("$%.3f", usd)
	case usd < 1000:
		return fmt.Sprintf("$%.2f", usd)
	default:
		return fmt.Sprintf("$%.2fK", usd/1000)
	}
}
