package typefmt

import (
	"fmt"
	"regexp"
	"strings"

	"sui-tx-explainer/internal/consts"
)

var (
	// 通用 coin 包装类型：<addr>::coin::Coin<<addr>::<module>::<Symbol>>
	coinTypeRe = regexp.MustCompile(`::coin::Coin<.*::(\w+)::(\w+)>`)
	// LP 代币命名：LP_SUI_USDC / LP SUI USDC 等
	lpTypeRe = regexp.MustCompile(`(?i)LP[_\s]*(\w+)[_\s](\w+)`)
	// 带泛型参数的类型：Name<...>
	genericRe = regexp.MustCompile(`(\w+)<.*>`)
)

// FormatObjectType 把链上完整类型串压缩成简短展示名。
// 永不失败：任何无法识别的输入原样返回。
//
// 例："0x2::coin::Coin<0x2::sui::SUI>" → "SUI Coin"，
// "0xabc::nft::Hero" → "Hero"。
func FormatObjectType(raw string) string {
	if strings.Contains(raw, "::coin::Coin") {
		if m := coinTypeRe.FindStringSubmatch(raw); m != nil {
			return consts.TokenDisplayName(m[2]) + " Coin"
		}
		return "Coin"
	}

	if strings.Contains(raw, "LP") || strings.Contains(raw, "lp") {
		if m := lpTypeRe.FindStringSubmatch(raw); m != nil {
			return fmt.Sprintf("LP Token (%s-%s)", m[1], m[2])
		}
	}

	// 泛型只保留外层名字，不做更深的参数解析
	if strings.Contains(raw, "<") {
		if m := genericRe.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}

	parts := strings.Split(raw, "::")
	if len(parts) >= 3 {
		name := parts[len(parts)-1]
		if i := strings.IndexByte(name, '<'); i >= 0 {
			name = name[:i]
		}
		return CapitalizeWords(strings.ReplaceAll(name, "_", " "))
	}

	return raw
}

// CapitalizeWords 把空格分隔的单词逐个首字母大写："hero nft" → "Hero Nft"
func CapitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ShortenAddress 缩写长地址为「前 6 位…后 4 位」，短地址原样返回
func ShortenAddress(addr string) string {
	if len(addr) > consts.ShortAddrThreshold {
		return addr[:6] + "..." + addr[len(addr)-4:]
	}
	return addr
}
