package typefmt

import "testing"

func TestFormatObjectType(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		// coin 包装类型取内层符号并查展示名
		{"sui coin", "0x2::coin::Coin<0x2::sui::SUI>", "SUI Coin"},
		{"usdc coin", "0xdba3::coin::Coin<0xdba3::usdc::USDC>", "USDC Coin"},
		// 未收录符号原样返回
		{"unknown coin symbol", "0x9::coin::Coin<0x9::xyz::XYZ>", "XYZ Coin"},
		// coin 包装但内层不完整时退化为 Coin
		{"bare coin wrapper", "0x2::coin::Coin", "Coin"},
		// LP 代币
		{"lp token", "0xabc::pool::LP_SUI_USDC", "LP Token (SUI-USDC)"},
		// 泛型只保留外层名字
		{"generic pool", "0xabc::pool::Pool<0x2::sui::SUI, 0x9::usdc::USDC>", "Pool"},
		// 多段类型取末段并首字母大写
		{"plain struct", "0xabc::nft::Hero", "Hero"},
		{"underscored", "0xabc::registry::user_profile", "User Profile"},
		// 无法识别的输入原样返回
		{"passthrough", "JustAString", "JustAString"},
		{"single separator", "a::b", "a::b"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatObjectType(tc.in); got != tc.want {
				t.Errorf("FormatObjectType(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestShortenAddress(t *testing.T) {
	long := "0x1eabed72c53feb3805120a081dc15963c204dc8d091542592abaf7a35689b2fb"
	got := ShortenAddress(long)
	want := "0x1eab...b2fb"
	if got != want {
		t.Errorf("ShortenAddress(long) = %q, want %q", got, want)
	}

	// 不超过阈值的地址原样返回
	short := "0x2"
	if got := ShortenAddress(short); got != short {
		t.Errorf("ShortenAddress(%q) = %q, want unchanged", short, got)
	}
}
