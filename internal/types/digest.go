package types

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// Digest 是 Sui 交易摘要（32 字节，base58 编码）
type Digest [32]byte

func (d Digest) String() string {
	return base58.Encode(d[:])
}

func (d Digest) Equals(other Digest) bool {
	return d == other
}

// TryDigestFromBase58 解析 base58 字符串为 Digest，失败时返回 error（用于不信任输入路径）
func TryDigestFromBase58(s string) (Digest, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return Digest{}, fmt.Errorf("failed to decode base58 digest %q: %w", s, err)
	}
	if len(data) != 32 {
		return Digest{}, fmt.Errorf("invalid digest length: got %d, want 32, input=%q", len(data), s)
	}
	var d Digest
	copy(d[:], data)
	return d, nil
}

// DigestFromBase58 同 TryDigestFromBase58，但解析失败直接 panic（仅用于可信常量）
func DigestFromBase58(s string) Digest {
	d, err := TryDigestFromBase58(s)
	if err != nil {
		panic(err)
	}
	return d
}
