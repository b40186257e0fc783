package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sui-tx-explainer/internal/logic/core"
)

// 交易一经最终化即不可变，解释结果可按 digest 原样缓存
const explainKeyPrefix = "explain:tx"

const defaultExplainTTL = 24 * time.Hour

// ExplainCache 管理 Redis 中按 digest 缓存的解释结果
type ExplainCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewExplainCache 创建解释结果缓存，ttl<=0 时使用默认 24h
func NewExplainCache(rdb *redis.Client, ttl time.Duration) *ExplainCache {
	if ttl <= 0 {
		ttl = defaultExplainTTL
	}
	return &ExplainCache{rdb: rdb, ttl: ttl}
}

func (c *ExplainCache) key(digest string) string {
	return fmt.Sprintf("%s:%s", explainKeyPrefix, digest)
}

// Get 读取缓存的解释结果，未命中返回 (nil, false, nil)
func (c *ExplainCache) Get(ctx context.Context, digest string) (*core.TransactionExplanation, bool, error) {
	data, err := c.rdb.Get(ctx, c.key(digest)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("redis get error: %w", err)
	}

	var expl core.TransactionExplanation
	if err := json.Unmarshal(data, &expl); err != nil {
		// 缓存损坏按未命中处理，交由上层重算覆盖
		return nil, false, nil
	}
	return &expl, true, nil
}

// Set 写入解释结果，失败只返回 error 由调用方决定是否忽略
func (c *ExplainCache) Set(ctx context.Context, digest string, expl *core.TransactionExplanation) error {
	data, err := json.Marshal(expl)
	if err != nil {
		return fmt.Errorf("marshal explanation: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key(digest), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}
