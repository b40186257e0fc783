package service

import (
	"context"
	"fmt"

	"sui-tx-explainer/internal/cache"
	"sui-tx-explainer/internal/logic/core"
	"sui-tx-explainer/internal/logic/explain"
	"sui-tx-explainer/internal/mq"
	"sui-tx-explainer/internal/types"
	"sui-tx-explainer/pkg/logger"
)

// ExplainerService 串起 缓存 → 获取 → 解读 → 发布 的完整路径。
// 缓存与发布都是可选资源，缺席时只走 获取 → 解读。
type ExplainerService struct {
	rpc      *SuiRPCClient
	pipeline *explain.Pipeline
	cache    *cache.ExplainCache   // 可为 nil
	sender   *mq.ExplanationSender // 可为 nil
}

func NewExplainerService(rpc *SuiRPCClient, pipeline *explain.Pipeline, c *cache.ExplainCache, sender *mq.ExplanationSender) *ExplainerService {
	return &ExplainerService{rpc: rpc, pipeline: pipeline, cache: c, sender: sender}
}

// ExplainByDigest 返回 digest 对应交易的完整解释。
// 同一 digest 的解释结果确定且不可变，缓存命中时原样返回。
func (s *ExplainerService) ExplainByDigest(ctx context.Context, digest string) (*core.TransactionExplanation, error) {
	if _, err := types.TryDigestFromBase58(digest); err != nil {
		return nil, fmt.Errorf("invalid transaction digest: %w", err)
	}

	if s.cache != nil {
		expl, hit, err := s.cache.Get(ctx, digest)
		if err != nil {
			logger.Warnf("[explainer] cache get failed for %s: %v", digest, err)
		} else if hit {
			return expl, nil
		}
	}

	tx, err := s.rpc.GetTransactionBlock(ctx, digest)
	if err != nil {
		return nil, fmt.Errorf("fetch transaction %s: %w", digest, err)
	}

	expl, err := s.pipeline.Explain(tx)
	if err != nil {
		return nil, err
	}

	// 缓存与发布都是尽力而为，失败不影响本次响应
	if s.cache != nil {
		if err := s.cache.Set(ctx, digest, expl); err != nil {
			logger.Warnf("[explainer] cache set failed for %s: %v", digest, err)
		}
	}
	if s.sender != nil {
		if err := s.sender.Send(ctx, expl); err != nil {
			logger.Warnf("[explainer] publish failed for %s: %v", digest, err)
		}
	}
	return expl, nil
}
