package svc

import (
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/redis/go-redis/v9"

	"sui-tx-explainer/internal/cache"
	"sui-tx-explainer/internal/config"
	"sui-tx-explainer/internal/logic/explain"
	"sui-tx-explainer/internal/mq"
	"sui-tx-explainer/internal/service"
	"sui-tx-explainer/pkg/logger"
)

// ServiceContext 包含解释服务的全部共享资源
type ServiceContext struct {
	Config    config.ServerConfig
	Tables    *cache.StaticTables
	Producer  *kafka.Producer
	Explainer *service.ExplainerService
}

// NewServiceContext 创建服务上下文。Redis 与 Kafka 均为可选资源，
// 未配置时服务退化为 获取 → 解读 的纯路径。
func NewServiceContext(c config.ServerConfig) (*ServiceContext, error) {
	// 1. 查表数据：优先外部 yaml，缺省用内置表
	tables := cache.DefaultTables()
	if c.TablesFile != "" {
		loaded, err := cache.LoadTables(c.TablesFile)
		if err != nil {
			logger.Errorf("加载价格/均值表失败: %v", err)
			return nil, err
		}
		tables = loaded
	}

	// 2. 可选的解释结果缓存
	var explainCache *cache.ExplainCache
	if c.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		explainCache = cache.NewExplainCache(rdb, time.Duration(c.CacheTTLSec)*time.Second)
	}

	// 3. 可选的 Kafka 发布
	var producer *kafka.Producer
	var sender *mq.ExplanationSender
	if c.KafkaProducerConf.Enabled() {
		p, err := mq.NewKafkaProducer(c.KafkaProducerConf.ToKafkaOption())
		if err != nil {
			logger.Errorf("Kafka producer 初始化失败: %v", err)
			return nil, err
		}
		producer = p
		sender = mq.NewExplanationSender(p, c.KafkaProducerConf.Topic,
			time.Duration(c.KafkaProducerConf.SendTimeoutMs)*time.Millisecond)
	}

	// 4. 组装 获取 → 解读 → 缓存/发布 的服务
	rpc := service.NewSuiRPCClient(c.SuiRPCConf.Endpoint, time.Duration(c.SuiRPCConf.TimeoutSec)*time.Second)
	explainer := service.NewExplainerService(rpc, explain.NewPipeline(tables), explainCache, sender)

	logger.Infof("服务上下文初始化完成, endpoint=%s", c.SuiRPCConf.Endpoint)
	return &ServiceContext{
		Config:    c,
		Tables:    tables,
		Producer:  producer,
		Explainer: explainer,
	}, nil
}

// Close 关闭服务上下文中的资源
func (ctx *ServiceContext) Close() {
	if ctx.Producer != nil {
		ctx.Producer.Close()
	}
}
