package config

import (
	"sui-tx-explainer/internal/mq"
	"sui-tx-explainer/pkg/logger"
)

type LogConfig struct {
	Format   string `yaml:"format"`   // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir"`  // 日志目录（可为相对路径或绝对路径）
	Level    string `yaml:"level"`    // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// SuiRPCConfig 表示 Sui 全节点 JSON-RPC 配置
type SuiRPCConfig struct {
	Endpoint   string `yaml:"endpoint"`    // 全节点地址，例如 https://fullnode.mainnet.sui.io
	TimeoutSec int    `yaml:"timeout_sec"` // 单次请求超时（秒）
}

// KafkaProducerConfig 表示 Kafka 生产者相关配置；Brokers 为空则不启用发布
type KafkaProducerConfig struct {
	Brokers       string `yaml:"brokers"`         // Kafka broker 地址，多个用英文逗号分隔
	BatchSize     int    `yaml:"batch_size"`      // 批处理大小（单位字节）
	LingerMs      int    `yaml:"linger_ms"`       // 批处理最大延迟（毫秒）
	Topic         string `yaml:"topic"`           // 解释结果发布 topic
	Partitions    int    `yaml:"partitions"`      // topic 的分区数
	SendTimeoutMs int    `yaml:"send_timeout_ms"` // 单条消息发送并等待 ack 的超时（毫秒）
}

func (c *KafkaProducerConfig) Enabled() bool {
	return c.Brokers != ""
}

func (c *KafkaProducerConfig) ToKafkaOption() mq.KafkaProducerOption {
	return mq.KafkaProducerOption{
		Brokers:    c.Brokers,
		BatchSize:  c.BatchSize,
		LingerMs:   c.LingerMs,
		Topic:      c.Topic,
		Partitions: c.Partitions,
	}
}

// ServerConfig 是主配置结构体，用于驱动解释服务
type ServerConfig struct {
	Host string `yaml:"host"` // HTTP 监听地址
	Port int    `yaml:"port"` // HTTP 监听端口

	LogConf           LogConfig           `yaml:"logger"`         // 日志配置
	SuiRPCConf        SuiRPCConfig        `yaml:"sui_rpc"`        // 全节点配置
	KafkaProducerConf KafkaProducerConfig `yaml:"kafka_producer"` // Kafka 生产者配置

	RedisAddr   string `yaml:"redis_addr"`    // Redis 地址，为空则不启用缓存
	CacheTTLSec int    `yaml:"cache_ttl_sec"` // 解释结果缓存 TTL（秒）

	TablesFile string `yaml:"tables_file"` // 价格/均值表 yaml 文件，为空用内置默认表
}
