package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 扫描器完整配置
type Config struct {
	Scan    ScanConfig    `yaml:"scan"`
	Checks  ChecksConfig  `yaml:"checks"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
}

// ScanConfig 端口扫描默认参数，命令行参数优先
type ScanConfig struct {
	Ports       string `yaml:"ports"`       // top30, top100, all 或端口表达式
	TimeoutMS   int    `yaml:"timeout_ms"`  // 单个探测的超时时间(毫秒)
	Concurrency int    `yaml:"concurrency"` // 并发连接上限
}

// ChecksConfig 附加检查开关
type ChecksConfig struct {
	DNS     bool `yaml:"dns"`
	Headers bool `yaml:"headers"`
}

// HistoryConfig 扫描历史存储配置
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Ports:       "top30",
			TimeoutMS:   1000,
			Concurrency: 200,
		},
		Checks: ChecksConfig{
			DNS:     false,
			Headers: false,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "database/scan_history.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig 从YAML文件加载配置，文件中缺省的字段保持默认值
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("配置无效: %v", err)
	}

	return config, nil
}

// SaveConfig 将配置写入YAML文件
func SaveConfig(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("序列化配置失败: %v", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("写入配置文件失败: %v", err)
	}

	return nil
}

// Validate 校验配置合法性
func (c *Config) Validate() error {
	if c.Scan.Concurrency <= 0 {
		return fmt.Errorf("scan.concurrency 必须为正整数, 当前值: %d", c.Scan.Concurrency)
	}

	if c.Scan.TimeoutMS <= 0 {
		return fmt.Errorf("scan.timeout_ms 必须为正整数, 当前值: %d", c.Scan.TimeoutMS)
	}

	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("启用历史记录时 history.path 不能为空")
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("无效的日志级别: %s", c.Log.Level)
	}

	return nil
}

// Timeout 返回解析后的探测超时时间
func (s *ScanConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutMS) * time.Millisecond
}
