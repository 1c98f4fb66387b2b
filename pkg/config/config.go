package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/betbot/periodcount/pkg/periods"
)

// Config 应用配置
type Config struct {
	LogLevel     string            // 日志级别
	LogFile      string            // 日志文件路径（可选）
	Algorithm    periods.Algorithm // 计数算法：scan / mergesort
	ScenarioFile string            // 场景文件路径（可选）
	Color        bool              // 报告是否着色
}

// ConfigFile 配置文件结构（用于 YAML/JSON 解析）
type ConfigFile struct {
	LogLevel     string `yaml:"log_level" json:"log_level"`
	LogFile      string `yaml:"log_file" json:"log_file"`
	Algorithm    string `yaml:"algorithm" json:"algorithm"`
	ScenarioFile string `yaml:"scenario_file" json:"scenario_file"`
	Color        *bool  `yaml:"color" json:"color"`
}

// Load 加载配置
// 优先级：环境变量 > 配置文件 > 默认值（命令行参数由调用方再覆盖）
func Load(filePath string) (*Config, error) {
	var configFile *ConfigFile
	if filePath != "" {
		var err error
		configFile, err = loadConfigFile(filePath)
		if err != nil {
			return nil, errors.Wrapf(err, "加载配置文件失败 %s", filePath)
		}
	} else {
		configFile = &ConfigFile{}
	}

	color := true
	if configFile.Color != nil {
		color = *configFile.Color
	}

	algName := getEnv("PERIODCOUNT_ALGORITHM", configFile.Algorithm)
	alg, err := periods.ParseAlgorithm(algName)
	if err != nil {
		return nil, errors.Wrap(err, "algorithm 配置错误")
	}

	config := &Config{
		LogLevel:     getEnv("PERIODCOUNT_LOG_LEVEL", getValueOrDefault(configFile.LogLevel, "info")),
		LogFile:      getEnv("PERIODCOUNT_LOG_FILE", configFile.LogFile),
		Algorithm:    alg,
		ScenarioFile: getEnv("PERIODCOUNT_SCENARIOS", configFile.ScenarioFile),
		Color:        parseBoolEnv("PERIODCOUNT_COLOR", color),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// loadConfigFile 加载配置文件（支持 YAML 和 JSON）
func loadConfigFile(filePath string) (*ConfigFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "读取配置文件失败")
	}

	var configFile ConfigFile
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &configFile); err != nil {
			return nil, errors.Wrap(err, "解析 YAML 配置文件失败")
		}
	case ".json":
		if err := json.Unmarshal(data, &configFile); err != nil {
			return nil, errors.Wrap(err, "解析 JSON 配置文件失败")
		}
	default:
		return nil, errors.Errorf("不支持的配置文件格式: %s (支持 .yaml, .yml, .json)", ext)
	}

	return &configFile, nil
}

// Validate 验证配置
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return errors.Errorf("未知的日志级别: %s", c.LogLevel)
	}
	switch c.Algorithm {
	case periods.AlgorithmScan, periods.AlgorithmMergeSort:
	default:
		return errors.Errorf("未知的算法: %s", c.Algorithm)
	}
	return nil
}

func getValueOrDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseBoolEnv 解析布尔环境变量
func parseBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
