package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/treeforest/easyb58/base58"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// 对外服务配置
	HttpServerPort int `yaml:"http_server_port"` // web监听端口
	ShutdownWait   int `yaml:"shutdown_wait"`    // 退出前等待的秒数

	// 编解码配置
	Width int `yaml:"width"` // 默认字节宽度: 16, 32 或 64

	Debug bool `yaml:"debug"` // 输出调试日志
}

func DefaultConfig() *Config {
	return &Config{
		HttpServerPort: 8080,
		ShutdownWait:   3,
		Width:          32,
		Debug:          false,
	}
}

// Validate checks the values Load cannot check by type alone.
func (c *Config) Validate() error {
	if !base58.ValidWidth(c.Width) {
		return errors.Errorf("width %d: must be 16, 32 or 64", c.Width)
	}
	if c.HttpServerPort <= 0 || c.HttpServerPort > 65535 {
		return errors.Errorf("http_server_port %d out of range", c.HttpServerPort)
	}
	if c.ShutdownWait < 0 {
		return errors.Errorf("shutdown_wait %d is negative", c.ShutdownWait)
	}
	return nil
}

func (c *Config) Unmarshal(b []byte) error {
	return yaml.Unmarshal(b, c)
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	conf := DefaultConfig()
	if path == "" {
		return conf, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err = conf.Unmarshal(data); err != nil {
		return nil, errors.WithStack(err)
	}
	if err = conf.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	return conf, nil
}
