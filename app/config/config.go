package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type SearchCfg struct {
	DefaultLimit int `yaml:"default_limit" json:"default_limit"`
	MaxLimit     int `yaml:"max_limit" json:"max_limit"`
}

type CacheCfg struct {
	L1Size     int `yaml:"l1_size" json:"l1_size"`
	TTLSeconds int `yaml:"ttl_seconds" json:"ttl_seconds"`
}

type StoreCfg struct {
	Collection string `yaml:"collection" json:"collection"`
}

type ServiceCfg struct {
	Search SearchCfg `yaml:"search" json:"search"`
	Cache  CacheCfg  `yaml:"cache" json:"cache"`
	Store  StoreCfg  `yaml:"store" json:"store"`
}

var C = ServiceCfg{
	Search: SearchCfg{DefaultLimit: 200, MaxLimit: 1000},
	Cache:  CacheCfg{L1Size: 256, TTLSeconds: 3600},
	Store:  StoreCfg{Collection: "properties"},
}

// Load đọc config file yaml; file không tồn tại thì giữ defaults.
func Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(b, &C)
}

func CacheTTL() time.Duration {
	return time.Duration(C.Cache.TTLSeconds) * time.Second
}
