package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	SLOT_DURATION    = 30 * time.Second
	SAMPLE_PERIOD    = 250 * time.Millisecond
	MONITOR_INTERVAL = 5 * time.Second

	CONTROL_MIN = -1.0
	CONTROL_MAX = 1.0
)

type Config struct {
	RedisAddr  string `yaml:"redis_addr"`
	ListenAddr string `yaml:"listen_addr"`

	SlotDurationSecs    int `yaml:"slot_duration_secs"`
	SamplePeriodMillis  int `yaml:"sample_period_millis"`
	MonitorIntervalSecs int `yaml:"monitor_interval_secs"`

	AdminToken string        `yaml:"admin_token"`
	PubNub     *PubNubConfig `yaml:"pubnub"`
}

type PubNubConfig struct {
	PublishKey     string `yaml:"publish_key"`
	SubscribeKey   string `yaml:"subscribe_key"`
	SecretKey      string `yaml:"secret_key"`
	UserID         string `yaml:"user_id"`
	DisplayChannel string `yaml:"display_channel"`
}

// LoadConfig reads the YAML file at path when it exists, then applies
// environment overrides. A missing file is not an error; defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		RedisAddr:           "localhost:6379",
		ListenAddr:          ":8081",
		SlotDurationSecs:    int(SLOT_DURATION / time.Second),
		SamplePeriodMillis:  int(SAMPLE_PERIOD / time.Millisecond),
		MonitorIntervalSecs: int(MONITOR_INTERVAL / time.Second),
		PubNub: &PubNubConfig{
			UserID:         "control-queue-server",
			DisplayChannel: "control-display",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if cfg.PubNub == nil {
		cfg.PubNub = &PubNubConfig{
			UserID:         "control-queue-server",
			DisplayChannel: "control-display",
		}
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	}
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if token := os.Getenv("ADMIN_TOKEN"); token != "" {
		cfg.AdminToken = token
	}
	if key := os.Getenv("PN_PUBLISH_KEY"); key != "" {
		cfg.PubNub.PublishKey = key
	}
	if key := os.Getenv("PN_SUBSCRIBE_KEY"); key != "" {
		cfg.PubNub.SubscribeKey = key
	}
	if key := os.Getenv("PN_SECRET_KEY"); key != "" {
		cfg.PubNub.SecretKey = key
	}

	if cfg.SlotDurationSecs <= 0 {
		return nil, fmt.Errorf("slot_duration_secs must be positive, got %d", cfg.SlotDurationSecs)
	}
	if cfg.SamplePeriodMillis <= 0 {
		return nil, fmt.Errorf("sample_period_millis must be positive, got %d", cfg.SamplePeriodMillis)
	}
	if cfg.MonitorIntervalSecs <= 0 {
		return nil, fmt.Errorf("monitor_interval_secs must be positive, got %d", cfg.MonitorIntervalSecs)
	}

	return cfg, nil
}

func (c *Config) SlotDuration() time.Duration {
	return time.Duration(c.SlotDurationSecs) * time.Second
}

func (c *Config) SamplePeriod() time.Duration {
	return time.Duration(c.SamplePeriodMillis) * time.Millisecond
}

func (c *Config) MonitorInterval() time.Duration {
	return time.Duration(c.MonitorIntervalSecs) * time.Second
}
