// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

// Package conf holds the aesbox tool's configuration: a string map
// with built-in defaults, optionally seeded from an ini file.
package conf

import (
	"strconv"
	"sync"
)

var defaultCfg = map[string]string{
	"Mode":         "auto",
	"BlockWords":   "4",
	"KeyWords":     "4",
	"Encoding":     "base64",
	"CharMarker":   "unibyte",
	"OCBThreshold": "20000",
	"LogPath":      "",
}

type Config struct {
	cfgMap map[string]string
	mutex  sync.RWMutex
}

// New creates a Config using cfgMap as the initial internal config
// map. If cfgMap is nil, New will create a new config map.
func New(cfgMap map[string]string) *Config {
	if cfgMap == nil {
		cfgMap = make(map[string]string)
	}
	return &Config{cfgMap: cfgMap}
}

// GetAll gets a copy of the Config's internal config map
func (cfg *Config) GetAll() (all map[string]string) {
	cfg.mutex.RLock()
	defer cfg.mutex.RUnlock()

	all = make(map[string]string)
	for k, v := range cfg.cfgMap {
		all[k] = v
	}
	return
}

// Set a new value for a config key
func (cfg *Config) Set(key string, value string) {
	cfg.mutex.Lock()
	defer cfg.mutex.Unlock()
	cfg.cfgMap[key] = value
}

// Reset the value of a config key
func (cfg *Config) Reset(key string) {
	cfg.mutex.Lock()
	defer cfg.mutex.Unlock()
	delete(cfg.cfgMap, key)
}

// StringValue gets the value of a specific config key encoded as a string
func (cfg *Config) StringValue(key string) (value string) {
	cfg.mutex.RLock()
	defer cfg.mutex.RUnlock()

	value, exists := cfg.cfgMap[key]
	if exists {
		return value
	}

	value, exists = defaultCfg[key]
	if exists {
		return value
	}

	return ""
}

// IntValue gets the value of a specific config key as an int
func (cfg *Config) IntValue(key string) (intval int) {
	str := cfg.StringValue(key)
	intval, _ = strconv.Atoi(str)
	return
}

// BoolValue gets the value of a specific config key as a bool
func (cfg *Config) BoolValue(key string) (boolval bool) {
	str := cfg.StringValue(key)
	boolval, _ = strconv.ParseBool(str)
	return
}
