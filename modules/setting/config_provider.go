// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"fmt"

	"code.gitea.io/faceavatar/modules/log"
	"code.gitea.io/faceavatar/modules/util"

	"gopkg.in/ini.v1" //nolint:depguard
)

func init() {
	ini.PrettyFormat = false
}

// ConfigSection is a section of the configuration
type ConfigSection interface {
	Name() string
	MapTo(any) error
	HasKey(key string) bool
	Key(key string) *ini.Key
	Keys() []*ini.Key
}

// ConfigProvider represents a config provider
type ConfigProvider interface {
	Section(section string) ConfigSection
	HasSection(name string) bool
	Save() error
}

type iniConfigProvider struct {
	file string
	ini  *ini.File
}

var _ ConfigProvider = (*iniConfigProvider)(nil)

func (p *iniConfigProvider) Section(section string) ConfigSection {
	return p.ini.Section(section)
}

func (p *iniConfigProvider) HasSection(name string) bool {
	_, err := p.ini.GetSection(name)
	return err == nil
}

// Save writes the configuration back to the file it was read from
func (p *iniConfigProvider) Save() error {
	if p.file == "" {
		return fmt.Errorf("config provider was not loaded from a file")
	}
	return p.ini.SaveTo(p.file)
}

func newLoadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		KeyValueDelimiterOnWrite: " = ",
		IgnoreContinuation:       true,
	}
}

// NewConfigProviderFromData reads INI data, mostly used by tests
func NewConfigProviderFromData(configContent string) (ConfigProvider, error) {
	cfg, err := ini.LoadSources(newLoadOptions(), []byte(configContent))
	if err != nil {
		return nil, err
	}
	cfg.NameMapper = ini.SnackCase
	return &iniConfigProvider{ini: cfg}, nil
}

// NewConfigProviderFromFile loads the config file, a missing file gives an empty configuration
func NewConfigProviderFromFile(file string) (ConfigProvider, error) {
	cfg := ini.Empty(newLoadOptions())
	if file != "" {
		exist, err := util.IsFile(file)
		if err != nil {
			return nil, fmt.Errorf("unable to check if %q is a file: %w", file, err)
		}
		if exist {
			if err := cfg.Append(file); err != nil {
				return nil, fmt.Errorf("failed to load config file %q: %w", file, err)
			}
		} else {
			log.Warn("Config file %q does not exist, using defaults", file)
		}
	}
	cfg.NameMapper = ini.SnackCase
	return &iniConfigProvider{file: file, ini: cfg}, nil
}

func mustMapSetting(rootCfg ConfigProvider, sectionName string, setting any) {
	if err := rootCfg.Section(sectionName).MapTo(setting); err != nil {
		log.Fatal("Failed to map %s settings: %v", sectionName, err)
	}
}
