// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"code.gitea.io/faceavatar/modules/log"
	"code.gitea.io/faceavatar/modules/test"
	"code.gitea.io/faceavatar/modules/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockAllSettings(t *testing.T) {
	t.Cleanup(test.MockVariableValue(&AppWorkPath, "/srv/faceavatar"))
	t.Cleanup(test.MockVariableValue(&Avatar))
	t.Cleanup(test.MockVariableValue(&CacheService))
	t.Cleanup(test.MockVariableValue(&CORSConfig))
	t.Cleanup(test.MockVariableValue(&Metrics))
	t.Cleanup(test.MockVariableValue(&Provider))
	t.Cleanup(test.MockVariableValue(&Log))
	t.Cleanup(test.MockVariableValue(&HTTPAddr))
	t.Cleanup(test.MockVariableValue(&HTTPPort))
}

func TestLoadCommonSettingsDefaults(t *testing.T) {
	mockAllSettings(t)
	cfg, err := NewConfigProviderFromData("")
	require.NoError(t, err)
	require.NoError(t, LoadCommonSettings(cfg))

	assert.Equal(t, "faceavatar", AppName)
	assert.True(t, IsProd)
	assert.Equal(t, "0.0.0.0:8080", ListenAddr())
	assert.Equal(t, 600, Avatar.Size)
	assert.Equal(t, 50, Avatar.SmallSpace)
	assert.Equal(t, filepath.Join("/srv/faceavatar", "Images"), Avatar.AssetPath)
	assert.Equal(t, 24*time.Hour, Avatar.CacheTime)
	assert.True(t, Avatar.AssetMatcher.Match("face01.png"))
	assert.False(t, Avatar.AssetMatcher.Match("face01.jpg"))
	assert.True(t, CacheService.Enabled)
	assert.Equal(t, 512, CacheService.Size)
	assert.Equal(t, 16*time.Hour, CacheService.TTL)
	assert.False(t, Metrics.Enabled)
	assert.False(t, CORSConfig.Enabled)
	assert.Equal(t, []string{"*"}, CORSConfig.AllowDomain)
	assert.Equal(t, "https://secure.gravatar.com/avatar", Provider.GravatarSource)
	assert.Equal(t, 10*time.Second, Provider.FetchTimeout)
	assert.Equal(t, log.INFO, Log.Level)
}

func TestLoadCommonSettings(t *testing.T) {
	mockAllSettings(t)
	cfg, err := NewConfigProviderFromData(`
APP_NAME = faces
RUN_MODE = dev

[server]
HTTP_ADDR = 127.0.0.1
HTTP_PORT = not-a-port
ENABLE_ACCESS_LOG = true

[avatar]
ASSET_PATH = /data/images
ASSET_PATTERN = {face,eye}*.{png,bmp}
SIZE = 240
CACHE_TIME = 1h

[cache]
ENABLED = false
SIZE = -3
ITEM_TTL = 30m

[log]
LEVEL = debug
FLAGS = level
COLORIZE = false

[metrics]
ENABLED = true
TOKEN = secret

[cors]
ENABLED = true
ALLOW_DOMAIN = https://a.example.com,https://b.example.com

[provider]
GRAVATAR_SOURCE = not a url
ROBOHASH_SOURCE = http://robohash.local/
FETCH_TIMEOUT = 2s
`)
	require.NoError(t, err)
	require.NoError(t, LoadCommonSettings(cfg))

	assert.Equal(t, "faces", AppName)
	assert.False(t, IsProd)
	assert.Equal(t, "127.0.0.1:8080", ListenAddr())
	assert.True(t, EnableAccessLog)
	assert.Equal(t, "/data/images", Avatar.AssetPath)
	assert.Equal(t, 240, Avatar.Size)
	assert.Equal(t, 20, Avatar.SmallSpace)
	assert.Equal(t, time.Hour, Avatar.CacheTime)
	assert.True(t, Avatar.AssetMatcher.Match("eyes3.bmp"))
	assert.True(t, Avatar.AssetMatcher.MatchBase("faces/face1.png"))
	assert.False(t, Avatar.AssetMatcher.Match("nose.png"))
	assert.False(t, CacheService.Enabled)
	assert.Equal(t, 512, CacheService.Size)
	assert.Equal(t, 30*time.Minute, CacheService.TTL)
	assert.Equal(t, log.DEBUG, Log.Level)
	assert.Equal(t, log.Llevel, Log.Flags)
	assert.False(t, Log.Colorize)
	assert.True(t, Metrics.Enabled)
	assert.Equal(t, "secret", Metrics.Token)
	assert.True(t, CORSConfig.Enabled)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, CORSConfig.AllowDomain)
	assert.Equal(t, "https://secure.gravatar.com/avatar", Provider.GravatarSource)
	assert.Equal(t, "http://robohash.local", Provider.RobohashSource)
	assert.Equal(t, 2*time.Second, Provider.FetchTimeout)
}

func TestLoadAvatarInvalidSize(t *testing.T) {
	mockAllSettings(t)
	cfg, err := NewConfigProviderFromData("[avatar]\nSIZE = 0\n")
	require.NoError(t, err)
	err = LoadCommonSettings(cfg)
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestNewConfigProviderFromFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewConfigProviderFromFile(filepath.Join(dir, "missing.ini"))
	require.NoError(t, err)
	assert.False(t, cfg.HasSection("avatar"))

	file := filepath.Join(dir, "app.ini")
	require.NoError(t, os.WriteFile(file, []byte("[avatar]\nSIZE = 128\n"), 0o644))
	cfg, err = NewConfigProviderFromFile(file)
	require.NoError(t, err)
	assert.True(t, cfg.HasSection("avatar"))
	assert.Equal(t, 128, cfg.Section("avatar").Key("SIZE").MustInt())

	cfg.Section("avatar").Key("SMALL_SPACE").SetValue("8")
	require.NoError(t, cfg.Save())
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\nSIZE = 128\n")
	assert.Contains(t, string(data), "\nSMALL_SPACE = 8\n")

	cfg, err = NewConfigProviderFromFile(file)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Section("avatar").Key("SMALL_SPACE").MustInt())
}

func TestInitWorkPathAndCfgProvider(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.ini"), []byte("APP_NAME = x\n"), 0o644))
	defer test.MockVariableValue(&AppWorkPath)()
	defer test.MockVariableValue(&CustomConf)()
	defer test.MockVariableValue(&CfgProvider)()

	require.NoError(t, InitWorkPathAndCfgProvider(dir, "custom.ini"))
	assert.Equal(t, filepath.Join(dir, "custom.ini"), CustomConf)
	assert.Equal(t, "x", CfgProvider.Section("").Key("APP_NAME").String())
}
