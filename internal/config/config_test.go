package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HEITN_LOCALE", "he-IL")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, tracing.LevelInfo, cfg.Log.TraceLevel())
	require.True(t, cfg.Hebrew())
	opts := cfg.Grammar.Options()
	require.Empty(t, opts.CacheDir)
	require.False(t, opts.OverwriteCache)
}

func TestLoadYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	whitelist := filepath.Join(dir, "whitelist.tsv")
	require.NoError(t, os.WriteFile(whitelist, []byte("דוקטור\tד״ר\n"), 0o644))
	path := filepath.Join(dir, "heitn.yaml")
	yaml := "grammar:\n" +
		"  cache_dir: " + dir + "\n" +
		"  whitelist: " + whitelist + "\n" +
		"  locale: en-US\n" +
		"server:\n" +
		"  port: 9090\n" +
		"log:\n" +
		"  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("HEITN_OVERWRITE_CACHE", "true")
	//
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, tracing.LevelDebug, cfg.Log.TraceLevel())
	require.False(t, cfg.Hebrew())
	opts := cfg.Grammar.Options()
	require.Equal(t, dir, opts.CacheDir)
	require.Equal(t, whitelist, opts.WhitelistPath)
	require.True(t, opts.OverwriteCache)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Setenv("HEITN_LOCALE", "he")
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Server.Port = 0
	cfg.Log.Level = "verbose"
	cfg.Grammar.Whitelist = filepath.Join(t.TempDir(), "missing.tsv")
	cfg.Grammar.Locale = "not a locale"
	err = cfg.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, errInvalid))
	require.Contains(t, err.Error(), "server.port")
	require.Contains(t, err.Error(), "log.level")
	require.Contains(t, err.Error(), "grammar.whitelist")
	require.Contains(t, err.Error(), "grammar.locale")
}

func TestHostLocaleIsUsable(t *testing.T) {
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "C")
	require.Equal(t, defaultLocale, hostLocale())
	t.Setenv("LANG", "he_IL.UTF-8")
	require.Equal(t, "he-IL", hostLocale())
}
