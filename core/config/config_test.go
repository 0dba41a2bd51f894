package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaily/falco/core/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRead_LaterSourcesOverride(t *testing.T) {
	t.Parallel()

	mgr, err := config.Read(
		config.Map(map[string]any{"server.addr": ":8080", "app.name": "base"}),
		config.Map(map[string]any{"server.addr": ":9090"}),
	)
	require.NoError(t, err)

	assert.Equal(t, ":9090", mgr.String("server.addr", ""))
	assert.Equal(t, "base", mgr.String("app.name", ""))
}

func TestRead_MissingRequiredFileFails(t *testing.T) {
	t.Parallel()

	_, err := config.Read(config.JSONFile("/nonexistent/app.json"))

	var missing *config.MissingSourceError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "/nonexistent/app.json", missing.Path)
}

func TestRead_MissingOptionalFileSkipped(t *testing.T) {
	t.Parallel()

	mgr, err := config.Read(
		config.JSONFile("/nonexistent/app.json").Optional(),
		config.Map(map[string]any{"app.name": "demo"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "demo", mgr.String("app.name", ""))
}

func TestRead_OptionalFileStillFailsOnBadContent(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "bad.json", "{not json")

	_, err := config.Read(config.JSONFile(path).Optional())
	require.Error(t, err)
}

func TestJSONFile_FlattensNestedObjects(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.json", `{"Server": {"Addr": ":8080", "timeout": "5s"}, "debug": true}`)

	mgr, err := config.Read(config.JSONFile(path))
	require.NoError(t, err)

	assert.Equal(t, ":8080", mgr.String("server.addr", ""))
	assert.Equal(t, "5s", mgr.String("server.timeout", ""))

	v, ok := mgr.Get("debug")
	require.True(t, ok)
	assert.Equal(t, true, v)
}

func TestINIFile_SectionsPrefixKeys(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.ini", "name = demo\n\n[Server]\nAddr = :8080\n")

	mgr, err := config.Read(config.INIFile(path))
	require.NoError(t, err)

	assert.Equal(t, "demo", mgr.String("name", ""))
	assert.Equal(t, ":8080", mgr.String("server.addr", ""))
}

func TestXMLFile_DottedKeysWithoutRoot(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.xml", `<config><server><addr>:8080</addr></server><name>demo</name></config>`)

	mgr, err := config.Read(config.XMLFile(path))
	require.NoError(t, err)

	assert.Equal(t, ":8080", mgr.String("server.addr", ""))
	assert.Equal(t, "demo", mgr.String("name", ""))
}

func TestEnv_PrefixStripAndMapping(t *testing.T) {
	t.Setenv("FALCOCFG_SERVER_ADDR", ":7070")
	t.Setenv("FALCOCFG_NAME", "from-env")
	t.Setenv("OTHER_NAME", "ignored")

	mgr, err := config.Read(config.Env("FALCOCFG_"))
	require.NoError(t, err)

	assert.Equal(t, ":7070", mgr.String("server.addr", ""))
	assert.Equal(t, "from-env", mgr.String("name", ""))
	_, ok := mgr.Get("other.name")
	assert.False(t, ok)
}

func TestArgs(t *testing.T) {
	t.Parallel()

	mgr, err := config.Read(config.Args([]string{
		"--server.addr=:6060",
		"NAME=demo",
		"positional",
		"--=empty-key-ignored",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":6060", mgr.String("server.addr", ""))
	assert.Equal(t, "demo", mgr.String("name", ""))
}

func TestString_Fallback(t *testing.T) {
	t.Parallel()

	mgr, err := config.Read()
	require.NoError(t, err)
	assert.Equal(t, "default", mgr.String("missing", "default"))
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	type serverCfg struct {
		Addr    string        `config:"addr"`
		Timeout time.Duration `config:"timeout"`
	}
	type appCfg struct {
		Name   string    `config:"name"`
		Debug  bool      `config:"debug"`
		Server serverCfg `config:"server"`
	}

	mgr, err := config.Read(config.Map(map[string]any{
		"name":           "demo",
		"debug":          "true",
		"server.addr":    ":8080",
		"server.timeout": "30s",
	}))
	require.NoError(t, err)

	var cfg appCfg
	require.NoError(t, mgr.Unmarshal(&cfg))

	assert.Equal(t, "demo", cfg.Name)
	assert.True(t, cfg.Debug)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
}

func TestLoad_CachesPerType(t *testing.T) {
	type cacheProbe struct {
		Value string `env:"FALCO_CACHE_PROBE" envDefault:"unset"`
	}

	t.Setenv("FALCO_CACHE_PROBE", "first")
	var a cacheProbe
	require.NoError(t, config.Load(&a))
	assert.Equal(t, "first", a.Value)

	t.Setenv("FALCO_CACHE_PROBE", "second")
	var b cacheProbe
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Value, "same type resolves from cache")
}

func TestLoad_NilTarget(t *testing.T) {
	t.Parallel()

	require.Error(t, config.Load[struct{}](nil))
}
