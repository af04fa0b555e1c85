package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dlshle/golodash/test_utils"
	"github.com/spf13/viper"
)

func setup(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Chdir(wd)
		viper.Reset()
	})
}

func TestDefaults(t *testing.T) {
	setup(t)
	test_utils.NewGroup("config", "defaults").Cases(
		test_utils.New("setup without a file uses defaults", func() {
			test_utils.AssertNil(Setup())
			test_utils.AssertEquals(viper.GetString(LogLevel), "info")
			test_utils.AssertEquals(viper.GetString(LogBackend), BackendConsole)
			test_utils.AssertFalse(viper.GetBool(Timing))
		}),
		test_utils.New("logger respects the level", func() {
			var buf bytes.Buffer
			l := Logger(&buf)
			l.Debug(context.Background(), "hidden")
			test_utils.AssertEquals(buf.Len(), 0)
			l.Info(context.Background(), "shown")
			test_utils.AssertStringContains(buf.String(), "[golodash]")
		}),
	).Do(t)
}

func TestEnvAndFile(t *testing.T) {
	setup(t)
	t.Setenv("GOLODASH_LOG_LEVEL", "debug")
	err := os.WriteFile(filepath.Join(".", Name+".toml"), []byte("timing = true\n[log]\njson = true\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	test_utils.NewGroup("config", "env and file").Cases(
		test_utils.New("env and file override defaults", func() {
			test_utils.AssertNil(Setup())
			test_utils.AssertEquals(viper.GetString(LogLevel), "debug")
			test_utils.AssertTrue(viper.GetBool(Timing))
			test_utils.AssertTrue(viper.GetBool(LogJSON))
		}),
		test_utils.New("json console logger", func() {
			var buf bytes.Buffer
			Logger(&buf).Debug(context.Background(), "dbg")
			var decoded map[string]any
			test_utils.AssertNil(json.Unmarshal(buf.Bytes(), &decoded))
			test_utils.AssertEquals(decoded["level"].(string), "DEBUG")
		}),
		test_utils.New("logrus backend", func() {
			viper.Set(LogBackend, BackendLogrus)
			var buf bytes.Buffer
			Logger(&buf).Info(context.Background(), "via logrus")
			var decoded map[string]any
			test_utils.AssertNil(json.Unmarshal(buf.Bytes(), &decoded))
			test_utils.AssertEquals(decoded["msg"].(string), "via logrus")
		}),
	).Do(t)
}
