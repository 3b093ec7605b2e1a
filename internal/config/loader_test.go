package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/pable/hoopmetrics/internal/config"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load("")

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.DefaultSort, convey.ShouldEqual, "points")
				convey.So(cfg.TopPlayers, convey.ShouldEqual, 0)
				convey.So(filepath.Base(cfg.DBPath), convey.ShouldEqual, "games.db")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("HOOPMETRICS_DB_PATH", "/tmp/hoops.db")
			_ = os.Setenv("HOOPMETRICS_LOG_LEVEL", "debug")
			_ = os.Setenv("HOOPMETRICS_TOP_PLAYERS", "5")
			defer clearConfigEnvVars()

			cfg, err := config.Load("")

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.DBPath, convey.ShouldEqual, "/tmp/hoops.db")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.TopPlayers, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			path := filepath.Join(t.TempDir(), "hoopmetrics.yaml")
			content := "db_path: /data/games.db\ndefault_sort: assists\nlog_level: info\n"
			convey.So(os.WriteFile(path, []byte(content), 0o644), convey.ShouldBeNil)

			cfg, err := config.Load(path)

			convey.Convey("Then it should use file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.DBPath, convey.ShouldEqual, "/data/games.db")
				convey.So(cfg.DefaultSort, convey.ShouldEqual, "assists")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			})

			convey.Convey("And env vars should win over the file", func() {
				_ = os.Setenv("HOOPMETRICS_DEFAULT_SORT", "steals")
				defer clearConfigEnvVars()

				cfg, err := config.Load(path)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.DefaultSort, convey.ShouldEqual, "steals")
				convey.So(cfg.DBPath, convey.ShouldEqual, "/data/games.db")
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, k := range []string{
		"HOOPMETRICS_CONFIG", "HOOPMETRICS_DB_PATH", "HOOPMETRICS_LOG_LEVEL",
		"HOOPMETRICS_DEFAULT_SORT", "HOOPMETRICS_TOP_PLAYERS",
	} {
		_ = os.Unsetenv(k)
	}
}
