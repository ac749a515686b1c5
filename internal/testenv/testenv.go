// Package testenv builds a fully wired AppContext for tests: in-memory
// SQLite with the real schema plus a miniredis instance.
package testenv

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oggyb/golf-buddy/internal/app"
	"github.com/oggyb/golf-buddy/internal/cache"
	"github.com/oggyb/golf-buddy/internal/config"
	"github.com/oggyb/golf-buddy/internal/db"
	applog "github.com/oggyb/golf-buddy/internal/logger"
)

// Env bundles what a service test needs to poke at.
type Env struct {
	App   *app.AppContext
	DB    *gorm.DB
	Redis *miniredis.Miniredis
}

// New spins up an isolated database named after the test and a fresh miniredis.
func New(t *testing.T) *Env {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	database, err := gorm.Open(sqlite.Open(dsn), db.GormConfig(logger.Discard))
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.Migrate(database))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := &config.Config{}
	cfg.Redis.Addr = mr.Addr()
	cfg.Cache.TTL = time.Hour
	cfg.Messages.DefaultLimit = 100

	rc := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = rc.Close() })

	return &Env{
		App:   app.New(cfg, database, rc, applog.Discard()),
		DB:    database,
		Redis: mr,
	}
}

// User inserts a golfer directly, bypassing service validation.
func (e *Env) User(t *testing.T, username, location string, level db.SkillLevel, handicap *int) db.User {
	t.Helper()
	u := db.User{
		Email:      username + "@test.com",
		Username:   username,
		FullName:   strings.ToUpper(username[:1]) + username[1:],
		SkillLevel: level,
		Handicap:   handicap,
		Location:   location,
	}
	require.NoError(t, e.DB.Create(&u).Error)
	return u
}

func IntPtr(v int) *int { return &v }

func StrPtr(v string) *string { return &v }
