package main

import (
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ReturnsExitCodeOnBadDB(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DB_DRIVER", "oracle")

	assert.Equal(t, 1, run())
}

func TestRun_ReturnsExitCodeWhenRedisIsDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	t.Setenv("REDIS_ADDR", addr)

	assert.Equal(t, 1, run())
}
