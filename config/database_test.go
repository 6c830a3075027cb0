package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// unreachableConfig points at a local port nothing listens on
func unreachableConfig() *Config {
	return &Config{
		DBHost:           "127.0.0.1",
		DBPort:           "1",
		DBUser:           "orders",
		DBName:           "orders",
		DBSSLMode:        "disable",
		DBConnectTimeout: 1,
		LogLevel:         "error",
	}
}

func TestConnectDatabaseStoreDown(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	db, err := ConnectDatabase(unreachableConfig(), log)
	require.NoError(t, err, "an unreachable store must not stop startup")
	require.NotNil(t, db)
	t.Cleanup(func() { _ = CloseDatabase(db) })

	assert.Equal(t, 1, logs.FilterMessage("Database is not reachable yet").Len())

	// schema setup reports the failure instead of exiting
	assert.Error(t, EnsureOrdersSchema(db, zap.NewNop()))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping())
}

func TestConnectDatabaseInvalidDSN(t *testing.T) {
	_, err := ConnectDatabase(&Config{DatabaseURL: "postgres://orders@127.0.0.1:notaport/orders"}, zap.NewNop())
	assert.Error(t, err)
}
