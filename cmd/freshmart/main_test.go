package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/freshmart/internal/pkg/config"
)

func TestQuoteArgs(t *testing.T) {
	assert.Equal(t, "add Apple 1.50 10", quoteArgs([]string{"add", "Apple", "1.50", "10"}))
	assert.Equal(t, `add "Whole Milk" 2.49 1`, quoteArgs([]string{"add", "Whole Milk", "2.49", "1"}))
	assert.Equal(t, `remove ""`, quoteArgs([]string{"remove", ""}))
}

func TestApplyFlags(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.DriverSQLite, Path: "inventory.db"}}

	*dbPath = "shop.db"
	*driver = "SPANNER"
	t.Cleanup(func() { *dbPath, *driver = "", "" })

	applyFlags(cfg)
	assert.Equal(t, "shop.db", cfg.Store.Path)
	assert.Equal(t, config.DriverSpanner, cfg.Store.Driver)
	assert.Empty(t, cfg.Log.Level)
}
