package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellgrid/internal/domain"
	"cellgrid/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cs := &configService{filePath: filepath.Join(t.TempDir(), "config.toml")}
	cfg, err := cs.Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	cs := &configService{filePath: path}

	want := &Config{
		Version: 1,
		Rows:    3,
		Columns: 2,
		UISettings: UISettings{
			EditOnSelect: false,
			LogFile:      "grid.log",
		},
	}
	require.NoError(t, cs.Save(want))

	got, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadRepairsInvalidDimensions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	cs := &configService{filePath: path}
	require.NoError(t, cs.Save(&Config{Version: 1, Rows: 0, Columns: -2}))

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Rows, cfg.Rows)
	assert.Equal(t, DefaultConfig().Columns, cfg.Columns)
}

func TestLoadPublishesConfigLoaded(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()
	var loaded []domain.ConfigLoadedEvent
	bus.Subscribe(domain.EventConfigLoaded, func(e eventbus.DomainEvent) {
		loaded = append(loaded, e.(domain.ConfigLoadedEvent))
	})

	cs := &configService{bus: bus, filePath: filepath.Join(t.TempDir(), "config.toml")}
	_, err := cs.Load()

	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, DefaultConfig().Rows, loaded[0].Rows)
}
