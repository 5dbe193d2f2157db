package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ─────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// config holding only the built-in defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxAttachmentSize, cfg.App.MaxAttachmentSize)
}

// TestBuild_MergePriority verifies that earlier configs win for non-zero
// fields, matching mergo's merge semantics.
func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "first:8080"}},
		&StructuredConfig{
			Server:  Server{HTTPAddress: "second:9090"},
			Storage: Storage{DB: DB{DSN: "postgres://second"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// first non-zero value wins; fields absent in the first config are
	// filled from the second
	assert.Equal(t, "first:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://second", cfg.Storage.DB.DSN)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// ── withJSON ─────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathSpecified verifies that withJSON is a no-op when no
// previous source provided a JSON file path.
func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_PathFromEarlierSource verifies that a JSON path set by an
// earlier source is picked up and the file parsed.
func TestWithJSON_PathFromEarlierSource(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"http_address": "json:8080"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json:8080", b.configs[1].Server.HTTPAddress)
}

// TestWithJSON_BadPath verifies that an unreadable JSON file records an error
// on the builder.
func TestWithJSON_BadPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()

	assert.Error(t, b.err)
}

// ── ClientConfig validation ──────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	valid := ClientConfig{
		App:     ClientApp{MaxAttachmentSize: DefaultMaxAttachmentSize},
		Adapter: ClientAdapter{BaseURL: "http://localhost:8080"},
		Storage: ClientStorage{DB: ClientDB{DSN: "client.db"}},
	}
	assert.NoError(t, valid.validate())

	noBase := valid
	noBase.Adapter.BaseURL = ""
	assert.ErrorIs(t, noBase.validate(), ErrInvalidAdapterConfigs)

	noDB := valid
	noDB.Storage.DB.DSN = ""
	assert.ErrorIs(t, noDB.validate(), ErrInvalidStorageConfigs)

	noLimit := valid
	noLimit.App.MaxAttachmentSize = 0
	assert.ErrorIs(t, noLimit.validate(), ErrInvalidAppConfigs)
}
