package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomoyu/pkg/config"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.Equal(t, "gbk", cfg.Encoding)
	assert.Equal(t, "javascript", cfg.Language)
	assert.Equal(t, ".txt", cfg.SourceExt)
	assert.Equal(t, config.SourceFormatAuto, cfg.SourceFormat)
	assert.Equal(t, 80, cfg.WrapWidth)
	assert.Equal(t, 15, cfg.MethodPeriod)
	assert.Equal(t, "  ", cfg.Indent)
	assert.False(t, cfg.LegacyTrailingClose)
	assert.False(t, cfg.Backups.Enabled)
	assert.Nil(t, cfg.Seed)
}

func TestSourceFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.SourceFormatAuto.IsValid())
	assert.True(t, config.SourceFormatText.IsValid())
	assert.True(t, config.SourceFormatMarkdown.IsValid())
	assert.False(t, config.SourceFormat("html").IsValid())
	assert.False(t, config.SourceFormat("").IsValid())
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("parses known fields", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte(`
encoding: big5
language: typescript
wrap_width: 40
backups:
  enabled: true
`))
		require.NoError(t, err)
		assert.Equal(t, "big5", cfg.Encoding)
		assert.Equal(t, "typescript", cfg.Language)
		assert.Equal(t, 40, cfg.WrapWidth)
		assert.True(t, cfg.Backups.Enabled)
	})

	t.Run("empty document yields zero config", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte("  \n"))
		require.NoError(t, err)
		assert.Empty(t, cfg.Encoding)

		cfg, err = config.FromYAML([]byte("# only a comment\n"))
		require.NoError(t, err)
		assert.Empty(t, cfg.Encoding)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("flavor: gfm\n"))
		require.Error(t, err)
	})
}

func TestToYAML_RoundTripsPersistedFields(t *testing.T) {
	t.Parallel()

	seed := int64(7)
	cfg := config.NewConfig()
	cfg.Seed = &seed
	cfg.Output = "ignored.js"

	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "ignored.js")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Encoding, parsed.Encoding)
	assert.Equal(t, cfg.Indent, parsed.Indent)
	assert.Nil(t, parsed.Seed)
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	minimal, err := config.GenerateTemplate(config.TemplateOptions{})
	require.NoError(t, err)
	cfg, err := config.FromYAML(minimal)
	require.NoError(t, err)
	assert.Equal(t, "gbk", cfg.Encoding)

	full, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
	require.NoError(t, err)
	cfg, err = config.FromYAML(full)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultMethodPeriod, cfg.MethodPeriod)
	assert.Equal(t, config.SourceFormatAuto, cfg.SourceFormat)
}
