package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harrisonrobin/orgwatch/pkg/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.InheritTags)
	assert.Equal(t, 1440, cfg.Windows.DeadlineGrace)
	assert.Equal(t, "08:00", cfg.ScheduleTime)
	assert.Equal(t, "23:59", cfg.DeadlineTime)
	assert.Equal(t, "tasklist", cfg.ReportName)
	assert.False(t, cfg.LinkMode)

	// Empty filter lists mean everything is admitted.
	rules := cfg.Rules()
	assert.True(t, rules.Admit([]string{"anything"}, "TODO", nil))
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Windows.ScheduleLead = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.DeadlineTime = "noon"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ReportName = ""
	assert.Error(t, cfg.Validate())
}

func TestLoaderReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
files:
  - work.org
tags_include: [work]
props_exclude:
  - key: STYLE
    value: habit
windows:
  deadline_grace: 600
link_mode: true
`), 0644))

	loader := NewLoader()
	loader.SetConfigFile(path)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"work.org"}, cfg.Files)
	assert.Equal(t, []string{"work"}, cfg.TagsInclude)
	assert.Equal(t, []filter.Property{{Key: "STYLE", Value: "habit"}}, cfg.PropsExclude)
	assert.Equal(t, 600, cfg.Windows.DeadlineGrace)
	assert.Equal(t, 30, cfg.Windows.ScheduleLead, "unset windows keep their defaults")
	assert.True(t, cfg.LinkMode)
}

func TestLoaderFailsOnMissingExplicitFile(t *testing.T) {
	loader := NewLoader()
	loader.SetConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := loader.Load()
	assert.Error(t, err)
}

func TestScanOptionsCarryDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TagsExclude = []string{"someday"}
	opts := cfg.ScanOptions()

	assert.Equal(t, "08:00", opts.ScheduleTime)
	assert.Equal(t, "23:59", opts.DeadlineTime)
	assert.Equal(t, []string{"someday"}, opts.Rules.TagsExclude)
	assert.True(t, opts.Rules.InheritTags)
}
