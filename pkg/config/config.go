// Package config handles orgwatch configuration loading and validation.
package config

import (
	"fmt"
	"regexp"

	"github.com/harrisonrobin/orgwatch/pkg/classify"
	"github.com/harrisonrobin/orgwatch/pkg/filter"
	"github.com/harrisonrobin/orgwatch/pkg/logging"
	"github.com/harrisonrobin/orgwatch/pkg/scan"
)

// Config is the root configuration structure for orgwatch. Every field
// has a default; an empty include list admits everything on its axis
// and an empty exclude list excludes nothing.
type Config struct {
	// Files is the list of org files scanned by default.
	Files []string `mapstructure:"files"`

	// FilesInclude and FilesExclude admit files by base name.
	FilesInclude []string `mapstructure:"files_include"`
	FilesExclude []string `mapstructure:"files_exclude"`

	TagsInclude     []string `mapstructure:"tags_include"`
	TagsExclude     []string `mapstructure:"tags_exclude"`
	KeywordsInclude []string `mapstructure:"keywords_include"`
	KeywordsExclude []string `mapstructure:"keywords_exclude"`

	PropsInclude []filter.Property `mapstructure:"props_include"`
	PropsExclude []filter.Property `mapstructure:"props_exclude"`

	// InheritTags makes entries carry ancestor and file-level tags
	// through the tag filters.
	InheritTags bool `mapstructure:"inherit_tags"`

	// Windows are the four alert windows in minutes.
	Windows classify.Windows `mapstructure:"windows"`

	// ScheduleTime and DeadlineTime are the default times-of-day
	// ("HH:MM") injected into date-only timestamps, per axis.
	ScheduleTime string `mapstructure:"schedule_time"`
	DeadlineTime string `mapstructure:"deadline_time"`

	// ReportName names the report surface; the file surface writes
	// "<name>.org" into ReportDir.
	ReportName string `mapstructure:"report_name"`
	ReportDir  string `mapstructure:"report_dir"`

	// LinkMode renders task names as org links to their source entries.
	LinkMode bool `mapstructure:"link_mode"`

	Logging logging.Config `mapstructure:"logging"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		InheritTags: true,
		Windows: classify.Windows{
			ScheduleLead:  30,
			DeadlineLead:  60,
			ScheduleGrace: 60,
			DeadlineGrace: 1440,
		},
		ScheduleTime: "08:00",
		DeadlineTime: "23:59",
		ReportName:   "tasklist",
		ReportDir:    ".",
		Logging:      logging.DefaultConfig(),
	}
}

var timeOfDayRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)

// Validate checks invariants the rest of the pipeline relies on.
func (c *Config) Validate() error {
	for name, v := range map[string]int{
		"windows.schedule_lead":  c.Windows.ScheduleLead,
		"windows.deadline_lead":  c.Windows.DeadlineLead,
		"windows.schedule_grace": c.Windows.ScheduleGrace,
		"windows.deadline_grace": c.Windows.DeadlineGrace,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative, got %d", name, v)
		}
	}
	if !timeOfDayRegex.MatchString(c.ScheduleTime) {
		return fmt.Errorf("schedule_time must be HH:MM, got %q", c.ScheduleTime)
	}
	if !timeOfDayRegex.MatchString(c.DeadlineTime) {
		return fmt.Errorf("deadline_time must be HH:MM, got %q", c.DeadlineTime)
	}
	if c.ReportName == "" {
		return fmt.Errorf("report_name must not be empty")
	}
	return nil
}

// Rules assembles the admission rules for the filter.
func (c *Config) Rules() filter.Rules {
	return filter.Rules{
		TagsInclude:     c.TagsInclude,
		TagsExclude:     c.TagsExclude,
		KeywordsInclude: c.KeywordsInclude,
		KeywordsExclude: c.KeywordsExclude,
		PropsInclude:    c.PropsInclude,
		PropsExclude:    c.PropsExclude,
		FilesInclude:    c.FilesInclude,
		FilesExclude:    c.FilesExclude,
		InheritTags:     c.InheritTags,
	}
}

// ScanOptions assembles the extraction options for one scan.
func (c *Config) ScanOptions() scan.Options {
	return scan.Options{
		Rules:        c.Rules(),
		ScheduleTime: c.ScheduleTime,
		DeadlineTime: c.DeadlineTime,
	}
}
