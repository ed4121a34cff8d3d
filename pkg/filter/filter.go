// Package filter evaluates entries against the configured admission
// rules. Every predicate here is pure: an empty include list admits
// everything on that axis, an empty exclude list excludes nothing.
package filter

import "path/filepath"

// Property is one key/value pair from an include or exclude rule.
// Matching against entry properties is exact on both fields.
type Property struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// Rules holds the admission configuration for one scan.
type Rules struct {
	TagsInclude     []string
	TagsExclude     []string
	KeywordsInclude []string
	KeywordsExclude []string
	PropsInclude    []Property
	PropsExclude    []Property
	FilesInclude    []string
	FilesExclude    []string
	InheritTags     bool
}

// AdmitFile decides whether a file participates in the scan at all.
// Files are compared by base name, not full path.
func (r *Rules) AdmitFile(path string) bool {
	base := filepath.Base(path)
	if len(r.FilesInclude) > 0 && !containsString(r.FilesInclude, base) {
		return false
	}
	if containsString(r.FilesExclude, base) {
		return false
	}
	return true
}

// Admit runs the six admission checks in order: tag inclusion, tag
// exclusion, keyword inclusion, keyword exclusion, property exclusion,
// property inclusion. All must pass.
func (r *Rules) Admit(tags []string, keyword string, props map[string]string) bool {
	if len(r.TagsInclude) > 0 && !anyString(tags, r.TagsInclude) {
		return false
	}
	if anyString(tags, r.TagsExclude) {
		return false
	}
	if len(r.KeywordsInclude) > 0 && !containsString(r.KeywordsInclude, keyword) {
		return false
	}
	if containsString(r.KeywordsExclude, keyword) {
		return false
	}
	if anyProperty(props, r.PropsExclude) {
		return false
	}
	if len(r.PropsInclude) > 0 && !anyProperty(props, r.PropsInclude) {
		return false
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func anyString(values, list []string) bool {
	for _, v := range values {
		if containsString(list, v) {
			return true
		}
	}
	return false
}

func anyProperty(props map[string]string, rules []Property) bool {
	for _, p := range rules {
		if v, ok := props[p.Key]; ok && v == p.Value {
			return true
		}
	}
	return false
}
