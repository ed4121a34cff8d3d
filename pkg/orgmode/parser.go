// Package orgmode reads task entries out of org outline files. It is the
// document collaborator for the scanner: it surfaces headings, keywords,
// tags, properties and raw planning timestamps without interpreting them.
package orgmode

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"
)

// Entry is one heading in an org file together with everything the
// filters and the extractor need to know about it.
type Entry struct {
	Heading    string
	Keyword    string // empty when the heading carries no TODO-style keyword
	Tags       []string
	Inherited  []string // ancestor heading tags plus #+FILETAGS
	Properties map[string]string
	Scheduled  string // raw "<...>" timestamp text, empty when absent
	Deadline   string
	File       string
	Line       int
}

// AllTags returns the entry's own tags, optionally merged with the
// inherited set.
func (e *Entry) AllTags(inherit bool) []string {
	if !inherit || len(e.Inherited) == 0 {
		return e.Tags
	}
	tags := make([]string, 0, len(e.Tags)+len(e.Inherited))
	tags = append(tags, e.Tags...)
	for _, t := range e.Inherited {
		seen := false
		for _, own := range e.Tags {
			if own == t {
				seen = true
				break
			}
		}
		if !seen {
			tags = append(tags, t)
		}
	}
	return tags
}

var (
	headingRegex  = regexp.MustCompile(`^(\*+)\s+(?:([A-Z]{2,})\s+)?(?:\[#([A-Z])\]\s*)?(.*?)(?:\s+:(\w+(?::\w+)*):)?\s*$`)
	plannedRegex  = regexp.MustCompile(`(SCHEDULED|DEADLINE):\s+(<[^>\n]+>)`)
	propertyRegex = regexp.MustCompile(`^:([A-Za-z][A-Za-z0-9_-]*):\s*(.*?)\s*$`)
	filetagsRegex = regexp.MustCompile(`^#\+(?i:FILETAGS):\s*:?(.*?):?\s*$`)
)

// ParseFile parses a single org file.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// stackFrame tracks one open ancestor heading while walking the outline.
type stackFrame struct {
	level int
	tags  []string
}

// Parse parses an org outline and returns its entries in document order.
// Tag inheritance is resolved during the walk so callers never need the
// outline structure back.
func Parse(r io.Reader, source string) ([]Entry, error) {
	scanner := bufio.NewScanner(r)

	var (
		entries  []Entry
		current  *Entry
		stack    []stackFrame
		filetags []string
		inDrawer bool
		lineNo   int
	)

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if m := filetagsRegex.FindStringSubmatch(trimmed); m != nil && current == nil && len(stack) == 0 {
			for _, t := range strings.Split(m[1], ":") {
				if t != "" {
					filetags = append(filetags, t)
				}
			}
			continue
		}

		if strings.HasPrefix(line, "*") {
			if m := headingRegex.FindStringSubmatch(line); m != nil {
				flush()
				inDrawer = false

				level := len(m[1])
				for len(stack) > 0 && stack[len(stack)-1].level >= level {
					stack = stack[:len(stack)-1]
				}

				var inherited []string
				inherited = append(inherited, filetags...)
				for _, frame := range stack {
					inherited = append(inherited, frame.tags...)
				}

				var tags []string
				if m[5] != "" {
					tags = strings.Split(m[5], ":")
				}

				current = &Entry{
					Heading:    strings.TrimSpace(m[4]),
					Keyword:    m[2],
					Tags:       tags,
					Inherited:  inherited,
					Properties: map[string]string{},
					File:       source,
					Line:       lineNo,
				}
				stack = append(stack, stackFrame{level: level, tags: tags})
				continue
			}
		}

		if current == nil {
			continue
		}

		switch {
		case trimmed == ":PROPERTIES:":
			inDrawer = true
		case trimmed == ":END:":
			inDrawer = false
		case inDrawer:
			if m := propertyRegex.FindStringSubmatch(trimmed); m != nil {
				current.Properties[m[1]] = m[2]
			}
		default:
			for _, m := range plannedRegex.FindAllStringSubmatch(trimmed, -1) {
				if m[1] == "SCHEDULED" {
					current.Scheduled = m[2]
				} else {
					current.Deadline = m[2]
				}
			}
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
