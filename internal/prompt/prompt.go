// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

// Package prompt assembles request bodies from template and content sections.
package prompt

import "strings"

// separator joins surviving sections with exactly one blank line.
const separator = "\n\n"

// Assemble trims each section, drops the ones that are empty or whitespace
// only, and joins the rest with a single blank line. With no surviving
// sections it returns "".
func Assemble(sections ...string) string {
	kept := make([]string, 0, len(sections))
	for _, s := range sections {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, separator)
}

// Section is one part of a request: the content of the file at Path,
// optionally preceded by a Heading line such as "## Materials".
type Section struct {
	Heading string
	Path    string
}

// Plain returns a Section with no heading.
func Plain(path string) Section {
	return Section{Path: path}
}

// Headed returns a Section whose content is preceded by heading.
func Headed(heading, path string) Section {
	return Section{Heading: heading, Path: path}
}

// Render combines the heading and file content. A headed section is never
// empty, even when the file is.
func (s Section) Render(content string) string {
	if s.Heading == "" {
		return content
	}
	return s.Heading + "\n" + content
}
