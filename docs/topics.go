// Package docs embeds the user documentation shipped with the flp command.
//
// Each topic is a standalone markdown file; "readme" is the index and is
// not itself a topic.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.md
var topicFS embed.FS

// Topic returns the markdown content of a single documentation topic.
// The special topic "*" expands to every topic concatenated in order.
func Topic(name string) (string, error) {
	if name == "*" {
		return Topics(All()...)
	}

	content, err := topicFS.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics concatenates the content of several topics, in the given order.
func Topics(names ...string) (string, error) {
	var b bytes.Buffer
	for _, name := range names {
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// All lists every available topic, sorted, excluding the readme index.
func All() []string {
	var names []string
	fs.WalkDir(topicFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if base != "readme" {
			names = append(names, base)
		}
		return nil
	})
	sort.Strings(names)
	return names
}
