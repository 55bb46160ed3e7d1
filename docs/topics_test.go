package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names listed in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var names []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			names = append(names, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return names
}

func TestTopicsMatchReadme(t *testing.T) {
	// The readme index and the embedded topic files must agree both ways:
	// every listed topic loads, and every topic file is listed.
	listed := readmeTopics(t)

	for _, name := range listed {
		if _, err := Topic(name); err != nil {
			t.Errorf("topic %q listed in readme.md but not loadable: %v", name, err)
		}
	}

	for _, name := range All() {
		found := false
		for _, l := range listed {
			if l == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

func TestTopicStar(t *testing.T) {
	all, err := Topic("*")
	if err != nil {
		t.Fatalf("Topic(*): %v", err)
	}
	for _, name := range All() {
		content, err := Topic(name)
		if err != nil {
			t.Fatalf("Topic(%q): %v", name, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("Topic(*) does not contain topic %q", name)
		}
	}
}

func TestTopicUnknown(t *testing.T) {
	if _, err := Topic("no-such-topic"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}

func TestTopicStructure(t *testing.T) {
	// Every topic renders as one document with a single level-1 heading,
	// so concatenation with Topic(*) reads as chapters.
	for _, name := range append([]string{"readme"}, All()...) {
		t.Run(name, func(t *testing.T) {
			content, err := topicFS.ReadFile(name + ".md")
			if err != nil {
				t.Fatalf("reading %s.md: %v", name, err)
			}

			root := goldmark.DefaultParser().Parse(text.NewReader(content))
			h1 := 0
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
					h1++
				}
				return ast.WalkContinue, nil
			})
			if h1 != 1 {
				t.Errorf("%s.md has %d level-1 headings, want exactly 1", name, h1)
			}
		})
	}
}
