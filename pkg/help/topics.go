package help

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/minigrep/pkg/errors"
)

// ListTopic is the pseudo topic that lists every available topic
const ListTopic = "list"

const optionPrefix = "option-"

// Topic represents a help topic
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures the TopicManager
type Options struct {
	// Extensions defaults to [".txt", ".md"]
	Extensions []string

	// Renderer defaults to PlainRenderer
	Renderer Renderer
}

// TopicManager holds the topics found in a filesystem
type TopicManager struct {
	fsys       fs.FS
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// New creates a TopicManager over fsys and scans it for topics
func New(fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := &TopicManager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	if err := tm.scanTopics(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to scan help topics")
	}
	return tm, nil
}

func (tm *TopicManager) scanTopics() error {
	return fs.WalkDir(tm.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !tm.supported(path.Ext(p)) {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		tm.topics[name] = &Topic{Name: name, FilePath: p, Content: string(content)}
		return nil
	})
}

func (tm *TopicManager) supported(ext string) bool {
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name. Flag-style names such as
// "--no-filter" resolve to the "option-no-filter" topic.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics[optionPrefix+name]
	return topic, ok
}

// ListTopics returns all topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Show writes the rendered topic, or the topic list for ListTopic.
// Unknown names fail with ErrInvalidInput.
func (tm *TopicManager) Show(w io.Writer, name string) error {
	if name == ListTopic {
		return tm.writeList(w)
	}

	topic, ok := tm.GetTopic(name)
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, "unknown help topic %q", name).
			WithDetail("topic", name)
	}
	_, err := io.WriteString(w, tm.renderer.Render(topic.Content, path.Ext(topic.FilePath)))
	return err
}

func (tm *TopicManager) writeList(w io.Writer) error {
	var general, options []string
	for _, name := range tm.ListTopics() {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, name)
		}
	}

	var b strings.Builder
	if len(general) == 0 && len(options) == 0 {
		b.WriteString("No help topics available.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("Available help topics:\n")
	if len(general) > 0 {
		b.WriteString("\nGeneral topics:\n")
		for _, name := range general {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		b.WriteString("\nOption topics:\n")
		for _, name := range options {
			fmt.Fprintf(&b, "  --%s\n", name)
		}
	}
	b.WriteString("\nUse 'minigrep --topic <topic>' to read about a specific topic.\n")

	_, err := io.WriteString(w, b.String())
	return err
}
