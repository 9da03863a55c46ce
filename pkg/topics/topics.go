// Package topics adds file based help topics to a cobra command tree.
//
// Topics are read from an fs.FS, usually an embedded directory of markdown
// files, and served through a replacement "help" command:
//
//	tagterm help topics      lists every topic
//	tagterm help markup      prints the "markup" topic
//	tagterm help --delay     prints "option-delay" when present
//	tagterm help print       falls back to command help
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/arthur-debert/tagterm/pkg/logging"
	"github.com/spf13/cobra"
)

// OptionPrefix marks topics that document a flag.
const OptionPrefix = "option-"

// Manager holds the topics found in a file system.
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic is a single help document.
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Ext returns the file extension of the topic, used to pick a rendering.
func (t *Topic) Ext() string {
	return path.Ext(t.Path)
}

// Options configures the Manager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// New scans fsys for topics. A nil fsys yields an empty manager.
func New(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}
	if fsys == nil {
		return m, nil
	}

	if err := m.scan(fsys); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to scan topics")
	}
	logger := logging.GetLogger("topics")
	logger.Debug().Int("count", len(m.topics)).Msg("Help topics loaded")
	return m, nil
}

func (m *Manager) scan(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !m.supported(path.Ext(p)) {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		// Subdirectories only group files; the name is the base name.
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		m.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
}

func (m *Manager) supported(ext string) bool {
	for _, valid := range m.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// Get looks a topic up by name. Flag spellings ("--delay", "-delay") also
// match the "option-" topic of the same name.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := m.topics[name]; ok {
		return topic, true
	}
	topic, ok := m.topics[OptionPrefix+name]
	return topic, ok
}

// List returns the topic names, sorted.
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the rendered content of a topic.
func (m *Manager) Render(name string) (string, error) {
	topic, ok := m.Get(name)
	if !ok {
		return "", errors.Newf(errors.ErrTopicNotFound, "unknown help topic %q", name).
			WithDetail("topic", name)
	}
	return m.renderer.Render(topic.Content, topic.Ext()), nil
}

// WriteIndex prints the topic list, general topics first.
func (m *Manager) WriteIndex(w io.Writer, appName string) {
	names := m.List()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, OptionPrefix) {
			options = append(options, strings.TrimPrefix(name, OptionPrefix))
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}

// Install replaces the help command of root with one that also serves topics.
func (m *Manager) Install(root *cobra.Command) {
	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + root.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + root.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.List()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				root.SetOut(out)
				return root.Help()
			}
			if args[0] == "topics" {
				m.WriteIndex(out, root.Name())
				return nil
			}

			if rendered, err := m.Render(args[0]); err == nil {
				fmt.Fprint(out, rendered)
				return nil
			}

			target, _, err := root.Find(args)
			if err != nil || target == nil || target == root {
				return errors.Newf(errors.ErrTopicNotFound, "unknown help topic or command %q", strings.Join(args, " ")).
					WithDetail("topic", args[0])
			}
			target.SetOut(out)
			return target.Help()
		},
	}

	root.SetHelpCommand(helpCmd)
}
