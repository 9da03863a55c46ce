package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"markup.md":             {Data: []byte("# Markup\n\nTags and colors.\n")},
		"option-delay.txt":      {Data: []byte("Delay help")},
		"option-no-color.txt":   {Data: []byte("No color help")},
		"advanced/nesting.txt":  {Data: []byte("Nesting help")},
		"notes.rst":             {Data: []byte("ignored")},
		"advanced/README.md.bk": {Data: []byte("ignored")},
	}
}

func newManager(t *testing.T, opts Options) *Manager {
	t.Helper()
	m, err := New(testFS(), opts)
	require.NoError(t, err)
	return m
}

func TestNew_ScansSupportedExtensions(t *testing.T) {
	m := newManager(t, Options{})

	assert.Equal(t, []string{"markup", "nesting", "option-delay", "option-no-color"}, m.List())
}

func TestNew_CustomExtensions(t *testing.T) {
	m := newManager(t, Options{Extensions: []string{".rst"}})

	assert.Equal(t, []string{"notes"}, m.List())
}

func TestNew_NilFS(t *testing.T) {
	m, err := New(nil, Options{})

	require.NoError(t, err)
	assert.Empty(t, m.List())
}

func TestGet(t *testing.T) {
	m := newManager(t, Options{})

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"markup", "markup", true},
		{"option-delay", "option-delay", true},
		{"delay", "option-delay", true},
		{"--delay", "option-delay", true},
		{"-delay", "option-delay", true},
		{"--no-color", "option-no-color", true},
		{"nesting", "nesting", true},
		{"-d", "", false},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := m.Get(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestGet_SubdirectoryPath(t *testing.T) {
	m := newManager(t, Options{})

	topic, ok := m.Get("nesting")

	require.True(t, ok)
	assert.Equal(t, "advanced/nesting.txt", topic.Path)
	assert.Equal(t, ".txt", topic.Ext())
	assert.Equal(t, "Nesting help", topic.Content)
}

type recordingRenderer struct {
	exts []string
}

func (r *recordingRenderer) Render(content string, ext string) string {
	r.exts = append(r.exts, ext)
	return strings.ToUpper(content)
}

func TestRender(t *testing.T) {
	rr := &recordingRenderer{}
	m := newManager(t, Options{Renderer: rr})

	out, err := m.Render("--delay")

	require.NoError(t, err)
	assert.Equal(t, "DELAY HELP", out)
	assert.Equal(t, []string{".txt"}, rr.exts)
}

func TestRender_Unknown(t *testing.T) {
	m := newManager(t, Options{})

	_, err := m.Render("nope")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTopicNotFound))
	assert.Equal(t, "nope", errors.GetErrorDetails(err)["topic"])
}

func TestWriteIndex(t *testing.T) {
	m := newManager(t, Options{})
	var buf bytes.Buffer

	m.WriteIndex(&buf, "tagterm")

	want := "Available help topics:\n" +
		"\nGeneral topics:\n  markup\n  nesting\n" +
		"\nOption topics:\n  --delay\n  --no-color\n" +
		"\nUse 'tagterm help <topic>' to read about a specific topic.\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteIndex_Empty(t *testing.T) {
	m, err := New(nil, Options{})
	require.NoError(t, err)
	var buf bytes.Buffer

	m.WriteIndex(&buf, "tagterm")

	assert.Equal(t, "No help topics available.\n", buf.String())
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "tagterm", Short: "Test application"}
	root.AddCommand(&cobra.Command{
		Use:   "print",
		Short: "Print markup",
		Run:   func(cmd *cobra.Command, args []string) {},
	})
	newManager(t, Options{}).Install(root)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	return root, &buf
}

func TestInstall_HelpCommand(t *testing.T) {
	root, _ := newRoot(t)

	helpCmd, _, err := root.Find([]string{"help"})

	require.NoError(t, err)
	assert.Equal(t, "help [command or topic]", helpCmd.Use)
}

func TestInstall_Topic(t *testing.T) {
	root, buf := newRoot(t)
	root.SetArgs([]string{"help", "--", "--delay"})

	require.NoError(t, root.Execute())

	assert.Equal(t, "Delay help", buf.String())
}

func TestInstall_TopicList(t *testing.T) {
	root, buf := newRoot(t)
	root.SetArgs([]string{"help", "topics"})

	require.NoError(t, root.Execute())

	assert.Contains(t, buf.String(), "  markup\n")
	assert.Contains(t, buf.String(), "  --no-color\n")
}

func TestInstall_CommandFallback(t *testing.T) {
	root, buf := newRoot(t)
	root.SetArgs([]string{"help", "print"})

	require.NoError(t, root.Execute())

	assert.Contains(t, buf.String(), "Print markup")
}

func TestInstall_Unknown(t *testing.T) {
	root, _ := newRoot(t)
	root.SilenceErrors = true
	root.SilenceUsage = true
	root.SetArgs([]string{"help", "nothing-here"})

	err := root.Execute()

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTopicNotFound))
}

func TestGlamourRenderer_PassesThroughNonMarkdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}

	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))
}

func TestGlamourRenderer_Markdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}

	out := r.Render("# Markup\n\nTags **and** colors.\n", ".md")

	assert.Contains(t, out, "Markup")
	assert.Contains(t, out, "colors.")
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# raw", (&PlainRenderer{}).Render("# raw", ".md"))
}
