package tagterm

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/tagterm/cmd/tagterm/internal/env"
	"github.com/arthur-debert/tagterm/pkg/topics"
	"github.com/muesli/termenv"
)

//go:embed topics
var topicFiles embed.FS

// TopicFS returns the embedded help topics.
func TopicFS() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}

// topicRenderer renders markdown topics with glamour, without styles when
// the invocation has no color profile.
type topicRenderer struct {
	env *env.Env
}

func (r topicRenderer) Render(content string, ext string) string {
	g := topics.NewGlamourRenderer()
	if r.env.Profile == termenv.Ascii {
		g.Style = "notty"
	}
	return g.Render(content, ext)
}
