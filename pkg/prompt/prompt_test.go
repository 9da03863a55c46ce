package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/tagterm/pkg/console"
	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/arthur-debert/tagterm/pkg/render"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	out    *bytes.Buffer
	slept  []time.Duration
	prompt *Prompter
}

func newHarness(input string, opts ...Option) *harness {
	h := &harness{out: &bytes.Buffer{}}
	c := console.New(h.out,
		console.WithRenderer(render.New(h.out, render.WithProfile(termenv.Ascii))),
		console.WithSleep(func(d time.Duration) { h.slept = append(h.slept, d) }),
	)
	h.prompt = New(c, strings.NewReader(input), opts...)
	return h
}

func TestRead_ValidFirstTry(t *testing.T) {
	h := newHarness("42\n")

	v, err := Read(h.prompt, Int, "[bold]Number: ")

	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, "Number: ", h.out.String())
}

func TestRead_TrimsInput(t *testing.T) {
	h := newHarness("   3.5 \r\n")

	v, err := Read(h.prompt, Float64, "t: ")

	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
}

func TestRead_RetriesOnParseFailure(t *testing.T) {
	h := newHarness("abc\n\n7\n", WithErrorDelay(console.Millis(400)))

	v, err := Read(h.prompt, Int, "n: ")

	require.NoError(t, err)
	assert.Equal(t, 7, v)

	out := h.out.String()
	assert.Equal(t, 3, strings.Count(out, "n: "))
	assert.Equal(t, 2, strings.Count(out, "Incorrect input type. Expected input type: int\n"))
	assert.Equal(t, []time.Duration{400 * time.Millisecond, 400 * time.Millisecond}, h.slept)
}

func TestRead_RejectedThenAccepted(t *testing.T) {
	h := newHarness("5\n20\n")
	atLeastTen := Validator[int]{Reject: func(v int) bool { return v < 10 }, Message: "[color=red]too small"}

	v, err := Read(h.prompt, Int, "n: ", atLeastTen)

	require.NoError(t, err)
	assert.Equal(t, 20, v)
	assert.Equal(t, "n: too small\nn: ", h.out.String())
}

func TestRead_FirstAcceptingValidatorWins(t *testing.T) {
	h := newHarness("5\n")
	rejectAll := Validator[int]{Reject: func(int) bool { return true }, Message: "first says no"}
	acceptAll := Validator[int]{Reject: func(int) bool { return false }, Message: "unused"}
	called := false
	never := Validator[int]{Reject: func(int) bool { called = true; return true }, Message: "never"}

	v, err := Read(h.prompt, Int, "n: ", rejectAll, acceptAll, never)

	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Contains(t, h.out.String(), "first says no\n")
	assert.NotContains(t, h.out.String(), "unused")
	assert.False(t, called, "validators after the accepting one are not consulted")
}

func TestRead_AllValidatorsRejectReprompts(t *testing.T) {
	h := newHarness("1\n2\n")
	a := Validator[int]{Reject: func(v int) bool { return v == 1 }, Message: "A"}
	b := Validator[int]{Reject: func(v int) bool { return v == 1 }, Message: "B"}

	v, err := Read(h.prompt, Int, "n: ", a, b)

	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, "n: A\nB\nn: ", h.out.String())
}

func TestRead_InputClosed(t *testing.T) {
	h := newHarness("nope\n")

	_, err := Read(h.prompt, Int, "n: ")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputClosed))
}

func TestRead_LastLineWithoutNewline(t *testing.T) {
	h := newHarness("yes\ntrue")

	v, err := Read(h.prompt, Bool, "ok? ")

	require.NoError(t, err)
	assert.True(t, v)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, fmt.Errorf("device gone")
}

func TestRead_ReadError(t *testing.T) {
	out := &bytes.Buffer{}
	c := console.New(out, console.WithRenderer(render.New(out, render.WithProfile(termenv.Ascii))))
	p := New(c, errReader{})

	_, err := Read(p, String, "> ")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputRead))
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, fmt.Errorf("closed")
}

func TestRead_RenderFailure(t *testing.T) {
	c := console.New(brokenWriter{})
	p := New(c, strings.NewReader("1\n"))

	_, err := Read(p, Int, "> ")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRenderWrite))
}

func TestKinds(t *testing.T) {
	s, err := String.Parse("anything")
	require.NoError(t, err)
	assert.Equal(t, "anything", s)

	i64, err := Int64.Parse("-9000000000")
	require.NoError(t, err)
	assert.Equal(t, int64(-9000000000), i64)

	u, err := Uint.Parse("7")
	require.NoError(t, err)
	assert.Equal(t, uint(7), u)

	_, err = Uint.Parse("-1")
	assert.Error(t, err)

	_, err = Int.Parse("4.2")
	assert.Error(t, err)

	b, err := Bool.Parse("false")
	require.NoError(t, err)
	assert.False(t, b)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		def    bool
		want   bool
		prompt string
	}{
		{"yes", "y\n", false, true, "Overwrite? [y/N]: "},
		{"no word", "NO\n", true, false, "Overwrite? [Y/n]: "},
		{"empty takes default no", "\n", false, false, "Overwrite? [y/N]: "},
		{"empty takes default yes", "\n", true, true, "Overwrite? [Y/n]: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(tt.input)

			got, err := Confirm(h.prompt, "Overwrite?", tt.def)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.prompt, h.out.String())
		})
	}
}

func TestConfirm_RetriesUnknownAnswer(t *testing.T) {
	h := newHarness("maybe\nyes\n")

	got, err := Confirm(h.prompt, "Go?", false)

	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, "Go? [y/N]: Incorrect input type. Expected input type: yes/no\nGo? [y/N]: ", h.out.String())
}
