package markup

import "strings"

type attr uint8

const (
	attrBold attr = iota
	attrUnderline
	attrColor
)

// frame records the value an attribute had before an opening tag changed it.
type frame struct {
	attr      attr
	prevOn    bool
	prevColor Color
}

// token is a recognized tag.
type token struct {
	close bool
	attr  attr
	color Color
}

type parser struct {
	input   string
	pos     int
	start   int // first byte of the pending text span
	stack   []frame
	current Style
	runs    []Run
}

// Parse splits input into styled runs.
//
// Tags are written in square brackets: [bold], [underline] or [ul],
// [color=VALUE] (also colour= and fg=) open an attribute and [/bold],
// [/b], [/underline], [/ul], [/color], [/colour], [/c] close it. Closing
// an attribute that has others opened above it closes those too and then
// reopens them, so crossed tags behave as the author meant. Anything in
// brackets that is not a recognized tag is kept as literal text, and
// closing tags with no matching opener are dropped. Parse never fails.
func Parse(input string) []Run {
	p := &parser{input: input}
	p.run()
	return p.runs
}

// Strip returns the text of input with every recognized tag removed.
func Strip(input string) string {
	return Text(Parse(input))
}

// Text concatenates the text of runs.
func Text(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

func (p *parser) run() {
	for p.pos < len(p.input) {
		i := strings.IndexByte(p.input[p.pos:], '[')
		if i < 0 {
			p.pos = len(p.input)
			break
		}
		p.pos += i

		end, tok, ok := p.scanTag()
		if !ok {
			// literal bracket, kept in the pending text
			p.pos++
			continue
		}

		p.flush()
		p.apply(tok)
		p.pos = end
		p.start = end
	}
	p.flush()
}

// flush emits the text between start and pos with the current style.
func (p *parser) flush() {
	if p.pos > p.start {
		p.emit(p.input[p.start:p.pos])
	}
	p.start = p.pos
}

func (p *parser) emit(text string) {
	if text == "" {
		return
	}
	p.runs = append(p.runs, Run{Text: text, Style: p.current})
}

// scanTag looks at the tag starting at pos. It returns the offset just past
// the closing bracket and the recognized token.
func (p *parser) scanTag() (int, token, bool) {
	rest := p.input[p.pos+1:]
	j := strings.IndexByte(rest, ']')
	if j < 0 {
		return 0, token{}, false
	}
	tok, ok := parseTag(rest[:j])
	if !ok {
		return 0, token{}, false
	}
	return p.pos + 1 + j + 1, tok, true
}

func parseTag(body string) (token, bool) {
	if strings.HasPrefix(body, "/") {
		switch strings.ToLower(strings.TrimSpace(body[1:])) {
		case "bold", "b":
			return token{close: true, attr: attrBold}, true
		case "underline", "ul":
			return token{close: true, attr: attrUnderline}, true
		case "color", "colour", "c":
			return token{close: true, attr: attrColor}, true
		}
		return token{}, false
	}

	name, value, hasValue := strings.Cut(body, "=")
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bold":
		return token{attr: attrBold}, true
	case "underline", "ul":
		return token{attr: attrUnderline}, true
	case "color", "colour", "fg":
		if !hasValue {
			return token{}, false
		}
		c, ok := ResolveColor(value)
		if !ok {
			return token{}, false
		}
		return token{attr: attrColor, color: c}, true
	}
	return token{}, false
}

func (p *parser) apply(tok token) {
	if !tok.close {
		p.open(tok)
		return
	}
	p.close(tok.attr)
}

func (p *parser) open(tok token) {
	f := frame{attr: tok.attr}
	switch tok.attr {
	case attrBold:
		f.prevOn = p.current.Bold
		p.current.Bold = true
	case attrUnderline:
		f.prevOn = p.current.Underline
		p.current.Underline = true
	case attrColor:
		f.prevColor = p.current.Color
		p.current.Color = tok.color
	}
	p.stack = append(p.stack, f)
}

func (p *parser) close(a attr) {
	target := -1
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].attr == a {
			target = i
			break
		}
	}
	if target < 0 {
		return
	}

	// Frames above the target are popped, and the attributes that were in
	// effect when each one was popped are opened again afterwards.
	var reopen []token
	for len(p.stack) > target+1 {
		if tok, active := p.restore(p.pop()); active {
			reopen = append(reopen, tok)
		}
	}
	p.restore(p.pop())

	for i := len(reopen) - 1; i >= 0; i-- {
		p.open(reopen[i])
	}
}

func (p *parser) pop() frame {
	f := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return f
}

// restore puts back the value saved in f. It returns the attribute as it
// stood before restoring and whether it was active.
func (p *parser) restore(f frame) (token, bool) {
	switch f.attr {
	case attrBold:
		was := p.current.Bold
		p.current.Bold = f.prevOn
		return token{attr: attrBold}, was
	case attrUnderline:
		was := p.current.Underline
		p.current.Underline = f.prevOn
		return token{attr: attrUnderline}, was
	default:
		was := p.current.Color
		p.current.Color = f.prevColor
		return token{attr: attrColor, color: was}, was.IsSet()
	}
}
