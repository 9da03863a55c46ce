package strip

// Message constants
const (
	MsgShort = "Remove markup tags and print plain text"
	MsgLong  = `Strip prints the text of the markup without any styling.

Recognized tags are removed. Anything that does not parse as a tag, like
"[note]", is kept as written. With no arguments every line of standard
input is stripped.`
	MsgExample = `  tagterm strip "[bold]Hello[/bold] world"
  tagterm strip < message.txt`
)
