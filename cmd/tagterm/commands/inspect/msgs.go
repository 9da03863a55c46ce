package inspect

// Message constants
const (
	MsgShort = "Show the styled runs markup parses into"
	MsgLong  = `Inspect parses markup and lists the resulting runs: the text of each
run with its bold, underline and color attributes.

The table format shows a preview of each run. The yaml, json and xml
formats are meant for other tools.`
	MsgExample = `  tagterm inspect "[bold]a[color=red]b[/bold]c"
  tagterm inspect --format json "[ul]x"`

	MsgFlagFormat = "Output format (table, yaml, json, xml)"
)
