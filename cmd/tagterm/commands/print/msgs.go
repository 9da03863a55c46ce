package print

// Message constants
const (
	MsgShort = "Render markup to the terminal"
	MsgLong  = `Print renders markup tags as terminal styles.

The arguments are joined with spaces and printed as one line. With no
arguments every line of standard input is printed.

Output is paced with --delay or --paced, which pause after each line.`
	MsgExample = `  tagterm print "[bold]Hello[/bold] [color=green]world"
  tagterm print -n "[ul]no newline"
  tagterm print --delay 500 "[color=#FF8800]slow"
  cat notes.txt | tagterm print --paced`

	MsgFlagNoNewline = "Do not print the trailing newline"
	MsgFlagDelay     = "Pause for this many milliseconds after each line"
	MsgFlagPaced     = "Pause for the configured default delay after each line"
)
