package ask

// Message constants
const (
	MsgShort = "Prompt for a value until a valid one is entered"
	MsgLong  = `Ask prints a prompt, reads a line from standard input and prints the
accepted value.

Input that does not parse as --type, or that fails the checks given by
--min, --max, --not-empty or --one-of, prints an error and asks again.
Ask fails when the input ends before a value is accepted.`
	MsgExample = `  tagterm ask --type int --min 1 --max 10 --prompt "[bold]Pick a number: "
  tagterm ask --one-of yes,no --prompt "Continue? "
  name=$(tagterm ask --not-empty --prompt "Name: ")
  tagterm ask --type confirm --prompt "Overwrite?"`

	MsgFlagType     = "Value type (string, int, float, bool, confirm)"
	MsgFlagPrompt   = "Prompt markup"
	MsgFlagMin      = "Smallest accepted number"
	MsgFlagMax      = "Largest accepted number"
	MsgFlagNotEmpty = "Reject blank answers"
	MsgFlagOneOf    = "Accepted answers, ignoring case"

	MsgConfirmPrompt = "Continue?"

	MsgRange    = "[color=red][bold]Value must be between %v and %v."
	MsgBadType  = "unknown value type %q"
	MsgNotTyped = "--%s only applies to --type %s"
)
