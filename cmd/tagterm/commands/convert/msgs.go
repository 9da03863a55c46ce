package convert

// Message constants
const (
	MsgShort = "Convert a temperature between scales interactively"
	MsgLong  = `Convert lists the temperature scales, asks for an input scale, a
different output scale and a value, then prints the converted temperature.

Scales can be chosen by number, name or symbol. Invalid answers print a
message and ask again.`
	MsgExample = `  tagterm convert
  printf 'celsius\nF\n100\n' | tagterm convert`
)
