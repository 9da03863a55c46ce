package scales

// Message constants
const (
	MsgShort = "List the temperature scales convert understands"
	MsgLong  = "Scales prints every temperature scale with the number, name and symbol accepted by convert, and the value of 100 degrees Celsius on it."
)

// Table headers
const (
	HeaderIndex   = "#"
	HeaderName    = "Scale"
	HeaderSymbol  = "Symbol"
	HeaderBoiling = "100 °C"
)
