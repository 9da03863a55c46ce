package topics

// Message constants
const (
	MsgShort = "List all help topics"
	MsgLong  = "Display a list of all available help topics that provide additional documentation beyond command help. Read one with 'tagterm help <topic>'."
)
