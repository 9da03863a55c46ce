package configcmd

// Message constants
const (
	MsgShort     = "Inspect and create the tagterm configuration"
	MsgLong      = "Config groups the commands that work with the configuration file."
	MsgInitShort = "Write a commented default configuration file"
	MsgInitLong  = `Init writes the default configuration, with every value commented out,
to the user config file or to --config when given.

An existing file is only replaced with --force.`
	MsgShowShort = "Print the effective configuration"
	MsgShowLong  = "Show prints the configuration after defaults, the config file, the .env file and TAGTERM_ environment variables are merged."

	MsgFlagForce = "Overwrite an existing file"
	MsgWritten   = "Wrote %s\n"
)
