package tagterm

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Render markup tags as terminal styles"

	// Group titles
	MsgGroupCore   = "COMMANDS:"
	MsgGroupTools  = "TOOLS:"
	MsgGroupDemo   = "DEMO:"
	MsgGroupConfig = "CONFIGURATION:"
	MsgGroupMisc   = "MISC:"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor = "Disable colors and styles"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/tagterm/config.toml)"

	// Error messages
	MsgErrNoCommand = "no command specified"
	MsgErrPrefix    = "Error: "

	MsgVersionTemplate = "{{.Name}} version {{.Version}}\n"
	MsgVersionDetails  = "%s (commit %s, built %s)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
