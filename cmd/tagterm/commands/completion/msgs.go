package completion

// Message constants
const (
	MsgShort = "Generate shell completion script"
	MsgLong  = `To load completions:

Bash:
  $ source <(tagterm completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ tagterm completion bash > /etc/bash_completion.d/tagterm
  # macOS:
  $ tagterm completion bash > /usr/local/etc/bash_completion.d/tagterm

Zsh:
  $ tagterm completion zsh > "${fpath[1]}/_tagterm"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ tagterm completion fish > ~/.config/fish/completions/tagterm.fish

PowerShell:
  PS> tagterm completion powershell | Out-String | Invoke-Expression`
)
