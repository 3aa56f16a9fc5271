package options

// Keymap identifiers for status-keys and mode-keys.
const (
	KeysEmacs = "emacs"
	KeysVi    = "vi"
)

// ServerTable holds server-scope options.
var ServerTable = []Option{
	{Name: "buffer-limit", Type: TypeNumber, Default: 20},
	{Name: "escape-time", Type: TypeNumber, Default: 500},
	{Name: "exit-unattached", Type: TypeFlag, Default: false},
	{Name: "message-limit", Type: TypeNumber, Default: 100},
	{Name: "quiet", Type: TypeFlag, Default: false},
	{Name: "set-clipboard", Type: TypeFlag, Default: true},
}

// SessionTable holds session-scope options, including the tmate naming and
// access options that the deferred CLI flags land on.
var SessionTable = []Option{
	{Name: "base-index", Type: TypeNumber, Default: 0},
	{Name: "default-command", Type: TypeString, Default: ""},
	{Name: "default-shell", Type: TypeString, Default: "/bin/sh"},
	{Name: "default-terminal", Type: TypeString, Default: "screen"},
	{Name: "display-time", Type: TypeNumber, Default: 750},
	{Name: "history-limit", Type: TypeNumber, Default: 2000},
	{Name: "prefix", Type: TypeString, Default: "C-b"},
	{Name: "status", Type: TypeFlag, Default: true},
	{Name: "status-keys", Type: TypeChoice, Default: KeysEmacs, Choices: []string{KeysEmacs, KeysVi}},
	{Name: "tmate-api-key", Type: TypeString, Default: ""},
	{Name: "tmate-authorized-keys", Type: TypeString, Default: ""},
	{Name: "tmate-foreground", Type: TypeFlag, Default: false},
	{Name: "tmate-server-host", Type: TypeString, Default: "ssh.tmate.io"},
	{Name: "tmate-server-port", Type: TypeNumber, Default: 22},
	{Name: "tmate-session-name", Type: TypeString, Default: ""},
	{Name: "tmate-session-name-ro", Type: TypeString, Default: ""},
}

// WindowTable holds window-scope options.
var WindowTable = []Option{
	{Name: "aggressive-resize", Type: TypeFlag, Default: false},
	{Name: "automatic-rename", Type: TypeFlag, Default: true},
	{Name: "main-pane-width", Type: TypeNumber, Default: 80},
	{Name: "mode-keys", Type: TypeChoice, Default: KeysEmacs, Choices: []string{KeysEmacs, KeysVi}},
	{Name: "monitor-activity", Type: TypeFlag, Default: false},
	{Name: "pane-base-index", Type: TypeNumber, Default: 0},
	{Name: "wrap-search", Type: TypeFlag, Default: true},
}
