package bootstrap

import "strings"

// ClientFlags is the capability and mode bit-set handed to the client entry
// point. Immutable once Run returns.
type ClientFlags uint

const (
	// ClientLogin marks a login-shell invocation (argv[0] starting with "-"
	// or the -l flag).
	ClientLogin ClientFlags = 1 << iota
	// ClientUTF8 marks a UTF-8 capable terminal.
	ClientUTF8
	// Client256Colours marks 256-colour support.
	Client256Colours
	// ClientControl enables control mode (-C).
	ClientControl
	// ClientControlControl is the second -C: control mode without terminal
	// echo tweaks.
	ClientControlControl
)

var flagNames = []struct {
	flag ClientFlags
	name string
}{
	{ClientLogin, "login"},
	{ClientUTF8, "utf8"},
	{Client256Colours, "256colours"},
	{ClientControl, "control"},
	{ClientControlControl, "control-control"},
}

// Has reports whether every bit in mask is set.
func (f ClientFlags) Has(mask ClientFlags) bool {
	return f&mask == mask
}

func (f ClientFlags) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}
