// Package bootstrap sequences client startup: locale validation, capability
// flags, configuration trees, the environment snapshot and the control
// socket path. The result is a StartupContext handed to the client layer.
package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/b/tmate/pkg/environ"
	"github.com/b/tmate/pkg/locale"
	"github.com/b/tmate/pkg/logging"
	"github.com/b/tmate/pkg/options"
	"github.com/b/tmate/pkg/shell"
	"github.com/b/tmate/pkg/socket"
)

// Session-scope option names the deferred CLI flags land on, in their fixed
// delivery order.
const (
	OptAPIKey         = "tmate-api-key"
	OptSessionName    = "tmate-session-name"
	OptSessionNameRO  = "tmate-session-name-ro"
	OptAuthorizedKeys = "tmate-authorized-keys"
)

// ErrShellCommandConflict is returned when -c is combined with a positional
// command.
var ErrShellCommandConflict = errors.New("-c cannot be combined with a command")

// Options carries the parsed command line into Run.
type Options struct {
	Progname string // raw argv[0]

	Login      bool
	UTF8       bool
	Colours256 bool
	Control    int // -C occurrence count
	Verbose    int // -v occurrence count
	Foreground bool

	ShellCommand string
	ConfigFile   string
	SocketPath   string
	Label        string

	APIKey         string
	SessionName    string
	ReadOnlyName   string
	AuthorizedKeys string

	// RandomizeLabel replaces a missing -L label with a random one instead
	// of "default", so unrelated invocations get private sockets.
	RandomizeLabel bool

	Args []string // remaining positional arguments (the forwarded command)
}

// StartupContext is the single-construction bundle every downstream
// collaborator receives by reference.
type StartupContext struct {
	SocketPath   string
	Flags        ClientFlags
	Args         []string
	ShellCommand string
	ConfigFile   string
	Foreground   bool
	Verbosity    int

	Trees    *options.Trees
	Env      *environ.Environ
	Deferred *DeferredQueue
}

// Run resolves configuration and the socket path. Any returned error is
// fatal for the process; SocketPath is always set on success.
func Run(opts Options) (*StartupContext, error) {
	logging.SetVerbosity(opts.Verbose)

	if err := locale.Setup(); err != nil {
		return nil, err
	}

	if opts.ShellCommand != "" && len(opts.Args) > 0 {
		return nil, ErrShellCommandConflict
	}

	// Foreground mode detaches from any inherited session before the
	// session marker is consulted below.
	if opts.Foreground {
		opts.Verbose++
		logging.SetVerbosity(opts.Verbose)
		os.Unsetenv(socket.SessionEnvVar)
	}

	var flags ClientFlags
	if opts.Login || strings.HasPrefix(opts.Progname, "-") {
		flags |= ClientLogin
	}
	// Presence alone marks a nested client; an empty marker still counts.
	_, insideSession := os.LookupEnv(socket.SessionEnvVar)
	if opts.UTF8 || locale.ResolveUTF8(insideSession) {
		flags |= ClientUTF8
	}
	if opts.Colours256 || detect256Colours() {
		flags |= Client256Colours
	}
	if opts.Control >= 1 {
		flags |= ClientControl
	}
	if opts.Control >= 2 {
		flags |= ClientControlControl
	}

	trees := options.NewTrees(shell.Resolve(opts.Progname))
	trees.OverrideKeys()
	if opts.Foreground {
		trees.Session.Set("tmate-foreground", "on")
	}

	env := environ.Snapshot()

	path, err := socket.Locate(opts.SocketPath, opts.Label, opts.RandomizeLabel)
	if err != nil {
		return nil, fmt.Errorf("can't create socket: %w", err)
	}
	logging.Debug("socket path %s, flags %s", path, flags)

	queue := &DeferredQueue{}
	queue.Enqueue(OptAPIKey, opts.APIKey)
	queue.Enqueue(OptSessionName, opts.SessionName)
	queue.Enqueue(OptSessionNameRO, opts.ReadOnlyName)
	queue.Enqueue(OptAuthorizedKeys, opts.AuthorizedKeys)

	return &StartupContext{
		SocketPath:   path,
		Flags:        flags,
		Args:         opts.Args,
		ShellCommand: opts.ShellCommand,
		ConfigFile:   opts.ConfigFile,
		Foreground:   opts.Foreground,
		Verbosity:    opts.Verbose,
		Trees:        trees,
		Env:          env,
		Deferred:     queue,
	}, nil
}

// detect256Colours consults the terminal's advertised color profile. The C
// original forced 256 colours at build time; here capable terminals opt in
// at runtime and -2 still forces the flag on.
func detect256Colours() bool {
	switch termenv.ColorProfile() {
	case termenv.ANSI256, termenv.TrueColor:
		return true
	}
	return false
}
