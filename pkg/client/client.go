// Package client is the hand-off point after bootstrap: it finishes local
// setup (config file, deferred options, terminal checks) and reaches the
// server over the control socket. The wire protocol itself lives on the
// server side and is not part of this repository.
package client

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/b/tmate/pkg/bootstrap"
	"github.com/b/tmate/pkg/cfg"
	"github.com/b/tmate/pkg/logging"
)

// ProtocolVersion is the control protocol revision advertised by -V.
const ProtocolVersion = 6

const dialTimeout = time.Second

// Main runs the client against a bootstrapped context and returns the
// process exit code.
func Main(ctx *bootstrap.StartupContext) int {
	configPath, ok := loadConfig(ctx)
	if !ok {
		return 1
	}

	// The queue is drained once, after the config file, so CLI flags win
	// over file overrides. Apply errors are reported but not fatal.
	for _, err := range ctx.Deferred.Drain(ctx.Trees.Session.Set) {
		logging.Warn("deferred option: %v", err)
	}

	interactive := !ctx.Flags.Has(bootstrap.ClientControl) && !ctx.Foreground
	if interactive && !term.IsTerminal(int(os.Stdin.Fd())) {
		logging.Error("standard input is not a terminal")
		return 1
	}
	logging.Debug("color profile %v, flags %s", termenv.ColorProfile(), ctx.Flags)

	conn, err := net.DialTimeout("unix", ctx.SocketPath, dialTimeout)
	if err != nil {
		logging.Error("no server running on %s: %v", ctx.SocketPath, err)
		return 1
	}
	defer conn.Close()
	logging.Info("connected to server on %s", ctx.SocketPath)

	if ctx.Foreground {
		waitForeground(ctx, configPath)
	}
	return 0
}

// loadConfig applies the config file to the trees. A missing default file
// is fine; an explicit -f file that cannot be read is fatal.
func loadConfig(ctx *bootstrap.StartupContext) (string, bool) {
	path := ctx.ConfigFile
	explicit := path != ""
	if !explicit {
		path = cfg.DefaultPath()
	}

	f, err := cfg.Load(path)
	if err != nil {
		if explicit {
			logging.Error("%v", err)
			return path, false
		}
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Warn("%v", err)
		}
		return path, true
	}
	for _, err := range f.Apply(ctx.Trees) {
		logging.Warn("config: %v", err)
	}
	return path, true
}

// waitForeground keeps the process attached, re-applying the config file
// when it changes, until interrupted.
func waitForeground(ctx *bootstrap.StartupContext, configPath string) {
	stop, err := cfg.Watch(configPath, func() {
		f, err := cfg.Load(configPath)
		if err != nil {
			logging.Warn("reload config: %v", err)
			return
		}
		for _, err := range f.Apply(ctx.Trees) {
			logging.Warn("config: %v", err)
		}
		logging.Info("config reloaded from %s", configPath)
	})
	if err != nil {
		logging.Debug("config watch unavailable: %v", err)
	} else {
		defer stop()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	signal.Stop(sig)
}
