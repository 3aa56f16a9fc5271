package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/b/tmate/pkg/bootstrap"
	"github.com/b/tmate/pkg/client"
)

const version = "2.4.0"

// usageError wraps parse and conflict errors so main can append usage text.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// exitCodeError carries a non-zero client exit code through cobra.
type exitCodeError int

func (e exitCodeError) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

// runFunc hands a parsed Options to the bootstrap-and-client pipeline and
// returns the process exit code. Injected so flag wiring is testable.
type runFunc func(opts bootstrap.Options) int

func newRootCmd(progname string, run runFunc) *cobra.Command {
	var (
		opts        bootstrap.Options
		showVersion bool
	)
	opts.Progname = progname

	cmd := &cobra.Command{
		Use:           "tmate [flags] [command ...]",
		Short:         "client for a shared terminal multiplexer session",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "tmate %s\nprotocol %d\n", version, client.ProtocolVersion)
				return nil
			}
			if opts.ShellCommand != "" && len(args) > 0 {
				return usageError{bootstrap.ErrShellCommandConflict}
			}
			opts.Args = args
			if code := run(opts); code != 0 {
				return exitCodeError(code)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	// Flag parsing stops at the first positional argument; anything after
	// it belongs to the forwarded command, getopt style.
	flags.SetInterspersed(false)

	flags.BoolVarP(&opts.Colours256, "256colours", "2", false, "assume the terminal supports 256 colours")
	flags.StringVarP(&opts.ShellCommand, "shell-command", "c", "", "execute a shell command instead of a command list")
	flags.CountVarP(&opts.Control, "control", "C", "control mode; twice for no echo")
	flags.StringVarP(&opts.ConfigFile, "file", "f", "", "configuration file path")
	flags.BoolVarP(&opts.Login, "login", "l", false, "behave as a login shell")
	flags.StringVarP(&opts.Label, "label", "L", "", "socket label")
	flags.StringVarP(&opts.SocketPath, "socket", "S", "", "socket path, overrides -L")
	flags.BoolVarP(&opts.UTF8, "utf8", "u", false, "assume the terminal supports UTF-8")
	flags.CountVarP(&opts.Verbose, "verbose", "v", "increase verbosity (repeatable)")
	flags.BoolVarP(&opts.Foreground, "foreground", "F", false, "foreground mode, for remote access setup")
	flags.StringVarP(&opts.APIKey, "api-key", "k", "", "api key for named sessions")
	flags.StringVarP(&opts.SessionName, "name", "n", "", "session token instead of a random one")
	flags.StringVarP(&opts.ReadOnlyName, "read-only", "r", "", "read-only session token")
	flags.StringVarP(&opts.AuthorizedKeys, "authorized-keys", "a", "", "limit access to the ssh public keys in this file")
	flags.BoolVar(&opts.RandomizeLabel, "random-label", false, "use a random socket label instead of \"default\"")
	flags.BoolVarP(&showVersion, "version", "V", false, "print version and exit")
	flags.BoolP("help", "h", false, "print usage and exit")

	// Cobra intercepts the help flag itself and never reaches RunE, so the
	// usage-to-stderr behavior lives in the help func; execute turns the
	// help request into exit code 1.
	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	})
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	return cmd
}

// execute runs the root command and maps its outcome to a process exit
// code: help requests and usage errors exit 1, a failing client run keeps
// its own code.
func execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		if cmd.Flags().Changed("help") {
			return 1
		}
		return 0
	}
	var (
		exit  exitCodeError
		usage usageError
	)
	switch {
	case errors.As(err, &exit):
		return int(exit)
	case errors.As(err, &usage):
		fmt.Fprintf(cmd.ErrOrStderr(), "tmate: %v\n", err)
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "tmate: %v\n", err)
	}
	return 1
}
