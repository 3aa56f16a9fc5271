// Package shell resolves the user's login shell for the default-shell
// session option.
package shell

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// DefaultShell is the compiled-in fallback when neither $SHELL nor the
// password database yields a usable shell.
const DefaultShell = "/bin/sh"

const passwdFile = "/etc/passwd"

// Resolve returns the shell to seed default-shell with. Precedence: $SHELL,
// then the login shell from the password database, then DefaultShell.
// progname is the client's own invocation name; a shell that would re-invoke
// the client is rejected.
func Resolve(progname string) string {
	if s := os.Getenv("SHELL"); Check(s, progname) {
		return s
	}
	if s := loginShell(os.Getuid()); Check(s, progname) {
		return s
	}
	return DefaultShell
}

// Check reports whether candidate is usable as a login shell: absolute,
// executable, and not the client itself.
func Check(candidate, progname string) bool {
	if candidate == "" || !filepath.IsAbs(candidate) {
		return false
	}
	if isSelf(candidate, progname) {
		return false
	}
	if unix.Access(candidate, unix.X_OK) != nil {
		return false
	}
	return true
}

// isSelf compares the candidate's basename against the invocation name with
// a login-shell "-" prefix stripped. Spawning ourselves as the login shell
// would recurse.
func isSelf(candidate, progname string) bool {
	name := strings.TrimPrefix(filepath.Base(progname), "-")
	return filepath.Base(candidate) == name
}

// loginShell looks up the shell field for uid in the password database. The
// standard library's os/user does not expose pw_shell, so the file is read
// directly.
func loginShell(uid int) string {
	f, err := os.Open(passwdFile)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 7 {
			continue
		}
		if id, err := strconv.Atoi(fields[2]); err == nil && id == uid {
			return fields[6]
		}
	}
	return ""
}
