// Package socket derives and validates the control socket path. The socket
// itself is opened elsewhere; this package only decides where it lives and
// makes sure the per-user runtime directory cannot be hijacked by another
// local user.
package socket

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// SessionEnvVar marks an inherited session. Its value is
// "socket-path,server-pid,session-id"; only the path part matters here.
const SessionEnvVar = "TMUX"

// TmpdirEnvVar overrides the parent of the runtime directory.
const TmpdirEnvVar = "TMUX_TMPDIR"

const dirPrefix = "tmate"

// DefaultLabel names the socket used when neither -L nor -S is given.
const DefaultLabel = "default"

// Locate resolves the control socket path. An explicit path wins; otherwise,
// when no label was given either, a socket inherited through the session
// environment variable is reused; otherwise the path is derived from the
// label inside the per-user runtime directory. randomize replaces a missing
// label with a random one instead of "default".
func Locate(explicit, label string, randomize bool) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if label == "" {
		if path := inheritedPath(); path != "" {
			return path, nil
		}
	}
	return makeLabel(label, randomize)
}

// inheritedPath extracts the socket path from the session environment
// variable. The value is trusted as-is; whether the path still points at a
// live server is the caller's problem.
func inheritedPath() string {
	v := os.Getenv(SessionEnvVar)
	if v == "" || strings.HasPrefix(v, ",") {
		return ""
	}
	path, _, _ := strings.Cut(v, ",")
	return path
}

// makeLabel builds {tmpdir}/tmate-{uid}/{label}, creating and validating the
// runtime directory on the way.
func makeLabel(label string, randomize bool) (string, error) {
	if label == "" {
		if randomize {
			label = randomLabel()
		} else {
			label = DefaultLabel
		}
	}

	uid := os.Getuid()
	parent := os.Getenv(TmpdirEnvVar)
	if parent == "" {
		parent = os.TempDir()
	}
	dir := filepath.Join(parent, fmt.Sprintf("%s-%d", dirPrefix, uid))

	if err := os.Mkdir(dir, 0o700); err != nil && !os.IsExist(err) {
		return "", fmt.Errorf("can't create socket directory %s: %w", dir, err)
	}
	if err := checkRuntimeDir(dir, uid); err != nil {
		return "", err
	}

	// Canonicalization failure degrades to the raw path.
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		resolved = dir
	}
	return filepath.Join(resolved, label), nil
}

// checkRuntimeDir rejects a pre-existing directory unless it is a real
// directory owned by the current user with no group or other permission
// bits. Anything else could let another user plant or read the socket.
func checkRuntimeDir(dir string, uid int) error {
	info, err := os.Lstat(dir)
	if err != nil {
		return fmt.Errorf("can't stat socket directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("socket directory %s: not a directory", dir)
	}
	if st, ok := info.Sys().(*syscall.Stat_t); ok && int(st.Uid) != uid {
		return fmt.Errorf("socket directory %s: not owned by uid %d", dir, uid)
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		return fmt.Errorf("socket directory %s: unsafe permissions %04o", dir, perm)
	}
	return nil
}

// randomLabel stands in for the fixed "default" when label randomization is
// on, so unrelated invocations never collide on one socket.
func randomLabel() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return DefaultLabel
	}
	return hex.EncodeToString(b)
}
