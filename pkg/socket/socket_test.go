package socket

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupRuntime(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv(TmpdirEnvVar, tmp)
	t.Setenv(SessionEnvVar, "")
	os.Unsetenv(SessionEnvVar)
	return tmp
}

func TestLocate_ExplicitPathWinsVerbatim(t *testing.T) {
	setupRuntime(t)
	t.Setenv(SessionEnvVar, "/inherited/sock,1234,0")

	got, err := Locate("/my/own.sock", "ignored", false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "/my/own.sock" {
		t.Errorf("Locate() = %q, want /my/own.sock", got)
	}
}

func TestLocate_InheritedNoComma(t *testing.T) {
	setupRuntime(t)
	t.Setenv(SessionEnvVar, "/tmp/tmate-1000/default")

	got, err := Locate("", "", false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/tmate-1000/default" {
		t.Errorf("Locate() = %q, want inherited value unchanged", got)
	}
}

func TestLocate_InheritedCommaTruncated(t *testing.T) {
	setupRuntime(t)
	t.Setenv(SessionEnvVar, "a,b")

	got, err := Locate("", "", false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a" {
		t.Errorf("Locate() = %q, want %q", got, "a")
	}
}

func TestLocate_InheritedLeadingCommaIgnored(t *testing.T) {
	tmp := setupRuntime(t)
	t.Setenv(SessionEnvVar, ",oops")

	got, err := Locate("", "", false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, tmp) {
		t.Errorf("Locate() = %q, want derived path under %q", got, tmp)
	}
}

func TestLocate_LabelIgnoresInherited(t *testing.T) {
	tmp := setupRuntime(t)
	t.Setenv(SessionEnvVar, "/inherited/sock,1,0")

	got, err := Locate("", "work", false)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(tmp, fmt.Sprintf("tmate-%d", os.Getuid()), "work")
	if got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}
}

func TestLocate_DefaultLabel(t *testing.T) {
	tmp := setupRuntime(t)

	got, err := Locate("", "", false)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(tmp, fmt.Sprintf("tmate-%d", os.Getuid()), "default")
	if got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}

	dir := filepath.Dir(got)
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o700 {
		t.Errorf("runtime dir permissions = %04o, want 0700", perm)
	}
}

func TestLocate_Idempotent(t *testing.T) {
	setupRuntime(t)

	first, err := Locate("", "same", false)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Locate("", "same", false)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Locate() not idempotent: %q then %q", first, second)
	}
}

func TestLocate_UnsafePermissionsRejected(t *testing.T) {
	tmp := setupRuntime(t)
	dir := filepath.Join(tmp, fmt.Sprintf("tmate-%d", os.Getuid()))
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := Locate("", "", false); err == nil {
		t.Error("Locate() = nil error, want permission error for group/other bits")
	}
}

func TestLocate_NonDirectoryRejected(t *testing.T) {
	tmp := setupRuntime(t)
	dir := filepath.Join(tmp, fmt.Sprintf("tmate-%d", os.Getuid()))
	if err := os.WriteFile(dir, []byte("file in the way"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Locate("", "", false); err == nil {
		t.Error("Locate() = nil error, want error for non-directory")
	}
}

func TestLocate_RandomLabelsDistinct(t *testing.T) {
	setupRuntime(t)

	a, err := Locate("", "", true)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Locate("", "", true)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("Locate() with randomize produced the same path twice: %q", a)
	}
	if filepath.Dir(a) != filepath.Dir(b) {
		t.Errorf("random labels in different directories: %q vs %q", a, b)
	}
}

func TestLocate_ExplicitLabelBeatsRandomize(t *testing.T) {
	setupRuntime(t)

	got, err := Locate("", "named", true)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "named" {
		t.Errorf("Locate() = %q, want label %q kept", got, "named")
	}
}

func TestLocate_CanonicalizesSymlinkedTmpdir(t *testing.T) {
	tmp := t.TempDir()
	real := filepath.Join(tmp, "real")
	if err := os.Mkdir(real, 0o700); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmp, "link")
	if err := os.Symlink(real, link); err != nil {
		t.Skip("symlinks not supported here")
	}
	t.Setenv(TmpdirEnvVar, link)
	os.Unsetenv(SessionEnvVar)

	got, err := Locate("", "", false)
	if err != nil {
		t.Fatal(err)
	}
	// t.TempDir may itself live behind a symlink (macOS /var), so compare
	// against the fully resolved real directory, not the raw one.
	resolved, err := filepath.EvalSymlinks(real)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(resolved, fmt.Sprintf("tmate-%d", os.Getuid()), "default")
	if got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}
}
