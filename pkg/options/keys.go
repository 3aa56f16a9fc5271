package options

import (
	"os"
	"path/filepath"
	"strings"
)

// Trees bundles the three scope trees built at startup.
type Trees struct {
	Server  *Tree
	Session *Tree
	Window  *Tree
}

// NewTrees populates all three trees from their schemas and seeds the
// session default-shell with the resolved shell path.
func NewTrees(defaultShell string) *Trees {
	t := &Trees{
		Server:  NewTree(ServerTable),
		Session: NewTree(SessionTable),
		Window:  NewTree(WindowTable),
	}
	if defaultShell != "" {
		t.Session.Set("default-shell", defaultShell)
	}
	return t
}

// OverrideKeys switches status-keys and mode-keys to vi when $VISUAL or
// $EDITOR points at a vi-like editor. With neither variable set the schema
// defaults are left untouched.
func (t *Trees) OverrideKeys() {
	editor, ok := os.LookupEnv("VISUAL")
	if !ok {
		editor, ok = os.LookupEnv("EDITOR")
	}
	if !ok {
		return
	}
	keys := KeysEmacs
	if strings.Contains(filepath.Base(editor), "vi") {
		keys = KeysVi
	}
	t.Session.Set("status-keys", keys)
	t.Window.Set("mode-keys", keys)
}
