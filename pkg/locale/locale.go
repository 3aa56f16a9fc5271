// Package locale decides whether the client runs in UTF-8 mode.
//
// The C original forces LC_CTYPE to a UTF-8 locale and aborts when the
// user's locale names a different codeset. Go strings are UTF-8 regardless,
// so Setup only rejects an environment that explicitly demands a non-UTF-8
// codeset; everything downstream then keys off ResolveUTF8.
package locale

import (
	"fmt"
	"os"
	"strings"
)

// localeVars in precedence order, LC_ALL strongest.
var localeVars = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// Setup validates the process locale. It fails when the effective locale
// names an explicit codeset other than UTF-8, e.g. LANG=ja_JP.eucJP.
func Setup() error {
	v := effectiveLocale()
	if v == "" || v == "C" || v == "POSIX" {
		return nil
	}
	dot := strings.IndexByte(v, '.')
	if dot < 0 {
		return nil
	}
	codeset := v[dot+1:]
	// Strip a @modifier suffix, as in de_DE.UTF-8@euro.
	if at := strings.IndexByte(codeset, '@'); at >= 0 {
		codeset = codeset[:at]
	}
	if isUTF8Name(codeset) {
		return nil
	}
	return fmt.Errorf("need UTF-8 locale (LC_CTYPE) but have %s", codeset)
}

// ResolveUTF8 reports whether the client should assume a UTF-8 terminal.
// Inside an inherited session UTF-8 is assumed unconditionally; otherwise
// the first non-empty locale variable decides.
func ResolveUTF8(insideSession bool) bool {
	if insideSession {
		return true
	}
	return isUTF8Name(effectiveLocale())
}

func effectiveLocale() string {
	for _, name := range localeVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func isUTF8Name(s string) bool {
	s = strings.ToUpper(s)
	return strings.Contains(s, "UTF-8") || strings.Contains(s, "UTF8")
}
