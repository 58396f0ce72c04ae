package layout

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-ini/ini"
)

// INIKeys lists, in order, the fields written by WriteINI.
var INIKeys = []string{
	KeyRoot,
	KeyLocation,
	KeyName,
	KeyDocs,
	KeyTests,
	KeySource,
	KeySourceJS,
	KeySourceLess,
	KeyBuild,
	KeyBuildCoverage,
	KeyBuildDocs,
	KeyBuildLintscore,
	KeyBuildMeta,
	KeyBuildPytest,
	KeyDjangoTemplates,
	KeyDjangoStatic,
}

// WriteINI renders the layout as INI text with a single section, one
// "key = value" line per field with the value as its path string. The
// filename is accepted for callers that track where the text will go, but
// nothing is written; persisting the result is up to the caller.
func (l *Layout) WriteINI(_ string, section string) (string, error) {
	return l.renderINI(section, INIKeys)
}

func (l *Layout) renderINI(section string, keys []string) (string, error) {
	f := ini.Empty()
	sec, err := f.NewSection(section)
	if err != nil {
		return "", errors.Wrapf(err, "creating section %q", section)
	}

	for _, key := range keys {
		fld, ok := fieldIndex[key]
		if !ok {
			return "", errors.Wrapf(ErrUnknownField, "ini key %q", key)
		}
		if _, err := sec.NewKey(key, fld.get(l)); err != nil {
			return "", errors.Wrapf(err, "setting %s", key)
		}
	}

	// Lines are emitted here so values stay verbatim; go-ini's writer
	// quotes values holding '#', ';' or backticks.
	var b strings.Builder
	b.WriteString("[" + sec.Name() + "]\n")
	for _, k := range sec.Keys() {
		b.WriteString(k.Name() + " = " + k.Value() + "\n")
	}
	return b.String(), nil
}
