package locale

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var displayNamer = display.Tags(language.English)

// Tag derives a BCP 47 tag from a locale file name such as "pt-BR.json" or
// "zh_Hant.json".
func Tag(filename string) (language.Tag, bool) {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if strings.TrimSpace(base) == "" {
		return language.Und, false
	}
	tag, err := language.Parse(base)
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}

// Label returns the English display name for a locale file name, or an empty
// string when the name is not a locale tag.
func Label(filename string) string {
	tag, ok := Tag(filename)
	if !ok {
		return ""
	}
	return displayNamer.Name(tag)
}
