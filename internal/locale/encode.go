package locale

import (
	"bytes"

	"github.com/tidwall/pretty"
)

// Width -1 keeps every array element on its own line instead of folding
// short arrays.
var prettyOptions = &pretty.Options{Width: -1, Indent: "  "}

// Encode renders m as JSON indented by two spaces, keys in mapping order,
// followed by a newline. An empty mapping renders as {}.
func (m *Mapping) Encode() []byte {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, entry := range m.entries {
		if i > 0 {
			compact.WriteByte(',')
		}
		compact.Write(entry.RawKey)
		compact.WriteByte(':')
		compact.Write(entry.Value)
	}
	compact.WriteByte('}')
	return pretty.PrettyOptions(compact.Bytes(), prettyOptions)
}
