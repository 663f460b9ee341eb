package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/listmodel/model"
)

// MustString returns the text dump of n.
func MustString(n *model.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
