package listmodel

import (
	"bytes"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/signadot/listmodel/encode"
	"github.com/signadot/listmodel/format"
	"github.com/signadot/listmodel/model"
	"github.com/signadot/listmodel/script"
)

var ErrPatch = errors.New("patch error")

// Patch applies an RFC 6902 JSON patch to the JSON form of m's items and
// builds a new model from the result. Paths address items by index and
// their properties by name, as in "/0/cost".
func Patch(m *model.Model, patch []byte) (*model.Model, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	buf := &bytes.Buffer{}
	if err := encode.EncodeModel(m, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil, err
	}
	out, err := ops.Apply(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	var items []any
	if err := yaml.UnmarshalWithOptions(out, &items, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: result is not a list: %w", ErrPatch, err)
	}
	res := model.New()
	for i, item := range items {
		if err := res.Append(script.Plain(item)); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrPatch, i, err)
		}
	}
	return res, nil
}
