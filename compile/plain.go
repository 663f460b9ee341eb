package compile

import "github.com/signadot/listmodel/model"

// Items returns, for each value of the default property, the argument to
// model.Model.Append that builds the same item the decoder produces for
// the compiled declaration: elements become model.Object, element values
// of a property become a list, the empty list idiom an empty list.
//
// Properties assigned several scalars have no mutation API equivalent and
// are rendered as a list.
func Items(props []Property) []any {
	var res []any
	for i := range props {
		for _, v := range props[i].Values {
			res = append(res, literal(v))
		}
	}
	return res
}

func literal(v Literal) any {
	switch x := v.(type) {
	case *Element:
		obj := make(model.Object, 0, len(x.Properties))
		for i := range x.Properties {
			p := &x.Properties[i]
			obj = append(obj, model.Field{Name: p.Name, Value: propertyValue(p)})
		}
		return obj
	case Scalar:
		return scalarValue(x)
	}
	return nil
}

func propertyValue(p *Property) any {
	if len(p.Values) == 1 {
		switch x := p.Values[0].(type) {
		case Scalar:
			return scalarValue(x)
		case *Element:
			return []any{literal(x)}
		}
	}
	res := make([]any, 0, len(p.Values))
	for _, v := range p.Values {
		if s, ok := v.(Scalar); ok && s.Type == ScriptScalar {
			continue
		}
		res = append(res, literal(v))
	}
	return res
}

func scalarValue(s Scalar) any {
	switch s.Type {
	case StringScalar:
		return s.Text
	case NumberScalar:
		return s.Number
	case BooleanScalar:
		return s.Bool
	case ScriptScalar:
		return []any{}
	}
	return nil
}
