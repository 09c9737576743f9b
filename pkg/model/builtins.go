package model

import (
	"fmt"

	"go.starlark.net/starlark"
)

// specValue exposes a spec struct to starlark as an opaque value.
type specValue[T any] struct {
	typeName string
	spec     *T
}

func (v *specValue[T]) String() string {
	return fmt.Sprintf("%s(%+v)", v.typeName, *v.spec)
}

func (v *specValue[T]) Type() string {
	return v.typeName
}

func (v *specValue[T]) Freeze() {}

func (v *specValue[T]) Truth() starlark.Bool {
	return starlark.True
}

func (v *specValue[T]) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: %s", v.typeName)
}

// builtins returns the predeclared functions of a model file.  Each call to
// namespace() appends to spec.
func builtins(spec *Spec) starlark.StringDict {
	return starlark.StringDict{
		"use":       starlark.NewBuiltin("use", useBuiltin),
		"type_decl": starlark.NewBuiltin("type_decl", typeDeclBuiltin),
		"func_decl": starlark.NewBuiltin("func_decl", funcDeclBuiltin),
		"param":     starlark.NewBuiltin("param", paramBuiltin),
		"namespace": starlark.NewBuiltin("namespace", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			ns, err := namespaceBuiltin(b, args, kwargs)
			if err != nil {
				return nil, err
			}
			spec.Namespaces = append(spec.Namespaces, ns)
			return starlark.None, nil
		}),
	}
}

func useBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	use := &UseSpec{Kind: "type"}
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"name", &use.Name,
		"alias?", &use.Alias,
		"kind?", &use.Kind,
	); err != nil {
		return nil, err
	}
	return &specValue[UseSpec]{typeName: "use", spec: use}, nil
}

func typeDeclBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	typ := &TypeSpec{Kind: "class"}
	var extends, implements *starlark.List
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"name", &typ.Name,
		"kind?", &typ.Kind,
		"extends?", &extends,
		"implements?", &implements,
		"comment?", &typ.Comment,
	); err != nil {
		return nil, err
	}
	var err error
	if typ.Extends, err = stringList(b.Name(), "extends", extends); err != nil {
		return nil, err
	}
	if typ.Implements, err = stringList(b.Name(), "implements", implements); err != nil {
		return nil, err
	}
	return &specValue[TypeSpec]{typeName: "type_decl", spec: typ}, nil
}

func funcDeclBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	fn := &FunctionSpec{}
	var params *starlark.List
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"name", &fn.Name,
		"params?", &params,
		"returns?", &fn.Returns,
		"comment?", &fn.Comment,
	); err != nil {
		return nil, err
	}
	var err error
	if fn.Params, err = specList[ParamSpec](b.Name(), "params", "param", params); err != nil {
		return nil, err
	}
	return &specValue[FunctionSpec]{typeName: "func_decl", spec: fn}, nil
}

func paramBuiltin(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	param := &ParamSpec{}
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"name", &param.Name,
		"type?", &param.Type,
	); err != nil {
		return nil, err
	}
	return &specValue[ParamSpec]{typeName: "param", spec: param}, nil
}

func namespaceBuiltin(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (*NamespaceSpec, error) {
	ns := &NamespaceSpec{}
	var uses, types, functions *starlark.List
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"name", &ns.Name,
		"bracketed?", &ns.Bracketed,
		"uses?", &uses,
		"types?", &types,
		"functions?", &functions,
	); err != nil {
		return nil, err
	}
	var err error
	if ns.Uses, err = specList[UseSpec](b.Name(), "uses", "use", uses); err != nil {
		return nil, err
	}
	if ns.Types, err = specList[TypeSpec](b.Name(), "types", "type_decl", types); err != nil {
		return nil, err
	}
	if ns.Functions, err = specList[FunctionSpec](b.Name(), "functions", "func_decl", functions); err != nil {
		return nil, err
	}
	return ns, nil
}

func stringList(fn, field string, list *starlark.List) ([]string, error) {
	if list == nil {
		return nil, nil
	}
	out := make([]string, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		s, ok := starlark.AsString(list.Index(i))
		if !ok {
			return nil, fmt.Errorf("%s: %s[%d]: got %s, want string", fn, field, i, list.Index(i).Type())
		}
		out = append(out, s)
	}
	return out, nil
}

func specList[T any](fn, field, want string, list *starlark.List) ([]*T, error) {
	if list == nil {
		return nil, nil
	}
	out := make([]*T, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		v, ok := list.Index(i).(*specValue[T])
		if !ok {
			return nil, fmt.Errorf("%s: %s[%d]: got %s, want %s", fn, field, i, list.Index(i).Type(), want)
		}
		out = append(out, v.spec)
	}
	return out, nil
}
