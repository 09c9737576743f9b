package namespace

import "github.com/stackb/phpgen/pkg/collections"

// AddType declares a type and returns it for further configuration.  A
// previous declaration whose name differs only by case is replaced, and the
// new one takes the last position.  The type registers itself as an import
// under its own name, so a manual import already owning that alias for a
// different name is an *AliasConflictError.
func (r *Registry) AddType(name string) (*TypeDecl, error) {
	if !IsIdentifier(name) || r.reserved.Has(name) {
		return nil, &InvalidNameError{What: "type name", Value: name}
	}
	if _, err := r.addImport(r.qualify(name), name, KindType, true); err != nil {
		return nil, err
	}
	decl := newTypeDecl(name, r.name)
	if r.types.Put(name, decl) {
		r.logger.Debug().Str("namespace", r.name).Str("type", name).Msg("type replaced")
	}
	return decl, nil
}

// AddClass declares a class.
func (r *Registry) AddClass(name string) (*TypeDecl, error) {
	return r.addTypeOfKind(name, TypeClass)
}

// AddInterface declares an interface.
func (r *Registry) AddInterface(name string) (*TypeDecl, error) {
	return r.addTypeOfKind(name, TypeInterface)
}

// AddTrait declares a trait.
func (r *Registry) AddTrait(name string) (*TypeDecl, error) {
	return r.addTypeOfKind(name, TypeTrait)
}

// AddEnum declares an enum.
func (r *Registry) AddEnum(name string) (*TypeDecl, error) {
	return r.addTypeOfKind(name, TypeEnum)
}

func (r *Registry) addTypeOfKind(name string, kind TypeKind) (*TypeDecl, error) {
	decl, err := r.AddType(name)
	if err != nil {
		return nil, err
	}
	return decl.SetKind(kind), nil
}

// Type looks up a declared type case-insensitively.
func (r *Registry) Type(name string) (*TypeDecl, bool) {
	return r.types.Get(name)
}

// Types returns the declared types in declaration order.
func (r *Registry) Types() []*TypeDecl {
	return r.types.Values()
}

// RemoveType drops a declared type along with its self-registration.  An
// import the caller also registered explicitly is kept.
func (r *Registry) RemoveType(name string) {
	decl, ok := r.types.Get(name)
	if !ok {
		return
	}
	r.types.Delete(name)

	table := r.imports[KindType]
	if e, ok := table.lookup(decl.Name()); ok && e.virtual && collections.EqualFold(e.name, decl.QualifiedName()) {
		if e.explicit {
			e.virtual = false
		} else {
			table.remove(e.alias)
		}
	}
}

// AddFunction declares a function and returns it for further configuration.
// Functions use the same replace-on-add rule as types but do not register
// themselves as imports.
func (r *Registry) AddFunction(name string) (*FunctionDecl, error) {
	if !IsIdentifier(name) {
		return nil, &InvalidNameError{What: "function name", Value: name}
	}
	decl := &FunctionDecl{name: name}
	if r.functions.Put(name, decl) {
		r.logger.Debug().Str("namespace", r.name).Str("function", name).Msg("function replaced")
	}
	return decl, nil
}

// Function looks up a declared function case-insensitively.
func (r *Registry) Function(name string) (*FunctionDecl, bool) {
	return r.functions.Get(name)
}

// Functions returns the declared functions in declaration order.
func (r *Registry) Functions() []*FunctionDecl {
	return r.functions.Values()
}

// RemoveFunction drops a declared function.
func (r *Registry) RemoveFunction(name string) {
	r.functions.Delete(name)
}
