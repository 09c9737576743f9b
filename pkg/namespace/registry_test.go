package namespace_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackb/phpgen/pkg/namespace"
)

type use struct {
	name  string
	alias string
	kind  namespace.Kind
}

func mustNew(t *testing.T, name string, uses ...use) *namespace.Registry {
	t.Helper()
	r, err := namespace.New(name)
	require.NoError(t, err)
	for _, u := range uses {
		_, err := r.AddImport(u.name, u.alias, u.kind)
		require.NoError(t, err, "AddImport(%q, %q, %v)", u.name, u.alias, u.kind)
	}
	return r
}

func TestNew(t *testing.T) {
	for name, tc := range map[string]struct {
		namespace string
		wantErr   string
	}{
		"global":           {namespace: ""},
		"single":           {namespace: "App"},
		"nested":           {namespace: `A\B\C`},
		"leading sep":      {namespace: `\App`, wantErr: `value "\\App" is not a valid namespace name`},
		"trailing sep":     {namespace: `App\`, wantErr: `value "App\\" is not a valid namespace name`},
		"double sep":       {namespace: `A\\B`, wantErr: `value "A\\\\B" is not a valid namespace name`},
		"leading digit":    {namespace: `1App`, wantErr: `value "1App" is not a valid namespace name`},
		"dotted not valid": {namespace: `A.B`, wantErr: `value "A.B" is not a valid namespace name`},
	} {
		t.Run(name, func(t *testing.T) {
			r, err := namespace.New(tc.namespace)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, err.Error())
				assert.True(t, errors.Is(err, namespace.ErrInvalidName))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.namespace, r.Name())
			assert.False(t, r.HasBracketedSyntax())
		})
	}
}

func TestAddImport(t *testing.T) {
	for name, tc := range map[string]struct {
		uses        []use
		wantAliases []string
		wantErr     string
		kind        namespace.Kind
		want        []namespace.Import
	}{
		"degenerate": {
			want: []namespace.Import{},
		},
		"explicit alias": {
			uses:        []use{{name: `Foo\Bar`, alias: "Baz"}},
			wantAliases: []string{"Baz"},
			want:        []namespace.Import{{Alias: "Baz", Name: `Foo\Bar`}},
		},
		"auto alias suffixes": {
			uses:        []use{{name: `Foo\Bar`}, {name: `Baz\Bar`}, {name: `Qux\Bar`}},
			wantAliases: []string{"Bar", "Bar2", "Bar3"},
			want: []namespace.Import{
				{Alias: "Bar2", Name: `Baz\Bar`},
				{Alias: "Bar", Name: `Foo\Bar`},
				{Alias: "Bar3", Name: `Qux\Bar`},
			},
		},
		"auto alias skips taken suffix": {
			uses:        []use{{name: `A\X`}, {name: `B\Y`, alias: "X2"}, {name: `C\X`}},
			wantAliases: []string{"X", "X2", "X3"},
			want: []namespace.Import{
				{Alias: "X", Name: `A\X`},
				{Alias: "X2", Name: `B\Y`},
				{Alias: "X3", Name: `C\X`},
			},
		},
		"auto alias reuses same target": {
			uses:        []use{{name: `Foo\Bar`}, {name: `FOO\BAR`}},
			wantAliases: []string{"Bar", "BAR"},
			want:        []namespace.Import{{Alias: "BAR", Name: `FOO\BAR`}},
		},
		"idempotent": {
			uses:        []use{{name: `Foo\Bar`, alias: "Bar"}, {name: `Foo\Bar`, alias: "Bar"}},
			wantAliases: []string{"Bar", "Bar"},
			want:        []namespace.Import{{Alias: "Bar", Name: `Foo\Bar`}},
		},
		"idempotent case-insensitive": {
			uses:        []use{{name: `Foo\Bar`, alias: "Bar"}, {name: `foo\bar`, alias: "BAR"}},
			wantAliases: []string{"Bar", "BAR"},
			want:        []namespace.Import{{Alias: "BAR", Name: `foo\bar`}},
		},
		"two aliases for one target": {
			uses:        []use{{name: `Foo\Bar`}, {name: `Foo\Bar`, alias: "B"}},
			wantAliases: []string{"Bar", "B"},
			want: []namespace.Import{
				{Alias: "Bar", Name: `Foo\Bar`},
				{Alias: "B", Name: `Foo\Bar`},
			},
		},
		"leading separator stripped": {
			uses:        []use{{name: `\Foo\Bar`}},
			wantAliases: []string{"Bar"},
			want:        []namespace.Import{{Alias: "Bar", Name: `Foo\Bar`}},
		},
		"sorted with separator first": {
			uses:        []use{{name: `A\BC`}, {name: `A\B\C`}, {name: `A\B`}},
			wantAliases: []string{"BC", "C", "B"},
			want: []namespace.Import{
				{Alias: "B", Name: `A\B`},
				{Alias: "C", Name: `A\B\C`},
				{Alias: "BC", Name: `A\BC`},
			},
		},
		"conflict": {
			uses:        []use{{name: `Foo\Bar`, alias: "B"}, {name: `Baz\Qux`, alias: "b"}},
			wantAliases: []string{"B"},
			wantErr:     `type alias "b" used already for "Foo\\Bar", cannot use for "Baz\\Qux"`,
		},
		"kinds are independent": {
			uses: []use{
				{name: `Foo\bar`, kind: namespace.KindFunction},
				{name: `Baz\bar`, kind: namespace.KindType},
			},
			kind:        namespace.KindFunction,
			wantAliases: []string{"bar", "bar"},
			want:        []namespace.Import{{Alias: "bar", Name: `Foo\bar`}},
		},
		"function conflict": {
			uses: []use{
				{name: `Foo\bar`, kind: namespace.KindFunction},
				{name: `Baz\bar`, alias: "bar", kind: namespace.KindFunction},
			},
			wantAliases: []string{"bar"},
			wantErr:     `function alias "bar" used already for "Foo\\bar", cannot use for "Baz\\bar"`,
		},
		"invalid name": {
			uses:    []use{{name: `Foo\\Bar`}},
			wantErr: `value "Foo\\\\Bar" is not a valid type name`,
		},
		"reserved name": {
			uses:    []use{{name: `int`}},
			wantErr: `value "int" is not a valid type name`,
		},
		"reserved name after strip": {
			uses:    []use{{name: `\Self`}},
			wantErr: `value "Self" is not a valid type name`,
		},
		"reserved short name gets suffix": {
			uses:        []use{{name: `Foo\String`}, {name: `Foo\Bar`, alias: "Str"}},
			wantAliases: []string{"String2", "Str"},
			want: []namespace.Import{
				{Alias: "Str", Name: `Foo\Bar`},
				{Alias: "String2", Name: `Foo\String`},
			},
		},
		"reserved alias": {
			uses:    []use{{name: `Foo\Bar`, alias: "array"}},
			wantErr: `value "array" is not a valid alias`,
		},
		"namespaced alias": {
			uses:    []use{{name: `Foo\Bar`, alias: `A\B`}},
			wantErr: `value "A\\B" is not a valid alias`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			r, err := namespace.New("App")
			require.NoError(t, err)

			var gotAliases []string
			var gotErr error
			for _, u := range tc.uses {
				alias, err := r.AddImport(u.name, u.alias, u.kind)
				if err != nil {
					gotErr = err
					break
				}
				gotAliases = append(gotAliases, alias)
			}

			if tc.wantErr != "" {
				require.Error(t, gotErr)
				assert.Equal(t, tc.wantErr, gotErr.Error())
			} else {
				require.NoError(t, gotErr)
			}
			if diff := cmp.Diff(tc.wantAliases, gotAliases); diff != "" {
				t.Errorf("aliases (-want +got):\n%s", diff)
			}
			if tc.wantErr != "" {
				return
			}
			if diff := cmp.Diff(tc.want, r.Imports(tc.kind)); diff != "" {
				t.Errorf("imports (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddImportConflictError(t *testing.T) {
	r := mustNew(t, "App", use{name: `Foo\Bar`, alias: "Bar"})
	before := r.Imports(namespace.KindType)

	_, err := r.AddImport(`Baz\Bar`, "Bar", namespace.KindType)
	require.Error(t, err)
	assert.True(t, errors.Is(err, namespace.ErrAliasConflict))
	assert.False(t, errors.Is(err, namespace.ErrInvalidName))

	var conflict *namespace.AliasConflictError
	require.True(t, errors.As(err, &conflict))
	want := &namespace.AliasConflictError{
		Kind:      namespace.KindType,
		Alias:     "Bar",
		Existing:  `Foo\Bar`,
		Requested: `Baz\Bar`,
	}
	if diff := cmp.Diff(want, conflict); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	// a failed registration leaves the table as it was
	if diff := cmp.Diff(before, r.Imports(namespace.KindType)); diff != "" {
		t.Errorf("imports changed (-want +got):\n%s", diff)
	}
}

func TestAddImportUnknownKind(t *testing.T) {
	r := mustNew(t, "App")
	_, err := r.AddImport(`Foo\Bar`, "", namespace.Kind(42))
	require.Error(t, err)
	assert.Nil(t, r.Imports(namespace.Kind(42)))
}

func TestRemoveImport(t *testing.T) {
	r := mustNew(t, "App",
		use{name: `Foo\Bar`},
		use{name: `Baz\Bar`},
		use{name: `Foo\helper`, kind: namespace.KindFunction},
	)

	r.RemoveImport("BAR", namespace.KindType)
	r.RemoveImport("missing", namespace.KindType)
	r.RemoveImport("Bar2", namespace.KindFunction)

	want := []namespace.Import{{Alias: "Bar2", Name: `Baz\Bar`}}
	if diff := cmp.Diff(want, r.Imports(namespace.KindType)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	assert.Equal(t, `\Foo\Bar`, r.ShortenName(`Foo\Bar`, namespace.KindType))

	// the freed alias can now be bound elsewhere
	alias, err := r.AddImport(`Qux\Bar`, "", namespace.KindType)
	require.NoError(t, err)
	assert.Equal(t, "Bar", alias)
	assert.Equal(t, "helper", r.ShortenName(`Foo\helper`, namespace.KindFunction))
}

func TestImportWrappers(t *testing.T) {
	r := mustNew(t, "App")

	alias, err := r.AddTypeImport(`Foo\Bar`, "")
	require.NoError(t, err)
	assert.Equal(t, "Bar", alias)

	alias, err = r.AddFunctionImport(`Foo\helper`, "")
	require.NoError(t, err)
	assert.Equal(t, "helper", alias)

	alias, err = r.AddConstantImport(`Foo\MAX`, "LIMIT")
	require.NoError(t, err)
	assert.Equal(t, "LIMIT", alias)

	assert.Equal(t, []namespace.Import{{Alias: "Bar", Name: `Foo\Bar`}}, r.Imports(namespace.KindType))
	assert.Equal(t, []namespace.Import{{Alias: "helper", Name: `Foo\helper`}}, r.Imports(namespace.KindFunction))
	assert.Equal(t, []namespace.Import{{Alias: "LIMIT", Name: `Foo\MAX`}}, r.Imports(namespace.KindConstant))

	assert.Equal(t, "helper", r.ShortenName(`Foo\helper`, namespace.KindFunction))
	assert.Equal(t, "LIMIT", r.ShortenName(`Foo\MAX`, namespace.KindConstant))

	_, err = r.AddConstantImport(`Foo\MIN`, "LIMIT")
	assert.True(t, errors.Is(err, namespace.ErrAliasConflict), "got %v", err)
}

func TestBracketedSyntax(t *testing.T) {
	r := mustNew(t, "App")
	r.SetBracketedSyntax(true)
	assert.True(t, r.HasBracketedSyntax())
	r.SetBracketedSyntax(false)
	assert.False(t, r.HasBracketedSyntax())
}

func TestWithReservedWords(t *testing.T) {
	r, err := namespace.New("App", namespace.WithReservedWords("list"))
	require.NoError(t, err)
	assert.True(t, r.IsReserved("LIST"))
	assert.True(t, r.IsReserved("self"))
	assert.Equal(t, "list", r.ShortenName("list", namespace.KindType))

	_, err = r.AddImport(`Foo\Bar`, "List", namespace.KindType)
	assert.True(t, errors.Is(err, namespace.ErrInvalidName))
}

func TestImportString(t *testing.T) {
	assert.Equal(t, `Foo\Bar`, namespace.Import{Alias: "Bar", Name: `Foo\Bar`}.String())
	assert.Equal(t, `Foo\Bar as Baz`, namespace.Import{Alias: "Baz", Name: `Foo\Bar`}.String())
}
