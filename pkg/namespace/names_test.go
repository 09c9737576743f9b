package namespace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsIdentifier(t *testing.T) {
	for name, tc := range map[string]struct {
		in   string
		want bool
	}{
		"degenerate":     {},
		"simple":         {in: "Foo", want: true},
		"underscore":     {in: "_foo1", want: true},
		"leading digit":  {in: "1foo"},
		"separator":      {in: `Foo\Bar`},
		"dash":           {in: "foo-bar"},
		"high bytes":     {in: "Übung", want: true},
		"dollar sign":    {in: "$foo"},
		"trailing space": {in: "foo "},
	} {
		t.Run(name, func(t *testing.T) {
			if got := IsIdentifier(tc.in); got != tc.want {
				t.Errorf("IsIdentifier(%q): want %v, got %v", tc.in, tc.want, got)
			}
		})
	}
}

func TestIsNamespaceIdentifier(t *testing.T) {
	for name, tc := range map[string]struct {
		in      string
		leading bool
		want    bool
	}{
		"degenerate":               {},
		"single":                   {in: "Foo", want: true},
		"nested":                   {in: `Foo\Bar\Baz`, want: true},
		"leading not allowed":      {in: `\Foo`},
		"leading allowed":          {in: `\Foo\Bar`, leading: true, want: true},
		"only separator":           {in: `\`, leading: true},
		"double leading":           {in: `\\Foo`, leading: true},
		"trailing":                 {in: `Foo\`},
		"empty segment":            {in: `Foo\\Bar`},
		"invalid segment":          {in: `Foo\1Bar`},
		"dots are not separators":  {in: `Foo.Bar`},
		"leading allowed no-op ok": {in: `Foo`, leading: true, want: true},
	} {
		t.Run(name, func(t *testing.T) {
			if got := IsNamespaceIdentifier(tc.in, tc.leading); got != tc.want {
				t.Errorf("IsNamespaceIdentifier(%q, %v): want %v, got %v", tc.in, tc.leading, tc.want, got)
			}
		})
	}
}

func TestShortNameAndNamespaceOf(t *testing.T) {
	for name, tc := range map[string]struct {
		in        string
		wantShort string
		wantNs    string
	}{
		"degenerate": {},
		"bare":       {in: "Foo", wantShort: "Foo"},
		"nested":     {in: `A\B\C`, wantShort: "C", wantNs: `A\B`},
		"leading":    {in: `\Foo`, wantShort: "Foo"},
		"trailing":   {in: `A\B\`, wantShort: "", wantNs: `A\B`},
	} {
		t.Run(name, func(t *testing.T) {
			if got := ShortName(tc.in); got != tc.wantShort {
				t.Errorf("ShortName(%q): want %q, got %q", tc.in, tc.wantShort, got)
			}
			if got := NamespaceOf(tc.in); got != tc.wantNs {
				t.Errorf("NamespaceOf(%q): want %q, got %q", tc.in, tc.wantNs, got)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	k := NewKeywords(DefaultKeywords...)
	for _, word := range []string{"self", "SELF", "Array", "null", "never"} {
		if !k.Has(word) {
			t.Errorf("%q: want reserved", word)
		}
	}
	for _, word := range []string{"Foo", `\self`, "selfish", ""} {
		if k.Has(word) {
			t.Errorf("%q: want not reserved", word)
		}
	}
}

func TestParseKind(t *testing.T) {
	for name, tc := range map[string]struct {
		in      string
		want    Kind
		wantErr string
	}{
		"degenerate": {want: KindType},
		"type":       {in: "type", want: KindType},
		"function":   {in: "function", want: KindFunction},
		"func":       {in: "func", want: KindFunction},
		"constant":   {in: "constant", want: KindConstant},
		"const":      {in: "const", want: KindConstant},
		"unknown":    {in: "macro", wantErr: `unknown import kind "macro" (want type, function or constant)`},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := ParseKind(tc.in)
			if tc.wantErr != "" {
				if err == nil || err.Error() != tc.wantErr {
					t.Fatalf("want error %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("want %v, got %v", tc.want, got)
			}
		})
	}
	if got := Kind(7).String(); got != "Kind(7)" {
		t.Errorf("Kind(7).String(): got %q", got)
	}
}

func TestNameSegmenter(t *testing.T) {
	for name, tc := range map[string]struct {
		in   string
		want []string
	}{
		"degenerate":   {},
		"single":       {in: "foo", want: []string{"foo"}},
		"nested":       {in: `a\b\c`, want: []string{"a", `\b`, `\c`}},
		"trailing sep": {in: `app\sub\`, want: []string{"app", `\sub`, `\`}},
	} {
		t.Run(name, func(t *testing.T) {
			var got []string
			for segment, next := nameSegmenter(tc.in, 0); segment != ""; segment, next = nameSegmenter(tc.in, next) {
				got = append(got, segment)
				if next == -1 {
					break
				}
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
