package presetenv

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/liangklfang/babel-preset-env/catalog"
)

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry(
		Transform{Name: "transform-classes", Kind: KindSyntax},
		Transform{Name: "transform-modules-amd", Kind: KindModule},
	)

	got, err := r.Lookup("transform-modules-amd")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got.Kind != KindModule {
		t.Errorf("Lookup().Kind = %v, want %v", got.Kind, KindModule)
	}

	_, err = r.Lookup("transform-unknown")
	if !errors.Is(err, ErrUnknownIdentifier) {
		t.Fatalf("Lookup(unknown) error = %v, want ErrUnknownIdentifier", err)
	}
	var uiErr *UnknownIdentifierError
	if !errors.As(err, &uiErr) || uiErr.Name != "transform-unknown" {
		t.Errorf("Lookup(unknown) error = %#v, want UnknownIdentifierError for transform-unknown", err)
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Transform{Name: "a"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register(Transform{Name: "a"}); err == nil {
		t.Error("Register() of a duplicate succeeded")
	}
	if diff := cmp.Diff([]string{"a"}, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewCatalogRegistry(t *testing.T) {
	r := NewCatalogRegistry(catalog.Plugins(), KindSyntax)
	for _, name := range catalog.Plugins().Names() {
		tr, err := r.Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) error = %v", name, err)
			continue
		}
		if tr.Kind != KindSyntax {
			t.Errorf("Lookup(%q).Kind = %v, want syntax", name, tr.Kind)
		}
		if want := "@babel/plugin-" + name; tr.Package != want {
			t.Errorf("Lookup(%q).Package = %q, want %q", name, tr.Package, want)
		}
	}
}

func TestStandardRegistry(t *testing.T) {
	r := StandardRegistry()
	tests := []struct {
		name string
		kind Kind
	}{
		{"transform-modules-amd", KindModule},
		{"transform-modules-umd", KindModule},
		{"transform-modules-systemjs", KindModule},
		{"transform-modules-commonjs", KindModule},
		{RegeneratorTransform, KindSyntax},
		{UseBuiltInsEntry, KindBuiltIns},
		{UseBuiltInsUsage, KindBuiltIns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if got.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.kind)
			}
		})
	}
}
