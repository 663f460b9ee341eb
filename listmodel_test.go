package listmodel

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/listmodel/compile"
	"github.com/signadot/listmodel/decl"
	"github.com/signadot/listmodel/model"
)

func parse(t *testing.T, src string) []compile.Property {
	t.Helper()
	props, err := decl.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return props
}

func TestFruitScenario(t *testing.T) {
	m, err := Load(parse(t, "- {name: Apple, cost: 2.45}\n- {name: Orange, cost: 3.25}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"name", "cost"}, m.RoleNames()); diff != "" {
		t.Errorf("roles (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1}, m.Roles()); diff != "" {
		t.Errorf("role ids (-want +got):\n%s", diff)
	}
	if got := m.Data(0, 1); got != 2.45 {
		t.Errorf("cost = %v, want 2.45", got)
	}
	rec := &model.Recorder{}
	m.Observe(rec)
	if err := m.SetProperty(0, "cost", 4.90); err != nil {
		t.Fatal(err)
	}
	if got := m.Get(0).Value("cost"); got != 4.90 {
		t.Errorf("cost = %v, want 4.90", got)
	}
	if diff := cmp.Diff([]model.Event{model.Changed(0, 1, 1)}, rec.Take()); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"flat", "- {name: Apple, cost: 2.45}\n- {name: Orange, cost: 3.25}\n"},
		{"nested", "- name: Apple\n  attributes:\n    - description: Core\n    - description: Deciduous\n"},
		{"empty list idiom", "- name: Orange\n  attributes: !script \"[ ]\"\n"},
		{"empty flow list", "- attributes: []\n"},
		{"element value", "- origin:\n    country: ES\n    region: Valencia\n"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Verify(parse(t, tt.src))
			if err != nil {
				t.Fatal(err)
			}
			if !d.Equal() {
				t.Errorf("round trip differs:\n%s", d)
			}
		})
	}
}

func TestVerifyMultipleScalars(t *testing.T) {
	d, err := Verify(parse(t, "- sizes: [1, 2]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if d.Equal() {
		t.Error("several scalars round tripped, want a diff")
	}
}

func TestBuildRejects(t *testing.T) {
	_, err := Build(parse(t, "- id: 3\n"))
	if !errors.Is(err, compile.ErrStructure) {
		t.Errorf("got %v, want ErrStructure", err)
	}
	_, err = Load(parse(t, "- tags: !script \"[1]\"\n"))
	if !errors.Is(err, compile.ErrStructure) {
		t.Errorf("got %v, want ErrStructure", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruits.yaml")
	if err := os.WriteFile(path, []byte("- {name: Apple}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Count() != 1 || m.Get(0).Value("name") != "Apple" {
		t.Errorf("loaded %v", m.Plain())
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want ErrNotExist", err)
	}
}
