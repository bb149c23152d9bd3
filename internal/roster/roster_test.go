package roster

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/protomem/time-clock/internal/model"
)

const _sample = `
employees:
  - id: u2
    name: Bob
    department: Sales
  - id: " u1 "
    name: Alice
    department: Engineering
`

func TestParseKeepsOrder(t *testing.T) {
	dir, err := Parse([]byte(_sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	all := dir.All()
	if len(all) != 2 || all[0].ID != "u2" || all[1].ID != "u1" {
		t.Fatalf("unexpected order: %+v", all)
	}

	emp, ok := dir.Lookup("u1")
	if !ok || emp.Name != "Alice" || emp.Department != "Engineering" {
		t.Fatalf("lookup u1: %+v, %v", emp, ok)
	}
}

func TestParseRejectsDuplicates(t *testing.T) {
	doc := `
employees:
  - {id: u1, name: Alice}
  - {id: u1, name: Bob}
`
	if _, err := Parse([]byte(doc)); !errors.Is(err, model.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
}

func TestParseRejectsBlank(t *testing.T) {
	doc := `
employees:
  - {id: "", name: Alice}
`
	if _, err := Parse([]byte(doc)); !errors.Is(err, model.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestEmptyRoster(t *testing.T) {
	dir, err := Parse([]byte("employees: []\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := dir.All(); len(got) != 0 {
		t.Fatalf("expected no employees, got %+v", got)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	dir, err := Parse([]byte(_sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	all := dir.All()
	all[0].Name = "changed"

	if emp, _ := dir.Lookup("u2"); emp.Name != "Bob" {
		t.Fatalf("directory mutated through All(): %+v", emp)
	}
}

func TestIdentify(t *testing.T) {
	dir, err := Parse([]byte(_sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := Identify(dir, "u2"); got.Name != "Bob" {
		t.Fatalf("Identify(u2) = %+v", got)
	}

	got := Identify(dir, "ghost")
	want := model.Employee{ID: "ghost", Name: UnknownName, Department: UnknownDepartment}
	if got != want {
		t.Fatalf("Identify(ghost) = %+v, want %+v", got, want)
	}
}

func TestLoadFile(t *testing.T) {
	fallback := fstest.MapFS{"roster.yaml": {Data: []byte(_sample)}}

	t.Run("fallback", func(t *testing.T) {
		dir, err := LoadFile("", fallback, "roster.yaml")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(dir.All()) != 2 {
			t.Fatalf("unexpected roster %+v", dir.All())
		}
	})

	t.Run("path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roster.yaml")
		if err := os.WriteFile(path, []byte("employees:\n  - {id: u9, name: Zed}\n"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}

		dir, err := LoadFile(path, fallback, "roster.yaml")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if all := dir.All(); len(all) != 1 || all[0].ID != "u9" {
			t.Fatalf("unexpected roster %+v", all)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), fallback, "roster.yaml"); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})
}
