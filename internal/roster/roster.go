// Package roster provides the read-only employee directory.
package roster

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/protomem/time-clock/internal/model"
	"github.com/protomem/time-clock/internal/validator"
)

const (
	UnknownName       = "unknown user"
	UnknownDepartment = "unknown department"
)

type Directory interface {
	// All returns every employee in a stable order.
	All() []model.Employee
	Lookup(id model.UserID) (model.Employee, bool)
}

// Identify resolves id, falling back to a placeholder identity for ids the
// directory does not know.
func Identify(dir Directory, id model.UserID) model.Employee {
	if emp, ok := dir.Lookup(id); ok {
		return emp
	}
	return model.Employee{ID: id, Name: UnknownName, Department: UnknownDepartment}
}

var _ Directory = (*Static)(nil)

// Static is a directory fixed at construction time.
type Static struct {
	employees []model.Employee
	index     map[model.UserID]int
}

func NewStatic(employees []model.Employee) (*Static, error) {
	s := &Static{
		employees: make([]model.Employee, 0, len(employees)),
		index:     make(map[model.UserID]int, len(employees)),
	}

	for i, emp := range employees {
		var v validator.Validator
		v.CheckField(validator.NotBlank(emp.ID), "id", "cannot be blank")
		v.CheckField(validator.NotBlank(emp.Name), "name", "cannot be blank")
		if v.HasErrors() {
			return nil, model.Invalidf("roster", "employee #%d: %s", i+1, v)
		}

		if _, ok := s.index[emp.ID]; ok {
			return nil, model.NewError("roster", fmt.Errorf("employee %q: %w", emp.ID, model.ErrExists))
		}

		s.index[emp.ID] = len(s.employees)
		s.employees = append(s.employees, emp)
	}

	return s, nil
}

func (s *Static) All() []model.Employee {
	out := make([]model.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

func (s *Static) Lookup(id model.UserID) (model.Employee, bool) {
	i, ok := s.index[id]
	if !ok {
		return model.Employee{}, false
	}
	return s.employees[i], true
}

type file struct {
	Employees []model.Employee `yaml:"employees"`
}

// Parse reads a YAML roster document.
func Parse(data []byte) (*Static, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, model.NewError("roster", err)
	}

	for i := range f.Employees {
		f.Employees[i].ID = strings.TrimSpace(f.Employees[i].ID)
	}

	return NewStatic(f.Employees)
}

// LoadFile reads the roster at path, or name inside fallback when path is
// empty.
func LoadFile(path string, fallback fs.FS, name string) (*Static, error) {
	var (
		data []byte
		err  error
	)

	if path != "" {
		data, err = os.ReadFile(path)
	} else if fallback != nil {
		data, err = fs.ReadFile(fallback, name)
	} else {
		err = errors.New("no roster source")
	}
	if err != nil {
		return nil, model.NewError("roster", err)
	}

	return Parse(data)
}
