package location

import (
	"errors"
	"strings"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/errs"
)

// ErrGovernorateIsNotConstructed is returned when a Governorate instance was
// not created through NewGovernorate or RestoreGovernorate.
var ErrGovernorateIsNotConstructed = errors.New("Governorate must be created via NewGovernorate constructor")

// Governorate is the top-level geographic unit. It carries no shipping cost
// of its own; it is a grouping for cities.
//
// Invariants:
//   - name is non-empty and globally unique (uniqueness enforced at write time
//     by the registry plus a database unique index)
//   - code is non-empty, globally unique, and always stored uppercase
//   - deactivation is a pure flag flip; it never cascades to cities
type Governorate struct {
	id       kernel.UUID
	name     string
	code     string
	isActive bool

	isConstructed bool
}

// NewGovernorate creates a governorate with the active flag set.
// The code is normalized to uppercase before storage.
func NewGovernorate(id kernel.UUID, name, code string) (*Governorate, error) {
	governorate := &Governorate{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		governorate.setID(id),
		governorate.setName(name),
		governorate.setCode(code),
	); err != nil {
		return nil, err
	}

	return governorate, nil
}

// RestoreGovernorate reconstructs a governorate from persistence.
func RestoreGovernorate(id kernel.UUID, name, code string, isActive bool) (*Governorate, error) {
	governorate, err := NewGovernorate(id, name, code)
	if err != nil {
		return nil, err
	}

	governorate.isActive = isActive
	return governorate, nil
}

// Validate ensures the instance was created through a constructor.
func (g *Governorate) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrGovernorateIsNotConstructed
	}
	return nil
}

// ID returns the governorate's unique identifier.
func (g *Governorate) ID() kernel.UUID {
	return g.id
}

// Name returns the governorate name as stored (case-sensitive).
func (g *Governorate) Name() string {
	return g.name
}

// Code returns the uppercase governorate code.
func (g *Governorate) Code() string {
	return g.code
}

// IsActive reports the soft visibility flag.
func (g *Governorate) IsActive() bool {
	return g.isActive
}

// Rename replaces both name and code. Both must be present; the code is
// normalized to uppercase.
func (g *Governorate) Rename(name, code string) error {
	return errors.Join(
		g.setName(name),
		g.setCode(code),
	)
}

// ToggleActive flips the active flag. Dependent cities are never touched;
// the flag is a selection hint for new city assignment, not a cascading state.
func (g *Governorate) ToggleActive() {
	g.isActive = !g.isActive
}

func (g *Governorate) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *Governorate) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("govName")
	}
	g.name = strings.TrimSpace(name)
	return nil
}

func (g *Governorate) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("govCode")
	}
	g.code = strings.ToUpper(strings.TrimSpace(code))
	return nil
}
