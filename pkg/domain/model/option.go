package model

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
)

// IDGenerator issues identifiers for new select options
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates UUID v4 option IDs
type UUIDGenerator struct{}

var _ IDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SequenceGenerator generates deterministic IDs of the form "<prefix><n>", starting at 1.
// It is safe for concurrent use.
type SequenceGenerator struct {
	Prefix string
	next   atomic.Uint64
}

var _ IDGenerator = (*SequenceGenerator)(nil)

func (g *SequenceGenerator) NewID() string {
	return fmt.Sprintf("%s%d", g.Prefix, g.next.Add(1))
}

// SelectOption is a named, colored choice of a select field
type SelectOption struct {
	ID    types.OptionID `json:"id" toml:"id"`
	Name  string         `json:"name" toml:"name"`
	Color string         `json:"color" toml:"color"`
}

// NewOption creates an option with a fresh ID and no color
func NewOption(gen IDGenerator, name string) SelectOption {
	return SelectOption{
		ID:   types.OptionID(gen.NewID()),
		Name: name,
	}
}

// Equal reports whether both options have the same ID. Name and color are ignored.
func (o SelectOption) Equal(other SelectOption) bool {
	return o.ID == other.ID
}

// Options is the ordered option list of a field
type Options []SelectOption

// Find returns the option with the given ID
func (x Options) Find(id types.OptionID) (SelectOption, bool) {
	for _, opt := range x {
		if opt.ID == id {
			return opt, true
		}
	}
	return SelectOption{}, false
}

// Contains reports whether an option with the given ID exists
func (x Options) Contains(id types.OptionID) bool {
	_, ok := x.Find(id)
	return ok
}

// Clone returns a copy that does not share the backing array
func (x Options) Clone() Options {
	if x == nil {
		return nil
	}
	copied := make(Options, len(x))
	copy(copied, x)
	return copied
}
