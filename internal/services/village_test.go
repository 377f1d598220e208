package services

import (
	"errors"
	"testing"
)

func TestValidatePlacements(t *testing.T) {
	owned := map[string]bool{
		"house-cottage": true,
		"decor-tree":    true,
		"tent-basic":    true,
	}

	// Valid layout: distinct in-bounds cells, all owned.
	placements := []Placement{
		{ItemID: "house-cottage", Position: 0},
		{ItemID: "decor-tree", Position: 63},
		{ItemID: "tent-basic", Position: 17},
	}
	if err := ValidatePlacements(placements, 8, owned); err != nil {
		t.Errorf("valid layout rejected: %v", err)
	}

	// Position must stay below grid_size².
	bad := []Placement{{ItemID: "decor-tree", Position: 64}}
	if err := ValidatePlacements(bad, 8, owned); !errors.Is(err, ErrPositionOutside) {
		t.Errorf("expected ErrPositionOutside, got %v", err)
	}
	if err := ValidatePlacements(bad, 9, owned); err != nil {
		t.Errorf("position 64 is valid on a 9x9 grid: %v", err)
	}

	// Negative positions are outside too.
	neg := []Placement{{ItemID: "decor-tree", Position: -1}}
	if err := ValidatePlacements(neg, 8, owned); !errors.Is(err, ErrPositionOutside) {
		t.Errorf("expected ErrPositionOutside for negative, got %v", err)
	}

	// At most one item per cell.
	dup := []Placement{
		{ItemID: "house-cottage", Position: 5},
		{ItemID: "decor-tree", Position: 5},
	}
	if err := ValidatePlacements(dup, 8, owned); !errors.Is(err, ErrPositionTaken) {
		t.Errorf("expected ErrPositionTaken, got %v", err)
	}

	// Unknown and unowned items are rejected.
	unknown := []Placement{{ItemID: "no-such-item", Position: 1}}
	if err := ValidatePlacements(unknown, 8, owned); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("expected ErrUnknownItem, got %v", err)
	}
	unowned := []Placement{{ItemID: "house-manor", Position: 1}}
	if err := ValidatePlacements(unowned, 8, owned); !errors.Is(err, ErrItemNotOwned) {
		t.Errorf("expected ErrItemNotOwned, got %v", err)
	}

	// Empty layout is a valid save (clears the grid).
	if err := ValidatePlacements(nil, 8, owned); err != nil {
		t.Errorf("empty layout rejected: %v", err)
	}
}
