package matchsession

import (
	"errors"
	"fmt"

	"github.com/sportsynz/scorectl/internal/scoreboard"
)

// Slot is one of the two team positions in match setup.
type Slot int

const (
	SlotA Slot = iota
	SlotB
)

func (s Slot) String() string {
	if s == SlotA {
		return "A"
	}
	return "B"
}

func (s Slot) other() Slot {
	if s == SlotA {
		return SlotB
	}
	return SlotA
}

// ErrSlotsIncomplete is returned when match creation is attempted with an
// empty slot.
var ErrSlotsIncomplete = errors.New("matchsession: both Team A and Team B must be selected")

// Selection tracks the two team slots during match setup and enforces that
// they never simultaneously hold the same team.
type Selection struct {
	slots [2]*scoreboard.Team
}

// Team returns the occupant of slot, or nil when empty.
func (sel *Selection) Team(slot Slot) *scoreboard.Team {
	return sel.slots[slot]
}

// Selectable filters a roster down to the teams that may occupy slot: the
// team already in the other slot is excluded up front rather than rejected
// after the fact.
func (sel *Selection) Selectable(slot Slot, roster []scoreboard.Team) []scoreboard.Team {
	other := sel.slots[slot.other()]
	if other == nil {
		return roster
	}
	out := make([]scoreboard.Team, 0, len(roster))
	for _, t := range roster {
		if t.ID == other.ID {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Select places team in slot. Selecting the other slot's occupant is refused
// so the distinct-teams invariant holds even if a caller bypasses Selectable.
func (sel *Selection) Select(slot Slot, team scoreboard.Team) error {
	if other := sel.slots[slot.other()]; other != nil && other.ID == team.ID {
		return fmt.Errorf("Select: team %q already occupies slot %s", team.Name, slot.other())
	}
	t := team
	sel.slots[slot] = &t
	return nil
}

// Ready reports whether both slots are populated.
func (sel *Selection) Ready() bool {
	return sel.slots[SlotA] != nil && sel.slots[SlotB] != nil
}

// Pair returns both selected teams. ErrSlotsIncomplete when either slot is
// empty: no match-create call may be issued in that case.
func (sel *Selection) Pair() (scoreboard.Team, scoreboard.Team, error) {
	if !sel.Ready() {
		return scoreboard.Team{}, scoreboard.Team{}, ErrSlotsIncomplete
	}
	return *sel.slots[SlotA], *sel.slots[SlotB], nil
}
