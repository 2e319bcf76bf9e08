package problem

import (
	"encoding/json"
	"fmt"

	"github.com/osuushi/brainwall/internal/throw"
	"github.com/pkg/errors"
)

// BonusKind names a bonus on the wire.
type BonusKind int

const (
	KindGlobalist BonusKind = iota + 1
	KindBreakALeg
	KindWallhack
	KindSuperflex
)

var bonusKindNames = map[BonusKind]string{
	KindGlobalist: "GLOBALIST",
	KindBreakALeg: "BREAK_A_LEG",
	KindWallhack:  "WALLHACK",
	KindSuperflex: "SUPERFLEX",
}

func (k BonusKind) String() string {
	if name, ok := bonusKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("BonusKind(%d)", int(k))
}

// ParseBonusKind accepts the wire names only.
func ParseBonusKind(name string) (BonusKind, error) {
	for kind, kindName := range bonusKindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, errors.Errorf("unknown bonus %q", name)
}

func (k BonusKind) MarshalJSON() ([]byte, error) {
	name, ok := bonusKindNames[k]
	if !ok {
		return nil, errors.Errorf("cannot encode %v", k)
	}
	return json.Marshal(name)
}

func (k *BonusKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	kind, err := ParseBonusKind(name)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Bonus is a bonus in effect while checking a pose. The set of variants is
// closed: Globalist, BreakALeg, Wallhack and Superflex.
type Bonus interface {
	Kind() BonusKind
	bonus()
}

// Globalist replaces the per-edge length check with a budget on the total
// relative deviation of all edges.
type Globalist struct{}

// BreakALeg splits one edge of the figure in two at a new vertex.
type BreakALeg struct {
	Edge Edge
}

// Wallhack lets one vertex of the pose stick out of the hole.
type Wallhack struct{}

// Superflex lets one edge break its length range.
type Superflex struct{}

func (Globalist) Kind() BonusKind { return KindGlobalist }
func (BreakALeg) Kind() BonusKind { return KindBreakALeg }
func (Wallhack) Kind() BonusKind  { return KindWallhack }
func (Superflex) Kind() BonusKind { return KindSuperflex }

func (Globalist) bonus() {}
func (BreakALeg) bonus() {}
func (Wallhack) bonus()  {}
func (Superflex) bonus() {}

// PoseBonus is a bonus as declared by a pose on the wire. Edge is only set for
// BREAK_A_LEG.
type PoseBonus struct {
	Bonus   BonusKind `json:"bonus"`
	Problem int       `json:"problem"`
	Edge    *Edge     `json:"edge,omitempty"`
}

// Variant converts the wire form into a Bonus. A BREAK_A_LEG declaration
// without an edge is a fatal error.
func (pb PoseBonus) Variant() Bonus {
	switch pb.Bonus {
	case KindGlobalist:
		return Globalist{}
	case KindBreakALeg:
		if pb.Edge == nil {
			throw.Fatalf("BREAK_A_LEG declared without an edge")
		}
		return BreakALeg{Edge: *pb.Edge}
	case KindWallhack:
		return Wallhack{}
	case KindSuperflex:
		return Superflex{}
	}
	throw.Fatalf("unknown bonus kind %v", pb.Bonus)
	return nil
}

// Declare is the inverse of Variant.
func Declare(b Bonus, problemID int) PoseBonus {
	pb := PoseBonus{Bonus: b.Kind(), Problem: problemID}
	if leg, ok := b.(BreakALeg); ok {
		edge := leg.Edge
		pb.Edge = &edge
	}
	return pb
}
