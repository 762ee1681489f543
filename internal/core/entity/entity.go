package entity

import "github.com/google/uuid"

// PlayerID is the numeric id a connected entity holds for its session.
type PlayerID int

// Identity is a stable operator identity: a player's persistent user id or
// the fixed console identity.
type Identity string

// Entity is a read-only view of a connected participant.
type Entity interface {
	// Basic identity

	PlayerID() PlayerID
	Identity() Identity
	Nickname() string

	// Game state

	Role() RoleType
	Team() Team
	IsAlive() bool
	CurrentItem() ItemType
	Health() float64
	ArtificialHealth() float64
	HumeShield() float64

	// Admin flags

	RemoteAdmin() bool
	GodMode() bool
	Noclip() bool
}

// Roster is the order-stable snapshot of connected entities a query runs against.
type Roster []Entity

// Find returns the roster entity owned by id.
func (r Roster) Find(id Identity) (Entity, bool) {
	if id == "" {
		return nil, false
	}
	for _, e := range r {
		if e.Identity() == id {
			return e, true
		}
	}
	return nil, false
}

// Filter returns the entities accepted by keep, in roster order.
func (r Roster) Filter(keep func(Entity) bool) []Entity {
	out := make([]Entity, 0, len(r))
	for _, e := range r {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Dedup returns entities without repeated player ids, keeping first occurrences.
func Dedup(entities []Entity) []Entity {
	seen := make(map[PlayerID]struct{}, len(entities))
	out := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if e == nil {
			continue
		}
		if _, ok := seen[e.PlayerID()]; ok {
			continue
		}
		seen[e.PlayerID()] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Console is the fixed identity of the non-player server console.
var Console = Identity("console-" + uuid.NewSHA1(uuid.NameSpaceOID, []byte("selector/console")).String())
