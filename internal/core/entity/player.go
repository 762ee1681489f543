package entity

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var _ Entity = (*Player)(nil)

// Player is a plain value implementation of Entity, used for rosters
// loaded from files and in tests.
type Player struct {
	ID     PlayerID `json:"id" yaml:"id"`
	UserID Identity `json:"user_id" yaml:"user_id"`
	Nick   string   `json:"nickname" yaml:"nickname"`
	RoleID RoleType `json:"role" yaml:"role"`
	TeamID Team     `json:"team" yaml:"team"`
	Alive  bool     `json:"alive" yaml:"alive"`
	Item   ItemType `json:"item" yaml:"item"`
	HP     float64  `json:"health" yaml:"health"`
	AHP    float64  `json:"artificial_health" yaml:"artificial_health"`
	HS     float64  `json:"hume_shield" yaml:"hume_shield"`
	RA     bool     `json:"remote_admin" yaml:"remote_admin"`
	God    bool     `json:"god_mode" yaml:"god_mode"`
	NoClip bool     `json:"noclip" yaml:"noclip"`
}

func (p *Player) PlayerID() PlayerID        { return p.ID }
func (p *Player) Identity() Identity        { return p.UserID }
func (p *Player) Nickname() string          { return p.Nick }
func (p *Player) Role() RoleType            { return p.RoleID }
func (p *Player) Team() Team                { return p.TeamID }
func (p *Player) IsAlive() bool             { return p.Alive }
func (p *Player) CurrentItem() ItemType     { return p.Item }
func (p *Player) Health() float64           { return p.HP }
func (p *Player) ArtificialHealth() float64 { return p.AHP }
func (p *Player) HumeShield() float64       { return p.HS }
func (p *Player) RemoteAdmin() bool         { return p.RA }
func (p *Player) GodMode() bool             { return p.God }
func (p *Player) Noclip() bool              { return p.NoClip }

func (p *Player) String() string {
	return fmt.Sprintf("%s (%d)", p.Nick, p.ID)
}

type rosterFile struct {
	Players []*Player `yaml:"players"`
}

// LoadRosterYAML reads a roster document of the form `players: [...]`.
func LoadRosterYAML(r io.Reader) (Roster, error) {
	var f rosterFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}

	seen := make(map[PlayerID]struct{}, len(f.Players))
	roster := make(Roster, 0, len(f.Players))
	for _, p := range f.Players {
		if p == nil {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("duplicate player id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
		roster = append(roster, p)
	}
	return roster, nil
}
