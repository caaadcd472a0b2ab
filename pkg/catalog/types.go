package catalog

// Ability represents a creature ability resolved for one locale
type Ability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Creature represents a creature resolved for one locale
type Creature struct {
	Name       string    `json:"name"`
	Level      uint32    `json:"level"`
	Type       string    `json:"type"`
	Faction    string    `json:"faction"`
	Health     uint32    `json:"health"`
	Attack     uint32    `json:"attack"`
	Defence    uint32    `json:"defence"`
	MinDamage  uint32    `json:"minDamage"`
	MaxDamage  uint32    `json:"maxDamage"`
	Initiative uint32    `json:"initiative"`
	Speed      uint32    `json:"speed"`
	Morale     int32     `json:"morale"`
	Luck       int32     `json:"luck"`
	Abilities  []Ability `json:"abilities"`
}

// AbilityDefinition is an ability as written in abilities.yml.
// Name and Description may be literal text or localization references.
type AbilityDefinition struct {
	Name        string
	Description string
}

// CreatureDefinition is a creature as written in creatures.yml.
// Name, Type and Faction may be literal text or localization references,
// Abilities holds ids into the ability definitions.
type CreatureDefinition struct {
	Name       string
	Level      uint32
	Type       string
	Faction    string
	Health     uint32
	Attack     uint32
	Defence    uint32
	MinDamage  uint32
	MaxDamage  uint32
	Initiative uint32
	Speed      uint32
	Morale     int32
	Luck       int32
	Abilities  []string
}

// LocaleTable maps localization keys to literal strings for one locale
type LocaleTable map[string]string

// State describes the initialization progress of a Store
type State uint32

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
