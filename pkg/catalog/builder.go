package catalog

import "fmt"

// Build resolves creature definitions against one locale table.
// Output order follows defs. Any unresolved reference or unknown ability id
// aborts the build and no creatures are returned.
func Build(defs []CreatureDefinition, abilities map[string]AbilityDefinition, table LocaleTable) ([]Creature, error) {
	// Distinct abilities are resolved on first use and reused for later creatures.
	resolved := make(map[string]Ability, len(abilities))

	creatures := make([]Creature, 0, len(defs))
	for i := range defs {
		creature, err := buildCreature(&defs[i], abilities, table, resolved)
		if err != nil {
			return nil, err
		}
		creatures = append(creatures, creature)
	}

	return creatures, nil
}

func buildCreature(def *CreatureDefinition, abilities map[string]AbilityDefinition, table LocaleTable, resolved map[string]Ability) (Creature, error) {
	name, err := Resolve(def.Name, table)
	if err != nil {
		return Creature{}, err
	}
	creatureType, err := Resolve(def.Type, table)
	if err != nil {
		return Creature{}, err
	}
	faction, err := Resolve(def.Faction, table)
	if err != nil {
		return Creature{}, err
	}

	creatureAbilities := make([]Ability, 0, len(def.Abilities))
	for _, id := range def.Abilities {
		ability, ok := resolved[id]
		if !ok {
			abilityDef, exists := abilities[id]
			if !exists {
				return Creature{}, &UnknownAbilityError{AbilityID: id, Creature: def.Name}
			}
			ability, err = buildAbility(abilityDef, table)
			if err != nil {
				return Creature{}, fmt.Errorf("ability %s: %w", id, err)
			}
			resolved[id] = ability
		}
		creatureAbilities = append(creatureAbilities, ability)
	}

	return Creature{
		Name:       name,
		Level:      def.Level,
		Type:       creatureType,
		Faction:    faction,
		Health:     def.Health,
		Attack:     def.Attack,
		Defence:    def.Defence,
		MinDamage:  def.MinDamage,
		MaxDamage:  def.MaxDamage,
		Initiative: def.Initiative,
		Speed:      def.Speed,
		Morale:     def.Morale,
		Luck:       def.Luck,
		Abilities:  creatureAbilities,
	}, nil
}

func buildAbility(def AbilityDefinition, table LocaleTable) (Ability, error) {
	name, err := Resolve(def.Name, table)
	if err != nil {
		return Ability{}, err
	}
	description, err := Resolve(def.Description, table)
	if err != nil {
		return Ability{}, err
	}
	return Ability{Name: name, Description: description}, nil
}
