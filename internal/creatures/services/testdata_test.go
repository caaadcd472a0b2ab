package services

import "testing/fstest"

const creaturesYAML = `
- name: "$griffin_name"
  level: 3
  type: "$magic_creature"
  faction: "$temple"
  health: 30
  attack: 7
  defence: 5
  minDamage: 3
  maxDamage: 5
  initiative: 6
  speed: 7
  morale: 0
  luck: 0
  abilities: [flying]
- name: "$imp_name"
  level: 1
  type: "$demon"
  faction: "$inferno"
  health: 6
  attack: 2
  defence: 1
  minDamage: 1
  maxDamage: 2
  initiative: 8
  speed: 5
  morale: 0
  luck: 1
`

const abilitiesYAML = `
flying:
  name: "$flying_ability_name"
  description: "$flying_ability_description"
`

func testDataFS() fstest.MapFS {
	return fstest.MapFS{
		"creatures.yml": {Data: []byte(creaturesYAML)},
		"abilities.yml": {Data: []byte(abilitiesYAML)},
		"locale/en.yml": {Data: []byte(`
griffin_name: Griffin
imp_name: Imp
magic_creature: Magic Creature
demon: Demon
temple: Temple
inferno: Inferno
flying_ability_name: Flying
flying_ability_description: Can fly over walls.
`)},
		"locale/ru.yml": {Data: []byte(`
griffin_name: Грифон
imp_name: Бес
magic_creature: Магическое существо
demon: Демон
temple: Храм
inferno: Инферно
flying_ability_name: Полёт
flying_ability_description: Может перелетать через стены.
`)},
	}
}
