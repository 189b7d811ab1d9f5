package config

type PersonalitiesConfig struct {
	Personalities []PersonalityDef `yaml:"personalities"`
}

// PersonalityDef biases action priorities. Each rule's When is an expr
// boolean over the acting character and the candidate action.
type PersonalityDef struct {
	ID    string       `yaml:"id"`
	Note  string       `yaml:"note"`
	Rules []WeightRule `yaml:"rules"`
}

type WeightRule struct {
	Name   string `yaml:"name"`
	When   string `yaml:"when"`
	Weight int    `yaml:"weight"`
}
