package config

type ActionsConfig struct {
	Actions []ActionDef `yaml:"actions"`
}

type ActionDef struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Kind           string `yaml:"kind"` // attack | spell | skill | consumable
	Cells          []int  `yaml:"cells"`
	Center         int    `yaml:"center"`
	Retargetable   bool   `yaml:"retargetable"`
	Through        bool   `yaml:"through"`
	Weight         *int   `yaml:"weight"`
	Support        bool   `yaml:"support"`
	Revives        bool   `yaml:"revives"`
	Damage         int    `yaml:"damage"`
	Healing        int    `yaml:"healing"`
	HealingPercent int    `yaml:"healing_percent"`
	ManaCost       int    `yaml:"mana_cost"`
	Cooldown       int    `yaml:"cooldown"`
	Note           string `yaml:"note"`
}

type ItemsConfig struct {
	Items []ItemDef `yaml:"items"`
}

type ItemDef struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Action string `yaml:"action"`
	Note   string `yaml:"note"`
}
