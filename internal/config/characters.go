package config

type CharactersConfig struct {
	Characters []CharacterDef `yaml:"characters"`
}

type CharacterDef struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Pos         int         `yaml:"pos"`
	MaxHP       int         `yaml:"max_hp"`
	HP          *int        `yaml:"hp"`
	MaxMana     int         `yaml:"max_mana"`
	Mana        *int        `yaml:"mana"`
	Threat      int         `yaml:"threat"`
	Speed       int         `yaml:"speed"`
	Stats       StatsDef    `yaml:"stats"`
	Actions     []string    `yaml:"actions"`
	Inventory   []ItemStack `yaml:"inventory"`
	Personality string      `yaml:"personality"`
	Note        string      `yaml:"note"`
}

type StatsDef struct {
	Strength  int `yaml:"strength"`
	Intellect int `yaml:"intellect"`
	Wisdom    int `yaml:"wisdom"`
	Defense   int `yaml:"defense"`
}

type ItemStack struct {
	Item     string `yaml:"item"`
	Quantity int    `yaml:"quantity"`
}
