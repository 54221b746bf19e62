package config

type DuelConfig struct {
	Note       string         `yaml:"note"`
	StatInit   string         `yaml:"stat_init" validate:"omitempty,oneof=base zero"`
	Characters []CharacterDef `yaml:"characters" validate:"len=2,dive"`
	// Items may be left empty to have a pool generated from the seed.
	Items []ItemDef `yaml:"items" validate:"omitempty,dive"`
}

type CharacterDef struct {
	Name        string `yaml:"name" validate:"required"`
	BaseAttack  int    `yaml:"base_attack" validate:"gte=0"`
	BaseDefense int    `yaml:"base_defense" validate:"gte=0"`
}

type ItemDef struct {
	Category string `yaml:"category" validate:"required,gearcategory"`
	Prefix   string `yaml:"prefix"`
	Name     string `yaml:"name" validate:"required"`
	Attack   int    `yaml:"attack" validate:"gte=0"`
	Defense  int    `yaml:"defense" validate:"gte=0"`
	Note     string `yaml:"note"`
}
