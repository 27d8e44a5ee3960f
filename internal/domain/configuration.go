package domain

// Scenario is one named calculator run in a batch file. Exactly the block
// matching Calculator is used.
type Scenario struct {
	Name            string                `yaml:"name" json:"name"`
	Calculator      Kind                  `yaml:"calculator" json:"calculator"`
	TSP             *TSPInput             `yaml:"tsp,omitempty" json:"tsp,omitempty"`
	RothTraditional *RothTraditionalInput `yaml:"roth_traditional,omitempty" json:"roth_traditional,omitempty"`
	FERS            *FERSInput            `yaml:"fers,omitempty" json:"fers,omitempty"`
}

// Configuration is a batch of calculator scenarios loaded from YAML.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}
