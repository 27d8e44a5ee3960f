package config

import (
	"fmt"
	"os"

	"github.com/rpgo/fedcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of batch scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario batch from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a scenario batch
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks the structure of a batch. Input ranges are
// not checked here; the calculators report those as warnings.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d validation failed: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateScenario normalizes the calculator kind and checks that exactly the
// matching input block is present.
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	kind, err := domain.ParseKind(string(scenario.Calculator))
	if err != nil {
		return err
	}
	scenario.Calculator = kind

	blocks := 0
	for _, present := range []bool{scenario.TSP != nil, scenario.RothTraditional != nil, scenario.FERS != nil} {
		if present {
			blocks++
		}
	}
	if blocks > 1 {
		return fmt.Errorf("only one calculator block may be set")
	}

	switch kind {
	case domain.KindTSP:
		if scenario.TSP == nil {
			return fmt.Errorf("tsp block is required for calculator %q", kind)
		}
	case domain.KindRothTraditional:
		if scenario.RothTraditional == nil {
			return fmt.Errorf("roth_traditional block is required for calculator %q", kind)
		}
	case domain.KindFERS:
		if scenario.FERS == nil {
			return fmt.Errorf("fers block is required for calculator %q", kind)
		}
		if scenario.FERS.RetirementType == "" {
			scenario.FERS.RetirementType = domain.RetirementImmediate
		}
	}

	return nil
}

// CreateExampleConfiguration creates an example scenario batch
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	tsp := domain.DefaultTSPInput()

	aggressive := domain.DefaultTSPInput()
	aggressive.AnnualContribution = decimal.NewFromInt(23000)
	aggressive.AnnualReturnPct = decimal.NewFromFloat(8.5)

	roth := domain.DefaultRothTraditionalInput()

	fers := domain.DefaultFERSInput()
	fers.BirthYear = 1980

	lawEnforcement := domain.DefaultFERSInput()
	lawEnforcement.RetirementAge = 50
	lawEnforcement.YearsOfService = decimal.NewFromInt(25)
	lawEnforcement.HasSpecialProvisions = true

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "Baseline TSP", Calculator: domain.KindTSP, TSP: &tsp},
			{Name: "Max Contribution TSP", Calculator: domain.KindTSP, TSP: &aggressive},
			{Name: "Roth vs Traditional", Calculator: domain.KindRothTraditional, RothTraditional: &roth},
			{Name: "MRA+30 Pension", Calculator: domain.KindFERS, FERS: &fers},
			{Name: "Special Provisions Pension", Calculator: domain.KindFERS, FERS: &lawEnforcement},
		},
	}
}

// SaveConfiguration writes a scenario batch as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
