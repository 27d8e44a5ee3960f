package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/fedcalc/internal/domain"
)

// CalculationEngine runs the calculators and wraps their results in reports.
// Calculators are pure; the engine only adds validation, timestamps and logging.
type CalculationEngine struct {
	Policy MultiplierPolicy
	Logger Logger
}

// NewCalculationEngine creates an engine with the flat multiplier policy and
// a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Policy: MultiplierFlat,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// DefaultInput returns a pointer to the default input record for kind.
func DefaultInput(kind domain.Kind) (any, error) {
	switch kind {
	case domain.KindTSP:
		in := domain.DefaultTSPInput()
		return &in, nil
	case domain.KindRothTraditional:
		in := domain.DefaultRothTraditionalInput()
		return &in, nil
	case domain.KindFERS:
		in := domain.DefaultFERSInput()
		return &in, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCalculator, kind)
	}
}

// Calculate seeds the default input for kind, lets bind overwrite any fields
// it knows about, and runs the calculator. bind may be nil.
func (ce *CalculationEngine) Calculate(kind domain.Kind, bind func(target any) error) (*domain.Report, error) {
	in, err := DefaultInput(kind)
	if err != nil {
		return nil, err
	}
	if bind != nil {
		if err := bind(in); err != nil {
			return nil, fmt.Errorf("bind %s input: %w", kind, err)
		}
	}
	return ce.run(kind.Title(), in), nil
}

func (ce *CalculationEngine) run(name string, in any) *domain.Report {
	switch v := in.(type) {
	case *domain.TSPInput:
		return ce.RunTSP(name, *v)
	case *domain.RothTraditionalInput:
		return ce.RunRothTraditional(name, *v)
	case *domain.FERSInput:
		return ce.RunFERS(name, *v)
	}
	panic(fmt.Sprintf("calculation: unsupported input type %T", in))
}

// RunTSP validates and projects a TSP input. Inputs are bounded first; see
// domain.TSPInput.Bounded.
func (ce *CalculationEngine) RunTSP(name string, in domain.TSPInput) *domain.Report {
	in = in.Bounded()
	warnings := ValidateTSP(in)
	res := ProjectTSP(in)
	ce.logRun(domain.KindTSP, name, warnings)
	return &domain.Report{
		Name:        name,
		Calculator:  domain.KindTSP,
		GeneratedAt: nowFunc(),
		Warnings:    warnings,
		TSPInput:    &in,
		TSP:         &res,
	}
}

// RunRothTraditional validates and runs the Roth vs. Traditional comparison.
func (ce *CalculationEngine) RunRothTraditional(name string, in domain.RothTraditionalInput) *domain.Report {
	in = in.Bounded()
	warnings := ValidateRothTraditional(in)
	res := CompareRothTraditional(in)
	ce.logRun(domain.KindRothTraditional, name, warnings)
	return &domain.Report{
		Name:                 name,
		Calculator:           domain.KindRothTraditional,
		GeneratedAt:          nowFunc(),
		Warnings:             warnings,
		RothTraditionalInput: &in,
		RothTraditional:      &res,
	}
}

// RunFERS validates and runs the pension estimate using the engine's policy.
func (ce *CalculationEngine) RunFERS(name string, in domain.FERSInput) *domain.Report {
	in = in.Bounded()
	warnings := ValidateFERS(in)
	res := EstimateFERS(in, ce.Policy)
	ce.logRun(domain.KindFERS, name, warnings)
	return &domain.Report{
		Name:        name,
		Calculator:  domain.KindFERS,
		GeneratedAt: nowFunc(),
		Warnings:    warnings,
		FERSInput:   &in,
		FERS:        &res,
	}
}

func (ce *CalculationEngine) logRun(kind domain.Kind, name string, warnings []domain.Violation) {
	ce.Logger.Debugf("calculated %s (%s)", kind, name)
	for _, w := range warnings {
		ce.Logger.Warnf("%s input warning: %s", kind, w)
	}
}

// RunScenario runs a single batch scenario.
func (ce *CalculationEngine) RunScenario(scenario *domain.Scenario) (*domain.Report, error) {
	kind, err := domain.ParseKind(string(scenario.Calculator))
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	switch kind {
	case domain.KindTSP:
		if scenario.TSP == nil {
			return nil, fmt.Errorf("scenario %q: missing tsp block", scenario.Name)
		}
		return ce.RunTSP(scenario.Name, *scenario.TSP), nil
	case domain.KindRothTraditional:
		if scenario.RothTraditional == nil {
			return nil, fmt.Errorf("scenario %q: missing roth_traditional block", scenario.Name)
		}
		return ce.RunRothTraditional(scenario.Name, *scenario.RothTraditional), nil
	default:
		if scenario.FERS == nil {
			return nil, fmt.Errorf("scenario %q: missing fers block", scenario.Name)
		}
		return ce.RunFERS(scenario.Name, *scenario.FERS), nil
	}
}

// RunScenarios runs every scenario in the configuration in order.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ReportSet, error) {
	set := &domain.ReportSet{GeneratedAt: nowFunc()}
	for i := range config.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report, err := ce.RunScenario(&config.Scenarios[i])
		if err != nil {
			return nil, err
		}
		set.Reports = append(set.Reports, report)
	}
	ce.Logger.Infof("ran %d scenarios", len(set.Reports))
	return set, nil
}
