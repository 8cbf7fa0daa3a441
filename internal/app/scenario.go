package app

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Scenario describes a batch evaluation: one function, fixed inputs, an
// optional linear sweep over a single input and an optional perturbation
// applied before every call. Scalars are accepted loosely ("2", 2, 2.0 all
// work) and coerced when the scenario runs.
type Scenario struct {
	Function string         `yaml:"function"`
	Inputs   map[string]any `yaml:"inputs"`
	Sweep    *Sweep         `yaml:"sweep"`
	Perturb  *Perturb       `yaml:"perturb"`
	Output   OutputOptions  `yaml:"output"`
}

type Sweep struct {
	Input string `yaml:"input"`
	From  any    `yaml:"from"`
	To    any    `yaml:"to"`
	Steps int    `yaml:"steps"`
}

// Perturb shifts or scales one input, modeling the injected-fault scenarios
// of the original pipeline.
type Perturb struct {
	Kind  string `yaml:"kind"` // "offset" or "scale"
	Input string `yaml:"input"`
	Value any    `yaml:"value"`
}

type OutputOptions struct {
	Precision int `yaml:"precision"`
}

// Row is one evaluated point.
type Row struct {
	Inputs  []float64 `json:"inputs"`
	Outputs []float64 `json:"outputs"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if sc.Function == "" {
		return nil, fmt.Errorf("scenario %s: no function named", path)
	}
	if sc.Inputs == nil {
		sc.Inputs = map[string]any{}
	}
	if sc.Sweep != nil {
		if sc.Sweep.Input == "" {
			return nil, fmt.Errorf("scenario %s: sweep without an input", path)
		}
		if sc.Sweep.Steps < 1 {
			sc.Sweep.Steps = 1
		}
	}
	if sc.Perturb != nil {
		switch sc.Perturb.Kind {
		case "offset", "scale":
		default:
			return nil, fmt.Errorf("scenario %s: unknown perturb kind %q", path, sc.Perturb.Kind)
		}
	}
	if sc.Output.Precision <= 0 {
		sc.Output.Precision = 6
	}
	return &sc, nil
}

// RunScenario evaluates every point the scenario describes. Inputs the
// scenario leaves out read as zero, matching the calling convention's
// treatment of absent arguments.
func RunScenario(sc *Scenario, ev *Evaluator) ([]Row, error) {
	f, err := Lookup(sc.Function)
	if err != nil {
		return nil, err
	}

	base := make([]float64, f.NIn())
	idx := map[string]int{}
	for i, name := range f.In {
		idx[name] = i
	}
	for name, raw := range sc.Inputs {
		i, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("%s has no input %q", f.Name, name)
		}
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", name, err)
		}
		base[i] = v
	}

	points := [][]float64{base}
	if sc.Sweep != nil {
		i, ok := idx[sc.Sweep.Input]
		if !ok {
			return nil, fmt.Errorf("%s has no input %q", f.Name, sc.Sweep.Input)
		}
		from, err := cast.ToFloat64E(sc.Sweep.From)
		if err != nil {
			return nil, fmt.Errorf("sweep from: %w", err)
		}
		to, err := cast.ToFloat64E(sc.Sweep.To)
		if err != nil {
			return nil, fmt.Errorf("sweep to: %w", err)
		}
		points = points[:0]
		for k := 0; k < sc.Sweep.Steps; k++ {
			p := make([]float64, len(base))
			copy(p, base)
			if sc.Sweep.Steps == 1 {
				p[i] = from
			} else {
				p[i] = from + (to-from)*float64(k)/float64(sc.Sweep.Steps-1)
			}
			points = append(points, p)
		}
	}

	if sc.Perturb != nil {
		i, ok := idx[sc.Perturb.Input]
		if !ok {
			return nil, fmt.Errorf("%s has no input %q", f.Name, sc.Perturb.Input)
		}
		v, err := cast.ToFloat64E(sc.Perturb.Value)
		if err != nil {
			return nil, fmt.Errorf("perturb value: %w", err)
		}
		for _, p := range points {
			if sc.Perturb.Kind == "offset" {
				p[i] += v
			} else {
				p[i] *= v
			}
		}
	}

	rows := make([]Row, 0, len(points))
	for _, p := range points {
		out, err := ev.Eval(sc.Function, p)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Inputs: p, Outputs: out})
	}
	return rows, nil
}
