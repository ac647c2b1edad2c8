package stress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Plan selects scenarios and sizes them. A zero field in an override falls
// back to the plan's Config.
//
//	contexts: 4
//	iterations: 100000
//	scenarios: [fetch-add, ticket-lock]
//	overrides:
//	  ticket-lock: {iterations: 10000}
type Plan struct {
	Config    `yaml:",inline"`
	Scenarios []string          `yaml:"scenarios"`
	Overrides map[string]Config `yaml:"overrides"`
}

// DefaultPlan runs every scenario with DefaultConfig.
func DefaultPlan() Plan {
	return Plan{Config: DefaultConfig()}
}

// ParsePlan decodes a YAML plan on top of DefaultPlan. Unknown keys are
// rejected.
func ParsePlan(data []byte) (Plan, error) {
	p := DefaultPlan()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Plan{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return p, nil
}

// ConfigFor returns the configuration the named scenario runs with.
func (p Plan) ConfigFor(name string) Config {
	c := p.Config
	if o, ok := p.Overrides[name]; ok {
		if o.Contexts != 0 {
			c.Contexts = o.Contexts
		}
		if o.Iterations != 0 {
			c.Iterations = o.Iterations
		}
	}
	return c
}

// Validate checks every selected scenario name and its resolved Config.
func (p Plan) Validate() error {
	for name := range p.Overrides {
		if _, err := lookup(name); err != nil {
			return err
		}
	}
	for _, name := range p.names() {
		if _, err := lookup(name); err != nil {
			return err
		}
		if err := p.ConfigFor(name).Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func (p Plan) names() []string {
	if len(p.Scenarios) == 0 {
		return Scenarios()
	}
	return p.Scenarios
}
