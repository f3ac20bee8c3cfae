package config

import (
	"fmt"

	"github.com/DennisPrediger/SLAC-sub000/pkg/slac"
)

// Config is a parsed environment document.
type Config struct {
	Variables   map[string]any    `yaml:"variables" json:"variables"`
	Expressions map[string]string `yaml:"expressions" json:"expressions"`
	Engine      EngineConfig      `yaml:"engine" json:"engine"`
}

// EngineConfig carries the evaluation settings of a document. Nil
// pointers mean "not set" so callers can keep their own defaults.
type EngineConfig struct {
	Optimize  *bool  `yaml:"optimize" json:"optimize"`
	Validate  *bool  `yaml:"validate" json:"validate"`
	CachePath string `yaml:"cache_path" json:"cache_path"`
}

// Environment converts the declared variables into a fresh
// StaticEnvironment. Values outside the dynamic type system fail.
func (c Config) Environment() (*slac.StaticEnvironment, error) {
	env := slac.NewStaticEnvironment()
	if err := c.Apply(env); err != nil {
		return nil, err
	}
	return env, nil
}

// Apply adds the declared variables to an existing environment,
// overwriting same-named entries.
func (c Config) Apply(env *slac.StaticEnvironment) error {
	for name, raw := range c.Variables {
		value, err := toValue(raw)
		if err != nil {
			return fmt.Errorf("variable %q: %w", name, err)
		}
		env.AddVariable(name, value)
	}
	return nil
}

// Expression looks up a named expression and compiles it.
func (c Config) Expression(name string) (slac.Expression, error) {
	source, ok := c.Expressions[name]
	if !ok {
		return nil, fmt.Errorf("no expression named %q", name)
	}
	expr, err := slac.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("expression %q: %w", name, err)
	}
	return expr, nil
}

// toValue maps a decoded YAML/JSON scalar or list onto a Value.
func toValue(raw any) (slac.Value, error) {
	switch v := raw.(type) {
	case bool:
		return slac.NewBoolean(v), nil
	case int:
		return slac.NewNumber(float64(v)), nil
	case int64:
		return slac.NewNumber(float64(v)), nil
	case float64:
		return slac.NewNumber(v), nil
	case string:
		return slac.NewString(v), nil
	case []any:
		items := make([]slac.Value, len(v))
		for i, item := range v {
			value, err := toValue(item)
			if err != nil {
				return slac.Value{}, err
			}
			items[i] = value
		}
		return slac.NewArray(items...), nil
	default:
		return slac.Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}
