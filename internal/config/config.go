package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bps/internal/physics"
	"github.com/san-kum/bps/internal/vecmath"
)

const (
	DefaultDt            = 0.001
	DefaultDuration      = 10.0
	DefaultWorkers       = 1
	DefaultSampleEvery   = 10
	DefaultCloseApproach = 1e-3

	UnitsSI     = "si"
	UnitsScaled = "scaled"
)

// Scaled is the unit system behind UnitsScaled: G = k = 1 and a speed of
// light far above any preset velocity.
var Scaled = physics.Units{G: 1, K: 1, C: 1e3}

var (
	ErrNoParticles  = errors.New("config: no particles")
	ErrUnknownUnits = errors.New("config: unknown unit system")
	ErrNegativeMass = errors.New("config: negative mass")
	ErrBadTimestep  = errors.New("config: dt and duration must be positive")
)

type Config struct {
	Name          string           `yaml:"name"`
	Dt            float64          `yaml:"dt"`
	Duration      float64          `yaml:"duration"`
	Workers       int              `yaml:"workers"`
	SampleEvery   int              `yaml:"sample_every"`
	CloseApproach float64          `yaml:"close_approach"`
	Units         string           `yaml:"units"`
	Constants     ConstantsConfig  `yaml:"constants"`
	Forces        ForcesConfig     `yaml:"forces"`
	Particles     []ParticleConfig `yaml:"particles"`
}

// ConstantsConfig overrides single constants of the chosen unit system.
// Zero keeps the unit system's value.
type ConstantsConfig struct {
	G float64 `yaml:"g,omitempty"`
	K float64 `yaml:"k,omitempty"`
	C float64 `yaml:"c,omitempty"`
}

type ForcesConfig struct {
	Gravity bool `yaml:"gravity"`
	Coulomb bool `yaml:"coulomb"`
}

type ParticleConfig struct {
	Position [3]float64 `yaml:"position,flow"`
	Velocity [3]float64 `yaml:"velocity,flow"`
	Mass     float64    `yaml:"mass"`
	Charge   float64    `yaml:"charge,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:          "custom",
		Dt:            DefaultDt,
		Duration:      DefaultDuration,
		Workers:       DefaultWorkers,
		SampleEvery:   DefaultSampleEvery,
		CloseApproach: DefaultCloseApproach,
		Units:         UnitsScaled,
		Forces: ForcesConfig{
			Gravity: true,
			Coulomb: true,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML on top of DefaultConfig.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dt <= 0 || c.Duration <= 0 {
		return fmt.Errorf("%w: dt=%g duration=%g", ErrBadTimestep, c.Dt, c.Duration)
	}
	if len(c.Particles) == 0 {
		return ErrNoParticles
	}
	for i, p := range c.Particles {
		if p.Mass < 0 {
			return fmt.Errorf("%w: particle %d has mass %g", ErrNegativeMass, i, p.Mass)
		}
	}
	if _, err := c.GetUnits(); err != nil {
		return err
	}
	return nil
}

// GetUnits resolves the unit system and applies constant overrides.
func (c *Config) GetUnits() (physics.Units, error) {
	var u physics.Units
	switch c.Units {
	case UnitsSI:
		u = physics.SI
	case UnitsScaled, "":
		u = Scaled
	default:
		return physics.Units{}, fmt.Errorf("%w: %q", ErrUnknownUnits, c.Units)
	}

	if c.Constants.G != 0 {
		u.G = c.Constants.G
	}
	if c.Constants.K != 0 {
		u.K = c.Constants.K
	}
	if c.Constants.C != 0 {
		u.C = c.Constants.C
	}
	return u, nil
}

// BuildSystem validates c and returns a fresh system for it.
func (c *Config) BuildSystem() (*physics.System, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	units, err := c.GetUnits()
	if err != nil {
		return nil, err
	}

	sys := physics.NewSystem(units)
	sys.Gravity = c.Forces.Gravity
	sys.Coulomb = c.Forces.Coulomb
	if c.Workers > 0 {
		sys.Workers = c.Workers
	}

	for _, p := range c.Particles {
		sys.Add(physics.NewParticle(
			vecmath.ThreeVector(p.Position),
			vecmath.ThreeVector(p.Velocity),
			p.Mass, p.Charge,
		))
	}
	return sys, nil
}

// Clone returns a deep copy so presets are never modified in place.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Particles = append([]ParticleConfig(nil), c.Particles...)
	return &cp
}
