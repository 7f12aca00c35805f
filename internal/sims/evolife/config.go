package evolife

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// DefaultRules is the rule string used when none is configured.
const DefaultRules = "B3/S23"

// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
var ErrUnknownStrategy = errors.New("unknown initialization strategy")

// Strategy selects how generation 0 is populated.
type Strategy string

const (
	// StrategyUniform applies one fixed density everywhere.
	StrategyUniform Strategy = "uniform"
	// StrategyCenter is densest at the centre, sparsest at the edges.
	StrategyCenter Strategy = "center"
	// StrategyClusters grows blob-like seeds around already-placed cells.
	StrategyClusters Strategy = "clusters"
)

// Strategies lists the supported strategies.
func Strategies() []Strategy {
	return []Strategy{StrategyUniform, StrategyCenter, StrategyClusters}
}

// ParseStrategy resolves a strategy name, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Strategies() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Params holds the tunable thresholds, rates and cycle lengths. Rates are
// percentages unless noted otherwise.
type Params struct {
	DensityMin   int `yaml:"density_min"`
	DensityMax   int `yaml:"density_max"`
	ClusterBonus int `yaml:"cluster_bonus"`

	MaxAge            int `yaml:"max_age"`
	FertilityOnset    int `yaml:"fertility_onset"`
	FertilityOptimal  int `yaml:"fertility_optimal"`
	FertilityDecline  int `yaml:"fertility_decline"`
	AgingAcceleration int `yaml:"aging_acceleration"`
	AgingFactor       int `yaml:"aging_factor"`
	AgeHeredity       int `yaml:"age_heredity"`
	AgeMutationSpan   int `yaml:"age_mutation_span"`
	MutationRate      int `yaml:"mutation_rate"`

	NutrientConsumption  int `yaml:"nutrient_consumption"`
	NutrientRegeneration int `yaml:"nutrient_regeneration"`
	InitialNutrients     int `yaml:"initial_nutrients"`
	FoodCycle            int `yaml:"food_cycle"`
	CompetitionThreshold int `yaml:"competition_threshold"`
	CompetitionStress    int `yaml:"competition_stress"`

	FitnessAmplitude int `yaml:"fitness_amplitude"`
	EnvironmentCycle int `yaml:"environment_cycle"`

	PredationCycle    int     `yaml:"predation_cycle"`
	PredationPressure int     `yaml:"predation_pressure"`
	PredationMinimum  float64 `yaml:"predation_minimum"`
	EpidemicCycle     int     `yaml:"epidemic_cycle"`
	EpidemicMortality int     `yaml:"epidemic_mortality"`

	MigrationThreshold     int `yaml:"migration_threshold"`
	TerritorialCompetition int `yaml:"territorial_competition"`

	InstabilityAge         int `yaml:"instability_age"`
	GenerationInstability  int `yaml:"generation_instability"`
	InstabilityDeathChance int `yaml:"instability_death_chance"`
	FatalDensity           int `yaml:"fatal_density"`
	DensityDeathChance     int `yaml:"density_death_chance"`

	BaseMutationRate         int `yaml:"base_mutation_rate"`
	StressMutationMultiplier int `yaml:"stress_mutation_multiplier"`
	ResistanceEvolutionRate  int `yaml:"resistance_evolution_rate"`
	RaceInheritance          int `yaml:"race_inheritance"`
	HybridChance             int `yaml:"hybrid_chance"`
	DispersalChance          int `yaml:"dispersal_chance"`

	InitialPolarization int `yaml:"initial_polarization"`
	MovementInterval    int `yaml:"movement_interval"`
	MoveChance          int `yaml:"move_chance"`
	FastMovementPeriod  int `yaml:"fast_movement_period"`
	SlowMovementPeriod  int `yaml:"slow_movement_period"`
}

// Config controls the automaton dimensions, rules and seeding.
type Config struct {
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	Seed     int64    `yaml:"seed"`
	Rules    string   `yaml:"rules"`
	Strategy Strategy `yaml:"strategy"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration. defaults.yaml mirrors it.
func DefaultConfig() Config {
	return Config{
		Width:    160,
		Height:   50,
		Seed:     0x94215687,
		Rules:    DefaultRules,
		Strategy: StrategyClusters,
		Params: Params{
			DensityMin:   15,
			DensityMax:   80,
			ClusterBonus: 6,

			MaxAge:            1200,
			FertilityOnset:    5,
			FertilityOptimal:  30,
			FertilityDecline:  150,
			AgingAcceleration: 200,
			AgingFactor:       2,
			AgeHeredity:       5,
			AgeMutationSpan:   15,
			MutationRate:      8,

			NutrientConsumption:  1,
			NutrientRegeneration: 3,
			InitialNutrients:     100,
			FoodCycle:            90,
			CompetitionThreshold: 5,
			CompetitionStress:    2,

			FitnessAmplitude: 50,
			EnvironmentCycle: 150,

			PredationCycle:    80,
			PredationPressure: 15,
			PredationMinimum:  0.2,
			EpidemicCycle:     120,
			EpidemicMortality: 20,

			MigrationThreshold:     6,
			TerritorialCompetition: 8,

			InstabilityAge:         500,
			GenerationInstability:  1,
			InstabilityDeathChance: 10,
			FatalDensity:           999,
			DensityDeathChance:     0,

			BaseMutationRate:         3,
			StressMutationMultiplier: 4,
			ResistanceEvolutionRate:  12,
			RaceInheritance:          70,
			HybridChance:             20,
			DispersalChance:          60,

			InitialPolarization: 128,
			MovementInterval:    10,
			MoveChance:          30,
			FastMovementPeriod:  50,
			SlowMovementPeriod:  100,
		},
	}
}

// Load reads a YAML configuration. The embedded defaults are applied first so
// a file only needs the keys it overrides. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if cfg.Strategy != "" {
		s, err := ParseStrategy(string(cfg.Strategy))
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Strategy = s
	}
	cfg.Sanitize()
	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Sanitize clamps values into ranges the engine can work with. Out-of-range
// input is corrected rather than rejected.
func (c *Config) Sanitize() {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.Strategy == "" {
		c.Strategy = StrategyClusters
	}
	p := &c.Params
	p.DensityMin = clampInt(p.DensityMin, 0, 100)
	p.DensityMax = clampInt(p.DensityMax, 0, 100)
	if p.DensityMax < p.DensityMin {
		p.DensityMax = p.DensityMin
	}
	// MaxAge may exceed the byte range of Cell.Age. Ages saturate at 255,
	// which leaves old-age death unreachable at such settings.
	p.MaxAge = max(p.MaxAge, 2)
	p.FertilityOnset = clampInt(p.FertilityOnset, 0, p.MaxAge-2)
	p.FertilityOptimal = clampInt(p.FertilityOptimal, p.FertilityOnset+1, p.MaxAge-1)
	p.FertilityDecline = clampInt(p.FertilityDecline, p.FertilityOptimal, p.MaxAge-1)
	if p.AgingFactor < 1 {
		p.AgingFactor = 1
	}
	for _, period := range []*int{
		&p.FoodCycle, &p.EnvironmentCycle, &p.PredationCycle, &p.EpidemicCycle,
		&p.MovementInterval, &p.FastMovementPeriod, &p.SlowMovementPeriod,
	} {
		if *period < 1 {
			*period = 1
		}
	}
	p.InitialNutrients = clampInt(p.InitialNutrients, 0, 255)
	for _, pct := range []*int{
		&p.MutationRate, &p.InstabilityDeathChance, &p.DensityDeathChance,
		&p.BaseMutationRate, &p.ResistanceEvolutionRate, &p.RaceInheritance,
		&p.HybridChance, &p.DispersalChance, &p.MoveChance, &p.AgeHeredity,
	} {
		*pct = clampInt(*pct, 0, 100)
	}
	for _, v := range []*int{
		&p.ClusterBonus, &p.AgeMutationSpan, &p.NutrientConsumption,
		&p.NutrientRegeneration, &p.CompetitionStress, &p.FitnessAmplitude,
		&p.PredationPressure, &p.EpidemicMortality, &p.TerritorialCompetition,
		&p.GenerationInstability, &p.StressMutationMultiplier,
	} {
		if *v < 0 {
			*v = 0
		}
	}
	if p.PredationMinimum < 0 {
		p.PredationMinimum = 0
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values are ignored and keep their defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply returns a copy of c with the keys of cfg applied on top, using the
// same keys and parsing rules as FromMap.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		c.Sanitize()
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 0, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rules"]; ok && v != "" {
		c.Rules = v
	}
	if v, ok := cfg["strategy"]; ok {
		if s, err := ParseStrategy(v); err == nil {
			c.Strategy = s
		}
	}
	for key, field := range c.Params.intFields() {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			*field = parsed
		}
	}
	if v, ok := cfg["predation_minimum"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.PredationMinimum = parsed
		}
	}
	c.Sanitize()
	return c
}

// intFields maps flag keys to the integer parameters they control.
func (p *Params) intFields() map[string]*int {
	return map[string]*int{
		"density_min":                &p.DensityMin,
		"density_max":                &p.DensityMax,
		"cluster_bonus":              &p.ClusterBonus,
		"max_age":                    &p.MaxAge,
		"fertility_onset":            &p.FertilityOnset,
		"fertility_optimal":          &p.FertilityOptimal,
		"fertility_decline":          &p.FertilityDecline,
		"aging_acceleration":         &p.AgingAcceleration,
		"aging_factor":               &p.AgingFactor,
		"age_heredity":               &p.AgeHeredity,
		"age_mutation_span":          &p.AgeMutationSpan,
		"mutation_rate":              &p.MutationRate,
		"nutrient_consumption":       &p.NutrientConsumption,
		"nutrient_regeneration":      &p.NutrientRegeneration,
		"initial_nutrients":          &p.InitialNutrients,
		"food_cycle":                 &p.FoodCycle,
		"competition_threshold":      &p.CompetitionThreshold,
		"competition_stress":         &p.CompetitionStress,
		"fitness_amplitude":          &p.FitnessAmplitude,
		"environment_cycle":          &p.EnvironmentCycle,
		"predation_cycle":            &p.PredationCycle,
		"predation_pressure":         &p.PredationPressure,
		"epidemic_cycle":             &p.EpidemicCycle,
		"epidemic_mortality":         &p.EpidemicMortality,
		"migration_threshold":        &p.MigrationThreshold,
		"territorial_competition":    &p.TerritorialCompetition,
		"instability_age":            &p.InstabilityAge,
		"generation_instability":     &p.GenerationInstability,
		"instability_death_chance":   &p.InstabilityDeathChance,
		"fatal_density":              &p.FatalDensity,
		"density_death_chance":       &p.DensityDeathChance,
		"base_mutation_rate":         &p.BaseMutationRate,
		"stress_mutation_multiplier": &p.StressMutationMultiplier,
		"resistance_evolution_rate":  &p.ResistanceEvolutionRate,
		"race_inheritance":           &p.RaceInheritance,
		"hybrid_chance":              &p.HybridChance,
		"dispersal_chance":           &p.DispersalChance,
		"initial_polarization":       &p.InitialPolarization,
		"movement_interval":          &p.MovementInterval,
		"move_chance":                &p.MoveChance,
		"fast_movement_period":       &p.FastMovementPeriod,
		"slow_movement_period":       &p.SlowMovementPeriod,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
