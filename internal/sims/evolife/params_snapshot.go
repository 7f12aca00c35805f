package evolife

import (
	"strconv"

	"evo-ca/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				stringParam("rules", "Rules", w.Rules()),
				stringParam("strategy", "Strategy", string(w.cfg.Strategy)),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				intParam("density_min", "Density min", p.DensityMin),
				intParam("density_max", "Density max", p.DensityMax),
				intParam("cluster_bonus", "Cluster bonus", p.ClusterBonus),
			},
		},
		{
			Name: "Aging",
			Params: []core.Parameter{
				intParam("max_age", "Max age", p.MaxAge),
				intParam("fertility_onset", "Fertility onset", p.FertilityOnset),
				intParam("fertility_optimal", "Fertility optimal", p.FertilityOptimal),
				intParam("fertility_decline", "Fertility decline", p.FertilityDecline),
				intParam("aging_acceleration", "Aging acceleration", p.AgingAcceleration),
				intParam("aging_factor", "Aging factor", p.AgingFactor),
				intParam("age_heredity", "Age heredity", p.AgeHeredity),
				intParam("age_mutation_span", "Age mutation span", p.AgeMutationSpan),
				intParam("mutation_rate", "Mutation rate", p.MutationRate),
			},
		},
		{
			Name: "Resources",
			Params: []core.Parameter{
				intParam("nutrient_consumption", "Nutrient consumption", p.NutrientConsumption),
				intParam("nutrient_regeneration", "Nutrient regeneration", p.NutrientRegeneration),
				intParam("initial_nutrients", "Initial nutrients", p.InitialNutrients),
				intParam("food_cycle", "Food cycle", p.FoodCycle),
				intParam("competition_threshold", "Competition threshold", p.CompetitionThreshold),
				intParam("competition_stress", "Competition stress", p.CompetitionStress),
				intParam("fitness_amplitude", "Fitness amplitude", p.FitnessAmplitude),
				intParam("environment_cycle", "Environment cycle", p.EnvironmentCycle),
			},
		},
		{
			Name: "Pressure",
			Params: []core.Parameter{
				intParam("predation_cycle", "Predation cycle", p.PredationCycle),
				intParam("predation_pressure", "Predation pressure", p.PredationPressure),
				floatParam("predation_minimum", "Predation minimum", p.PredationMinimum),
				intParam("epidemic_cycle", "Epidemic cycle", p.EpidemicCycle),
				intParam("epidemic_mortality", "Epidemic mortality", p.EpidemicMortality),
				intParam("migration_threshold", "Migration threshold", p.MigrationThreshold),
				intParam("territorial_competition", "Territorial competition", p.TerritorialCompetition),
				intParam("instability_age", "Instability age", p.InstabilityAge),
				intParam("generation_instability", "Generation instability", p.GenerationInstability),
				intParam("instability_death_chance", "Instability death chance", p.InstabilityDeathChance),
				intParam("fatal_density", "Fatal density", p.FatalDensity),
				intParam("density_death_chance", "Density death chance", p.DensityDeathChance),
			},
		},
		{
			Name: "Inheritance",
			Params: []core.Parameter{
				intParam("base_mutation_rate", "Base mutation rate", p.BaseMutationRate),
				intParam("stress_mutation_multiplier", "Stress mutation multiplier", p.StressMutationMultiplier),
				intParam("resistance_evolution_rate", "Resistance evolution rate", p.ResistanceEvolutionRate),
				intParam("race_inheritance", "Race inheritance", p.RaceInheritance),
				intParam("hybrid_chance", "Hybrid chance", p.HybridChance),
				intParam("dispersal_chance", "Dispersal chance", p.DispersalChance),
			},
		},
		{
			Name: "Movement",
			Params: []core.Parameter{
				intParam("initial_polarization", "Initial polarization", p.InitialPolarization),
				intParam("movement_interval", "Movement interval", p.MovementInterval),
				intParam("move_chance", "Move chance", p.MoveChance),
				intParam("fast_movement_period", "Fast movement period", p.FastMovementPeriod),
				intParam("slow_movement_period", "Slow movement period", p.SlowMovementPeriod),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		intControl("density_min", "Density min", 1, 0, 100),
		intControl("density_max", "Density max", 1, 0, 100),
		intControl("mutation_rate", "Mutation rate", 1, 0, 100),
		intControl("predation_pressure", "Predation", 1, 0, 255),
		intControl("epidemic_mortality", "Epidemics", 1, 0, 255),
		intControl("nutrient_regeneration", "Regrowth", 1, 0, 50),
		intControl("dispersal_chance", "Dispersal", 5, 0, 100),
		intControl("move_chance", "Move chance", 5, 0, 100),
		{
			Key: "predation_minimum", Label: "Predation floor", Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
		},
	}
}

// SetIntParameter updates an integer parameter by key. The configuration is
// sanitised afterwards, so the stored value may differ from value.
func (w *World) SetIntParameter(key string, value int) bool {
	field, ok := w.cfg.Params.intFields()[key]
	if !ok {
		return false
	}
	*field = value
	w.cfg.Sanitize()
	return true
}

// SetFloatParameter updates a floating point parameter by key.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "predation_minimum":
		w.cfg.Params.PredationMinimum = value
	default:
		return false
	}
	w.cfg.Sanitize()
	return true
}

// Counters reports live statistics for status displays.
func (w *World) Counters() []core.Counter {
	census := w.RaceCounts()
	counters := []core.Counter{
		{Label: "Gen", Value: strconv.FormatUint(uint64(w.generation), 10)},
		{Label: "Pop", Value: strconv.Itoa(w.population)},
		{Label: "Rules", Value: w.Rules()},
	}
	for r, n := range census {
		counters = append(counters, core.Counter{Label: Race(r).String(), Value: strconv.Itoa(n)})
	}
	return counters
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}

func intControl(key, label string, step, lo, hi float64) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeInt,
		Step:   step,
		Min:    lo,
		Max:    hi,
		HasMin: true,
		HasMax: true,
	}
}
