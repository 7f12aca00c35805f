package ui

import (
	"math"
	"strconv"
	"strings"

	"evo-ca/internal/core"
)

const defaultFloatStep = 0.05

func intStep(ctrl core.ParameterControl) int {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	return step
}

func floatStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return defaultFloatStep
	}
	return ctrl.Step
}

// nextInt returns the value one step in direction from value, clamped to the
// control bounds, and whether that differs from value.
func nextInt(ctrl core.ParameterControl, value, direction int) (int, bool) {
	target := value + direction*intStep(ctrl)
	if ctrl.HasMin {
		target = max(target, int(math.Round(ctrl.Min)))
	}
	if ctrl.HasMax {
		target = min(target, int(math.Round(ctrl.Max)))
	}
	return target, target != value
}

// nextFloat is the floating point counterpart of nextInt.
func nextFloat(ctrl core.ParameterControl, value float64, direction int) (float64, bool) {
	target := value + float64(direction)*floatStep(ctrl)
	if ctrl.HasMin {
		target = math.Max(target, ctrl.Min)
	}
	if ctrl.HasMax {
		target = math.Min(target, ctrl.Max)
	}
	return target, math.Abs(target-value) >= 1e-9
}

// formatFloat picks a precision from the control step.
func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := floatStep(ctrl)
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// controlState is the HUD's view of one adjustable parameter.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool
}

// refresh reloads the displayed value from a parameter snapshot.
func (s *controlState) refresh(params map[string]core.Parameter) {
	s.hasValue = false
	s.value = "--"
	param, ok := params[s.control.Key]
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
	}
}

// adjust moves the control one step and pushes the result through the
// matching setter. It reports whether the simulation accepted a new value.
func (s *controlState) adjust(ints core.IntParameterSetter, floats core.FloatParameterSetter, direction int) bool {
	if !s.hasValue || direction == 0 {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		target, changed := nextInt(s.control, s.intValue, direction)
		if ints == nil || !changed || !ints.SetIntParameter(s.control.Key, target) {
			return false
		}
		s.intValue = target
		s.floatValue = float64(target)
		s.value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		target, changed := nextFloat(s.control, s.floatValue, direction)
		if floats == nil || !changed || !floats.SetFloatParameter(s.control.Key, target) {
			return false
		}
		s.floatValue = target
		s.value = formatFloat(s.control, target)
		return true
	}
	return false
}

// canAdjust reports whether a step in direction would change the value.
func (s *controlState) canAdjust(ints core.IntParameterSetter, floats core.FloatParameterSetter, direction int) bool {
	if !s.hasValue || direction == 0 {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		_, changed := nextInt(s.control, s.intValue, direction)
		return ints != nil && changed
	case core.ParamTypeFloat:
		_, changed := nextFloat(s.control, s.floatValue, direction)
		return floats != nil && changed
	}
	return false
}

func snapshotIndex(snap core.ParameterSnapshot) map[string]core.Parameter {
	index := map[string]core.Parameter{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			index[p.Key] = p
		}
	}
	return index
}

// buildTitle names the HUD panel after the simulation.
func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}
