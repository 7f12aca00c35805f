package evolife

// Race selects movement behaviour and the fitness bonus of a cell.
type Race uint8

const (
	RaceExplorer Race = iota
	RaceColonizer
	RaceNomad
	RaceAdaptive

	raceCount = 4
)

var raceNames = [raceCount]string{"explorer", "colonizer", "nomad", "adaptive"}

func (r Race) String() string {
	if int(r) < len(raceNames) {
		return raceNames[r]
	}
	return "unknown"
}

// Direction is one of the eight compass points, clockwise from north.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	directionCount = 8
)

var directionDeltas = [directionCount][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Delta returns the grid offset one step in direction d. Screen coordinates:
// north is negative y.
func (d Direction) Delta() (dx, dy int) {
	if int(d) >= directionCount {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Cell is the per-position state of the automaton. Every trait is a byte and
// all arithmetic on them saturates, except Territoriality and
// StressAdaptability which wrap on inheritance.
type Cell struct {
	Alive bool
	Age   uint8

	SurvivalGenotype uint8
	BirthGenotype    uint8
	Health           uint8

	Race                 Race
	Polarization         Direction
	PolarizationStrength uint8
	MovementCounter      uint32

	ReproductiveFitness uint8
	EnergyEfficiency    uint8
	SpeciesID           uint8

	DiseaseResistance   uint8
	PredationCamouflage uint8
	Territoriality      uint8
	StressAdaptability  uint8
	BirthGeneration     uint8
}

// DeadCell returns the reset value every dead cell carries.
func DeadCell() Cell {
	return Cell{
		SurvivalGenotype:    128,
		BirthGenotype:       128,
		Race:                RaceExplorer,
		Polarization:        North,
		ReproductiveFitness: 50,
		EnergyEfficiency:    128,
		DiseaseResistance:   100,
		PredationCamouflage: 100,
		Territoriality:      100,
		StressAdaptability:  100,
	}
}

const (
	maxHealth   = 100
	birthHealth = 50

	genotypeTolerant  = 128
	genotypeSensitive = 64
)
