package factory

import "errors"

var ErrUnknownLine = errors.New("unknown production line")

// Engine and Chassis are the two products every parts family provides.
type Engine interface {
	Displacement() int
}

type Chassis interface {
	Material() string
}

// PartsFactory produces a matched family of car parts.
type PartsFactory interface {
	Engine() Engine
	Chassis() Chassis
}

type sportEngine struct{}

func (sportEngine) Displacement() int {
	return 3982
}

type sportChassis struct{}

func (sportChassis) Material() string {
	return "carbon fiber"
}

type sportParts struct{}

func (sportParts) Engine() Engine {
	return sportEngine{}
}

func (sportParts) Chassis() Chassis {
	return sportChassis{}
}

type offroadEngine struct{}

func (offroadEngine) Displacement() int {
	return 2993
}

type offroadChassis struct{}

func (offroadChassis) Material() string {
	return "high-strength steel"
}

type offroadParts struct{}

func (offroadParts) Engine() Engine {
	return offroadEngine{}
}

func (offroadParts) Chassis() Chassis {
	return offroadChassis{}
}

// ForLine is the factory method: it picks the parts family for a production
// line by name.
func ForLine(line string) (PartsFactory, error) {
	switch line {
	case "sport":
		return sportParts{}, nil
	case "offroad":
		return offroadParts{}, nil
	default:
		return nil, ErrUnknownLine
	}
}
