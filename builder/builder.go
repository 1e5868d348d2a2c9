package builder

// Car is the product assembled step by step by a Builder.
type Car struct {
	Chassis string
	Engine  string
	Seats   int
	Color   string
}

// Builder knows how to assemble one kind of car, one part per step.
type Builder interface {
	BuildChassis()
	BuildEngine()
	BuildSeats()
	PaintBody()
	Car() Car
}

type sportsBuilder struct {
	car Car
}

// NewSportsBuilder returns a builder for a two-seat sports car.
func NewSportsBuilder() Builder {
	return &sportsBuilder{}
}

func (b *sportsBuilder) BuildChassis() {
	b.car.Chassis = "carbon monocoque"
}

func (b *sportsBuilder) BuildEngine() {
	b.car.Engine = "4.0L V8"
}

func (b *sportsBuilder) BuildSeats() {
	b.car.Seats = 2
}

func (b *sportsBuilder) PaintBody() {
	b.car.Color = "rosso corsa"
}

func (b *sportsBuilder) Car() Car {
	return b.car
}

type suvBuilder struct {
	car Car
}

// NewSUVBuilder returns a builder for a seven-seat SUV.
func NewSUVBuilder() Builder {
	return &suvBuilder{}
}

func (b *suvBuilder) BuildChassis() {
	b.car.Chassis = "steel ladder frame"
}

func (b *suvBuilder) BuildEngine() {
	b.car.Engine = "3.0L diesel"
}

func (b *suvBuilder) BuildSeats() {
	b.car.Seats = 7
}

func (b *suvBuilder) PaintBody() {
	b.car.Color = "storm grey"
}

func (b *suvBuilder) Car() Car {
	return b.car
}

// Director runs the build recipe against whichever builder it holds.
type Director struct {
	builder Builder
}

func NewDirector(b Builder) *Director {
	return &Director{builder: b}
}

// SetBuilder swaps the builder so the same director can produce another kind of car.
func (d *Director) SetBuilder(b Builder) {
	d.builder = b
}

// Construct assembles a complete car in the fixed recipe order.
func (d *Director) Construct() Car {
	d.builder.BuildChassis()
	d.builder.BuildEngine()
	d.builder.BuildSeats()
	d.builder.PaintBody()

	return d.builder.Car()
}
