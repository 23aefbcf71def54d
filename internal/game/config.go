package game

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"time"
)

// Board defaults.
const (
	BoardWidth  = 20
	BoardHeight = 20
)

// Snake constants.
const (
	InitialLength = 2
)

// Step timing (seconds per tick).
const (
	InitialStepTime = 1.0 / 8.0
	StepDecrement   = 0.001
	MinStepTime     = 0.05
	MaxStepTime     = 0.2
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config fixes the board size and tick cadence for a Game. It is read once at
// construction; changing it afterwards has no effect on a running game.
type Config struct {
	Width  int
	Height int

	InitialStepTime float64
	StepDecrement   float64
	MinStepTime     float64
	MaxStepTime     float64

	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Width:           BoardWidth,
		Height:          BoardHeight,
		InitialStepTime: InitialStepTime,
		StepDecrement:   StepDecrement,
		MinStepTime:     MinStepTime,
		MaxStepTime:     MaxStepTime,
		Seed:            uint64(time.Now().UnixNano()),
	}
}

func (c Config) Validate() error {
	if c.Width < InitialLength || c.Height < 1 || c.Width*c.Height <= InitialLength {
		return fmt.Errorf("%w: board %dx%d has no room beside the starting snake", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.MinStepTime <= 0 {
		return fmt.Errorf("%w: min step %.3fs must be positive", ErrInvalidConfig, c.MinStepTime)
	}
	if c.InitialStepTime < c.MinStepTime || c.InitialStepTime > c.MaxStepTime {
		return fmt.Errorf("%w: initial step %.3fs outside [%.3f, %.3f]", ErrInvalidConfig, c.InitialStepTime, c.MinStepTime, c.MaxStepTime)
	}
	if c.StepDecrement < 0 {
		return fmt.Errorf("%w: negative step decrement %.4f", ErrInvalidConfig, c.StepDecrement)
	}
	return nil
}

// ApplyEnv overrides fields from the environment. Only SNAKE_SEED is read;
// values that do not parse are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if s := getenv("SNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			c.Seed = v
		}
	}
}

// BindFlags registers board and timing flags on fs, defaulting to the current
// values, so flags parsed afterwards override env and defaults.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.Float64Var(&c.InitialStepTime, "step", c.InitialStepTime, "initial seconds per tick")
	fs.Float64Var(&c.MinStepTime, "min-step", c.MinStepTime, "fastest seconds per tick")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "food placement seed (also SNAKE_SEED)")
}
