package config

import (
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{}))

	is.Equal(c.Rows, 6)
	is.Equal(c.Cols, 7)
	is.Equal(c.RunLength, 4)
	is.Equal(c.Goroutines, 4)
	is.Equal(c.Episodes, 400)
	is.Equal(c.Opponent, "mcts")
	is.True(c.HumanFirst)
	is.True(!c.Arena)
	is.Equal(c.Games, 10)
	is.NoErr(c.Validate())
	is.Equal(c.Level(), zerolog.InfoLevel)
}

func TestFlagsAndEnvironment(t *testing.T) {
	is := is.New(t)
	t.Setenv("TWG_RUN_LENGTH", "3")
	t.Setenv("TWG_OPPONENT", "random")

	c := &Config{}
	is.NoErr(c.Load([]string{"-rows", "4", "-cols", "5", "-episodes", "0", "-duration", "250ms", "-log-level", "debug"}))

	is.Equal(c.Rows, 4)
	is.Equal(c.Cols, 5)
	is.Equal(c.RunLength, 3)
	is.Equal(c.Opponent, "random")
	is.Equal(c.Duration, 250*time.Millisecond)
	is.NoErr(c.Validate())
	is.Equal(c.Level(), zerolog.DebugLevel)
}

func TestValidate(t *testing.T) {
	is := is.New(t)
	valid := func() *Config {
		c := &Config{}
		is.NoErr(c.Load([]string{}))
		return c
	}

	c := valid()
	c.Rows = 3
	is.True(c.Validate() != nil) // rows below run length

	c = valid()
	c.Opponent = "alphazero"
	is.True(c.Validate() != nil)

	c = valid()
	c.Episodes = 0
	is.True(c.Validate() != nil) // no search budget

	c = valid()
	c.Games = 0
	is.True(c.Validate() != nil)

	c = valid()
	c.Experiment = "throughput"
	is.True(c.Validate() != nil)

	c = valid()
	c.LogLevel = "loud"
	is.True(c.Validate() != nil)

	c = &Config{}
	is.True(c.Load([]string{"-unknown"}) != nil)
}
