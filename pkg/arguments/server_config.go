package arguments

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SimulationConfig :
// Describes the properties used to configure a running instance of
// the simulation, on top of the generic `AppMetadata`. Most of these
// are read from the configuration file and can be overridden through
// environment variables (following viper's usual `ENV_SECTION_KEY`
// convention).
//
// The `TickInterval` is the fixed wall-clock duration of one
// simulation tick. It only paces the driver: each tick advances game
// state by a fixed 50 milliseconds of simulated time, whatever this
// interval and whatever the measured elapsed time between ticks.
// The default value is 50 milliseconds.
//
// The `Seed` seeds the galaxy's random generator. A seed of zero picks
// a value derived from the current time.
//
// The `StartingMoney` is the wallet balance assigned to freshly
// created players.
//
// The `TestingMode` gates whether a player name carrying the
// `test-rich` prefix is granted a starting wallet multiplier. It must
// be explicitly enabled through configuration; it is never inferred
// from the player name alone.
//
// The `RichMultiplier` is the starting wallet multiplier applied to
// `test-rich`-prefixed accounts while `TestingMode` is enabled.
//
// The `CatalogOverridePath` optionally points to a YAML file
// overriding the built-in resource catalog (base price, volume,
// extraction difficulty per resource).
//
// The `ListenAddress` is the address the HTTP API binds to.
type SimulationConfig struct {
	TickInterval        time.Duration
	Seed                int64
	StartingMoney       float64
	TestingMode         bool
	RichMultiplier      float64
	CatalogOverridePath string
	ListenAddress       string
}

// ParseSimulationConfig :
// Parses the simulation's own configuration section, layering
// environment variables over the configuration file following the
// same convention as `Parse`.
//
// The `configFile` is the name (without extension) of the
// configuration file to load.
//
// Returns the built-in simulation configuration.
func ParseSimulationConfig(configFile string) SimulationConfig {
	viper.SetEnvPrefix("ENV")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.AutomaticEnv()

	viper.SetConfigName(configFile)
	viper.AddConfigPath(".")
	viper.AddConfigPath("data/config")

	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("could not parse input configuration \"%s\" (err: %v)", configFile, err))
	}

	config := SimulationConfig{
		TickInterval:   50 * time.Millisecond,
		Seed:           0,
		StartingMoney:  30000.0,
		TestingMode:    false,
		RichMultiplier: 10000.0,
		ListenAddress:  ":3000",
	}

	if viper.IsSet("Simulation.TickIntervalMs") {
		config.TickInterval = time.Duration(viper.GetInt64("Simulation.TickIntervalMs")) * time.Millisecond
	}
	if viper.IsSet("Simulation.Seed") {
		config.Seed = viper.GetInt64("Simulation.Seed")
	}
	if viper.IsSet("Simulation.StartingMoney") {
		config.StartingMoney = viper.GetFloat64("Simulation.StartingMoney")
	}
	if viper.IsSet("Simulation.TestingMode") {
		config.TestingMode = viper.GetBool("Simulation.TestingMode")
	}
	if viper.IsSet("Simulation.RichMultiplier") {
		config.RichMultiplier = viper.GetFloat64("Simulation.RichMultiplier")
	}
	if viper.IsSet("Simulation.CatalogOverridePath") {
		config.CatalogOverridePath = viper.GetString("Simulation.CatalogOverridePath")
	}
	if viper.IsSet("Simulation.ListenAddress") {
		config.ListenAddress = viper.GetString("Simulation.ListenAddress")
	}

	return config
}
