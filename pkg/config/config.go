package config

// Display modes for rendering money in reports.
const (
	// DisplayFixed renders every currency with two decimals.
	DisplayFixed = "fixed"
	// DisplayExact renders each currency with its own decimals.
	DisplayExact = "exact"
)

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0" validate:"oneof=-4 0 4 8 12"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=json text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[ledger]"`
}

type Display struct {
	Mode string `envconfig:"MODE" default:"fixed" validate:"oneof=fixed exact"`
}

type App struct {
	Env     string   `envconfig:"APP_ENV" default:"development"`
	Log     *Log     `envconfig:"LOG" validate:"required"`
	Display *Display `envconfig:"DISPLAY" validate:"required"`
}
