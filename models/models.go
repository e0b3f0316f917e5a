package models

type Config struct {
	// usage example: Keybindings["Ctrl+Z"] = ["cancel"]. Merged on top of the
	// default key bindings.
	Keybindings map[string][]string `yaml:"keybindings"`
	Version     string              `yaml:"version" validate:"omitempty,oneof=1"`
	Theme       string              `yaml:"theme"`
	// path to the sqlite database; defaults to the XDG data directory
	DatabaseFile string `yaml:"databaseFile"`
	// path to the log file; defaults to the XDG state directory
	LogFile        string `yaml:"logFile"`
	LogLevel       string `yaml:"logLevel" validate:"omitempty,oneof=trace debug info warn error disabled"`
	CurrencySymbol string `yaml:"currencySymbol" validate:"max=8"`
}

type TableCell struct {
	Color  string
	Text   string
	Expand int
	Align  int
}
