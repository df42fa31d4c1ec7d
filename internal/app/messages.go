package app

// ConfigSavedMsg reports the result of writing the configuration file.
type ConfigSavedMsg struct {
	Path string
	Err  error
}
