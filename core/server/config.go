package server

// Config holds configuration for the HTTP server of the serve command.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Address returns the listen address for Port.
func (c Config) Address() string {
	return ":" + c.Port
}
