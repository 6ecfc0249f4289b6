package server

const (
	DefaultAddress   = ":8080"
	DefaultBodyLimit = "1M"
)

type Config struct {
	Address   string  `yaml:"address"`
	BodyLimit string  `yaml:"body_limit"`
	RateLimit float64 `yaml:"rate_limit"`
	ServeWeb  bool    `yaml:"serve_web"`
}

// WithDefaults fills the listen address and body limit when unset. A zero RateLimit
// disables rate limiting.
func (c Config) WithDefaults() Config {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.BodyLimit == "" {
		c.BodyLimit = DefaultBodyLimit
	}

	return c
}
