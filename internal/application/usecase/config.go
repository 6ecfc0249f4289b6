package usecase

const (
	DefaultStoreName        = "map-pins"
	DefaultKey              = "pins"
	DefaultMaxPins          = 1000
	DefaultMaxMessageLength = 500
)

type Config struct {
	StoreName        string `yaml:"store_name"`
	Key              string `yaml:"key"`
	MaxPins          int    `yaml:"max_pins"`
	MaxMessageLength int    `yaml:"max_message_length"`
}

// WithDefaults fills every zero field with its default.
func (c Config) WithDefaults() Config {
	if c.StoreName == "" {
		c.StoreName = DefaultStoreName
	}
	if c.Key == "" {
		c.Key = DefaultKey
	}
	if c.MaxPins <= 0 {
		c.MaxPins = DefaultMaxPins
	}
	if c.MaxMessageLength <= 0 {
		c.MaxMessageLength = DefaultMaxMessageLength
	}

	return c
}
