package redis

const DefaultTimeout = 5000

type Config struct {
	URI     string
	Timeout int64 `yaml:"timeout_in_ms"`
}

func (c Config) WithDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}

	return c
}
