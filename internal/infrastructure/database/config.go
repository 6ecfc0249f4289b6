package database

const DefaultTimeout = 5000

type Config struct {
	URI               string
	DBName            string `yaml:"db_name"`
	ConnectionTimeout int16  `yaml:"connection_timeout_in_ms"`
	QueryTimeout      int16  `yaml:"query_timeout_in_ms"`
}

func (c Config) WithDefaults() Config {
	if c.ConnectionTimeout <= 0 {
		c.ConnectionTimeout = DefaultTimeout
	}
	if c.QueryTimeout <= 0 {
		c.QueryTimeout = DefaultTimeout
	}

	return c
}
