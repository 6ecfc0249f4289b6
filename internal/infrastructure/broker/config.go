package broker

const (
	DriverRedis = "redis"
	DriverKafka = "kafka"
	DriverNone  = "none"
)

type Config struct {
	Driver     string   `yaml:"driver"`
	URI        string   `yaml:"uri"`
	StreamName string   `yaml:"stream_name"`
	GroupName  string   `yaml:"group_name"`
	Brokers    []string `yaml:"brokers"`
	Topic      string   `yaml:"topic"`
}

const DefaultPublishTimeout = 1000

type PublisherConfig struct {
	Timeout int `yaml:"timeout_in_ms"`
}

func (c PublisherConfig) WithDefaults() PublisherConfig {
	if c.Timeout <= 0 {
		c.Timeout = DefaultPublishTimeout
	}

	return c
}
