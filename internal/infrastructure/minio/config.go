package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	Secure    bool   `yaml:"secure"`
}

const DefaultTimeout = 5000

type StoreConfig struct {
	Timeout int64  `yaml:"timeout_in_ms"`
	Bucket  string `yaml:"bucket"`
	Region  string `yaml:"region"`
}

func (c StoreConfig) WithDefaults() StoreConfig {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}

	return c
}
