package storage

// Config holds the object storage connection that serves catalog documents.
type Config struct {
	// Endpoint is host:port of the S3 compatible service.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`

	// Bucket holds the catalog document named by catalog.object.
	Bucket string `mapstructure:"bucket" default:"catalog"`
	// Region is used when the bucket has to be created.
	Region string `mapstructure:"region" default:""`

	// TimeoutSeconds bounds dialing, TLS handshakes and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
