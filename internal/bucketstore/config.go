package bucketstore

// Config defines the configuration options for the MinIO-backed bucket store.
type Config struct {
	// Endpoint is the MinIO server endpoint (e.g., "localhost:9000").
	Endpoint string `yaml:"endpoint" validate:"required"`

	// AccessKey is the access key for authentication.
	AccessKey string `yaml:"access_key" validate:"required"`

	// SecretKey is the secret key for authentication.
	SecretKey string `yaml:"secret_key" validate:"required" mask:"true"`

	// Region is the fixed region every principal bucket is created in.
	Region string `yaml:"region" default:"us-east-1"`

	// UseSSL enables HTTPS connection to the MinIO server.
	UseSSL bool `yaml:"use_ssl" default:"false"`

	// ProvisionAttempts is the total number of attempts for bucket creation
	// before a transient backend failure is surfaced.
	ProvisionAttempts uint `yaml:"provision_attempts" default:"3"`
}
