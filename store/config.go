package store

// DefaultRegion is used when neither Config.Region nor the AWS environment name a region.
const DefaultRegion = "us-east-2"

// Config holds configuration for a lazily built DynamoDB client.
type Config struct {
	// Region is the AWS region of the table.
	// Default: the SDK default chain (AWS_REGION), then DefaultRegion.
	Region string

	// Endpoint overrides the DynamoDB endpoint, e.g. "http://localhost:8000"
	// for DynamoDB Local. Empty uses the regional AWS endpoint.
	Endpoint string
}

// DefaultConfig returns a Config that resolves everything from the AWS environment.
func DefaultConfig() Config {
	return Config{}
}
