package config

import "strings"

// DefaultRevocationPrefix namespaces revoked-token keys.
const DefaultRevocationPrefix = "revoked:"

// RedisConfig contains Redis configuration for the revocation store.
type RedisConfig struct {
	// Enabled turns the revocation store on. When false, logout is accepted
	// but nothing is recorded and the proxy forwards every bearer token.
	Enabled            bool     `env:"ENABLED"              envDefault:"false"`
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	DB                 int      `env:"DB"                   envDefault:"0"`
	KeyPrefix          string   `env:"KEY_PREFIX"           envDefault:"revoked:"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}

// Sanitize restores the key prefix and clamps the DB index.
func (r *RedisConfig) Sanitize() {
	r.URI = strings.TrimSpace(r.URI)
	if strings.TrimSpace(r.KeyPrefix) == "" {
		r.KeyPrefix = DefaultRevocationPrefix
	}
	if r.DB < 0 {
		r.DB = 0
	}
}
