package config

import (
	"os"

	"github.com/yyyoichi/studygroup"
	"github.com/yyyoichi/studygroup/roster"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are searched when no config path is given.
var DefaultPaths = []string{"configs/studygroup.yaml", "studygroup.yaml"}

type Config struct {
	Interests  []string         `yaml:"interests"`
	GroupSize  int              `yaml:"group_size"`
	Clustering ClusteringConfig `yaml:"clustering"`
}

type ClusteringConfig struct {
	Clusters    int   `yaml:"clusters"`
	Seed        int64 `yaml:"seed"`
	InitRuns    int   `yaml:"init_runs"`
	Parallelism int   `yaml:"parallelism"`
}

// Load reads configPath, or the first readable DefaultPaths entry when it is empty.
// Missing values fall back to defaults.
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		GroupSize: 3,
		Clustering: ClusteringConfig{
			Clusters:    studygroup.DefaultClusterCount,
			Seed:        studygroup.DefaultSeed,
			InitRuns:    10,
			Parallelism: 1,
		},
	}

	if configPath == "" {
		for _, p := range DefaultPaths {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if len(cfg.Interests) == 0 {
		cfg.Interests = append([]string(nil), roster.Interests...)
	}
	if cfg.GroupSize < 2 {
		cfg.GroupSize = 3
	}
	if cfg.Clustering.Clusters <= 0 {
		cfg.Clustering.Clusters = studygroup.DefaultClusterCount
	}
	if cfg.Clustering.InitRuns <= 0 {
		cfg.Clustering.InitRuns = 10
	}
	if cfg.Clustering.Parallelism <= 0 {
		cfg.Clustering.Parallelism = 1
	}
}

// Options converts the clustering section into grouper options.
func (c *Config) Options() []studygroup.Option {
	return []studygroup.Option{
		studygroup.WithClusterCount(c.Clustering.Clusters),
		studygroup.WithSeed(c.Clustering.Seed),
		studygroup.WithInitRuns(c.Clustering.InitRuns),
		studygroup.WithParallelism(c.Clustering.Parallelism),
	}
}

// Offers reports whether interest is one of the configured courses.
func (c *Config) Offers(interest string) bool {
	for _, i := range c.Interests {
		if i == interest {
			return true
		}
	}
	return false
}
