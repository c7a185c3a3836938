package config

// Config represents the structure of the concord.yaml configuration file.
type Config struct {
	Version     string   `yaml:"version"`
	Root        string   `yaml:"root"`
	PrimaryRoot string   `yaml:"primaryRoot"`
	Packages    []string `yaml:"packages"`
	Vendored    []string `yaml:"vendored"`
}
