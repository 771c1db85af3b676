package config

import "time"

// Project is a remembered GitLab project. Aliases let commands take a
// short name instead of a numeric ID or group/project path.
type Project struct {
	ID          string    `yaml:"id"`
	Description string    `yaml:"description,omitempty"`
	LastExport  time.Time `yaml:"last_export,omitempty"`
}
