// Package config manages the glabenv application configuration stored
// in YAML format.
//
// Configuration is stored in the user's home directory at
// ~/.config/glabenv/config.yaml. It carries connection defaults, the
// certificate provisioning settings for the cert subcommands, and a map
// of project aliases so day-to-day commands can use short names instead
// of numeric project IDs.
//
// Example config.yaml:
//
//	gitlab_url: https://gitlab.example.com
//	env_file: gitlab.env
//	cert:
//	  email: admin@example.com
//	  dns_provider: dns_cf
//	  cert_dir: /etc/gitlab/ssl
//	proxy_reload: gitlab-ctl
//	projects:
//	  backend:
//	    id: "12345"
//	    description: main API service
//	  infra:
//	    id: group/infrastructure
//
// Secrets never live here: the GitLab token and the Cloudflare API token
// are read from the environment or the env file (see the envfile
// package), so the config file is safe to commit to dotfiles.
//
// # Thread Safety
//
// Config operations are NOT thread-safe. Callers must implement their own
// synchronization if accessing Config from multiple goroutines.
package config
