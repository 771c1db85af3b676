package cli

import (
	"os"

	"github.com/ksyq12/glabenv/internal/logger"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	logFile    string
	version    = "dev"

	// Connection flags, resolvable from the env file when empty
	projectFlag        string
	gitlabURLFlag      string
	tokenFlag          string
	envFileFlag        string
	insecureSkipVerify bool
	caBundle           string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "glabenv",
	Short: "GitLab CI/CD variable and certificate management CLI",
	Long: `glabenv manages CI/CD variables for GitLab projects and TLS
certificates for self-hosted GitLab instances.

Variables can be exported to a JSON file, imported back, diffed against
the live project, or pushed as a full sync. Certificates are issued
through Let's Encrypt with a DNS-01 challenge against Cloudflare and
wired into the GitLab reverse proxy.

Credentials are read from GITLAB_URL and GITLAB_TOKEN, optionally loaded
from an env file (default gitlab.env). Flags override both.`,
}

// closeLog closes the log file opened during initialization
var closeLog = func() {}

// Execute runs the root command
func Execute() {
	// Initialize logger based on flags (parsed by cobra)
	cobra.OnInitialize(func() {
		if logFile != "" {
			fn, err := logger.InitFile(verbose, logFile)
			if err != nil {
				logger.Init(verbose)
				logger.Warn("Could not open log file: %v", err)
				return
			}
			closeLog = fn
			return
		}
		logger.Init(verbose)
	})

	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "l", "", "Append all log output to this file")
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "GitLab project ID, path, or configured alias")
	rootCmd.PersistentFlags().StringVarP(&gitlabURLFlag, "gitlab-url", "u", "", "GitLab URL (overrides env file)")
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", "", "GitLab personal access token (overrides env file)")
	rootCmd.PersistentFlags().StringVarP(&envFileFlag, "env-file", "e", "", "Environment file with GITLAB_URL and GITLAB_TOKEN (default gitlab.env)")
	rootCmd.PersistentFlags().BoolVar(&insecureSkipVerify, "insecure-skip-verify", false, "Skip TLS certificate verification (CAUTION)")
	rootCmd.PersistentFlags().StringVar(&caBundle, "ca-bundle", "", "Path to a PEM bundle for a self-hosted GitLab CA")
}
