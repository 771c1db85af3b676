package cli

import (
	"fmt"

	"github.com/ksyq12/glabenv/internal/cert"
	"github.com/ksyq12/glabenv/internal/envfile"
	"github.com/ksyq12/glabenv/internal/errors"
	"github.com/ksyq12/glabenv/internal/output"
	"github.com/ksyq12/glabenv/internal/proxy"
	"github.com/spf13/cobra"
)

var (
	certEmail       string
	certDNSProvider string
	certDir         string
	certProxy       string
	certNoReload    bool
	certRenewAll    bool
)

var certCmd = &cobra.Command{
	Use:   "cert",
	Short: "Manage TLS certificates for a self-hosted GitLab instance",
	Long: `Issue, install, and renew Let's Encrypt certificates through acme.sh
using the DNS-01 challenge against Cloudflare.

Issuance needs a Cloudflare API token in CF_Token, resolvable from the
env file like the GitLab credentials. Installation copies the issued
certificate into the GitLab ssl directory and registers the proxy
reload command as the acme.sh renewal hook.`,
}

var certIssueCmd = &cobra.Command{
	Use:   "issue <domain>",
	Short: "Issue a certificate via Let's Encrypt DNS-01",
	Args:  cobra.ExactArgs(1),
	RunE:  runCertIssue,
}

var certInstallCmd = &cobra.Command{
	Use:   "install <domain>",
	Short: "Install an issued certificate and reload the proxy",
	Args:  cobra.ExactArgs(1),
	RunE:  runCertInstall,
}

var certRenewCmd = &cobra.Command{
	Use:   "renew [domain]",
	Short: "Renew one certificate, or everything due when no domain is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCertRenew,
}

var certStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show acme.sh availability and managed certificates",
	Args:  cobra.NoArgs,
	RunE:  runCertStatus,
}

func init() {
	certIssueCmd.Flags().StringVar(&certEmail, "email", "", "Let's Encrypt account email (default from config)")
	certIssueCmd.Flags().StringVar(&certDNSProvider, "dns-provider", "", "acme.sh DNS plugin name (default from config)")
	certInstallCmd.Flags().StringVar(&certDir, "cert-dir", "", "Directory to install the certificate into (default from config)")
	certInstallCmd.Flags().StringVar(&certProxy, "proxy", "", "Proxy reload strategy: gitlab-ctl or nginx (default from config)")
	certInstallCmd.Flags().BoolVar(&certNoReload, "no-reload", false, "Skip reloading the proxy after installation")
	certRenewCmd.Flags().BoolVar(&certRenewAll, "all", false, "Renew everything due for renewal")

	certCmd.AddCommand(certIssueCmd)
	certCmd.AddCommand(certInstallCmd)
	certCmd.AddCommand(certRenewCmd)
	certCmd.AddCommand(certStatusCmd)
	rootCmd.AddCommand(certCmd)
}

func runCertIssue(cmd *cobra.Command, args []string) error {
	domain := args[0]

	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	email := certEmail
	if email == "" {
		email = cfg.Cert.Email
	}
	provider := certDNSProvider
	if provider == "" {
		provider = cfg.Cert.DNSProvider
	}

	if _, err := envfile.Load(resolveEnvFile(cfg)); err != nil {
		return err
	}
	cfToken := envfile.FromEnv().CFToken
	if cfToken == "" {
		output.Warn("%s is not set; acme.sh will fail unless the DNS plugin is already configured", envfile.EnvCFToken)
	}

	output.Info("Issuing certificate for %s via %s...", domain, provider)
	issued, err := cert.Issue(domain, email, provider, cfToken)
	if err != nil {
		return errors.Wrap(errors.ErrCodeCert, "certificate issuance failed", err)
	}

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"success":   true,
			"domain":    issued.Domain,
			"cert_path": issued.CertPath,
			"key_path":  issued.KeyPath,
		})
	}
	output.Success("Certificate issued for %s", domain)
	output.Info("Certificate: %s", issued.CertPath)
	output.Info("Key:         %s", issued.KeyPath)
	output.Info("Run 'glabenv cert install %s' to install it", domain)
	return nil
}

func runCertInstall(cmd *cobra.Command, args []string) error {
	domain := args[0]

	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dir := certDir
	if dir == "" {
		dir = cfg.Cert.CertDir
	}
	strategy := certProxy
	if strategy == "" {
		strategy = cfg.ProxyReload
	}

	reloader, ok := proxy.Get(strategy)
	if !ok {
		return errors.Validation(fmt.Sprintf("unknown proxy reload strategy %q (available: %v)", strategy, proxy.Available()))
	}

	installed, err := cert.Install(domain, dir, reloader.ReloadCommand())
	if err != nil {
		return errors.Wrap(errors.ErrCodeCert, "certificate installation failed", err)
	}

	if !certNoReload {
		output.Info("Reloading proxy via %s...", reloader.Name())
		if err := reloader.Reload(); err != nil {
			return errors.Wrap(errors.ErrCodeCert, "proxy reload failed", err)
		}
	}

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"success":   true,
			"domain":    installed.Domain,
			"cert_path": installed.CertPath,
			"key_path":  installed.KeyPath,
			"proxy":     reloader.Name(),
			"reloaded":  !certNoReload,
		})
	}
	output.Success("Certificate installed for %s", domain)
	output.Info("Certificate: %s", installed.CertPath)
	output.Info("Key:         %s", installed.KeyPath)
	output.Info("Renewals will run: %s", reloader.ReloadCommand())
	return nil
}

func runCertRenew(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && !certRenewAll {
		domain := args[0]
		if err := cert.Renew(domain); err != nil {
			return errors.Wrap(errors.ErrCodeCert, "renewal failed", err)
		}
		output.Success("Certificate renewed for %s", domain)
		return nil
	}

	if err := cert.RenewAll(); err != nil {
		return errors.Wrap(errors.ErrCodeCert, "renewal failed", err)
	}
	output.Success("Renewed all certificates due for renewal")
	return nil
}

func runCertStatus(cmd *cobra.Command, args []string) error {
	if !cert.IsInstalled() {
		if jsonOutput {
			return output.JSON(map[string]interface{}{
				"acme_installed": false,
				"domains":        []string{},
			})
		}
		output.Error("acme.sh is not installed")
		output.Info("Install it with: curl https://get.acme.sh | sh")
		return errors.ErrAcmeNotInstalled
	}

	domains, err := cert.List()
	if err != nil {
		return errors.Wrap(errors.ErrCodeCert, "failed to list certificates", err)
	}

	if jsonOutput {
		return output.JSON(map[string]interface{}{
			"acme_installed": true,
			"domains":        domains,
		})
	}

	output.Success("acme.sh is installed")
	if len(domains) == 0 {
		output.Info("No certificates are managed yet")
		return nil
	}
	output.Print("\nManaged certificates:")
	for _, d := range domains {
		live := cert.LiveCertPaths(d)
		output.Print("  %s (%s)", d, live.CertPath)
	}
	return nil
}
