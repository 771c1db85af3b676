package cert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ksyq12/glabenv/internal/executor"
)

// Cert represents an issued TLS certificate
type Cert struct {
	Domain   string
	CertPath string
	KeyPath  string
}

// acmeHome is the default acme.sh state directory
const acmeHome = ".acme.sh"

// cmdExecutor is the command executor (can be replaced for testing)
var cmdExecutor executor.CommandExecutor = executor.NewSystemExecutor()

// SetExecutor allows tests to inject a mock executor
func SetExecutor(exec executor.CommandExecutor) {
	cmdExecutor = exec
}

// ResetExecutor resets the executor to the default system executor
func ResetExecutor() {
	cmdExecutor = executor.NewSystemExecutor()
}

// IsInstalled checks if acme.sh is installed
func IsInstalled() bool {
	_, err := cmdExecutor.LookPath("acme.sh")
	return err == nil
}

// runAcme executes acme.sh with the given arguments and extra environment
func runAcme(env []string, args []string) error {
	if !IsInstalled() {
		return fmt.Errorf("acme.sh is not installed. Install it with: curl https://get.acme.sh | sh")
	}

	output, err := cmdExecutor.ExecuteEnv(env, "acme.sh", args...)
	if err != nil {
		return fmt.Errorf("acme.sh failed: %s", string(output))
	}
	return nil
}

// LiveCertPaths returns where acme.sh keeps the issued certificate files
func LiveCertPaths(domain string) *Cert {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "/root"
	}
	dir := filepath.Join(home, acmeHome, domain+"_ecc")
	return &Cert{
		Domain:   domain,
		CertPath: filepath.Join(dir, "fullchain.cer"),
		KeyPath:  filepath.Join(dir, domain+".key"),
	}
}

// Issue obtains a certificate through the DNS-01 challenge. The DNS
// provider plugin (dns_cf for Cloudflare) reads its API token from the
// environment, so cfToken is passed to the child process only.
func Issue(domain, email, dnsProvider, cfToken string) (*Cert, error) {
	args := []string{
		"--issue",
		"--dns", dnsProvider,
		"-d", domain,
		"--server", "letsencrypt",
	}
	if email != "" {
		args = append(args, "--accountemail", email)
	}

	var env []string
	if cfToken != "" {
		env = append(env, "CF_Token="+cfToken)
	}

	if err := runAcme(env, args); err != nil {
		return nil, err
	}
	return LiveCertPaths(domain), nil
}

// Install copies the issued certificate into certDir and registers
// reloadCmd with acme.sh so renewals re-run it automatically. The GitLab
// reverse proxy expects <domain>.crt and <domain>.key in its ssl dir.
func Install(domain, certDir, reloadCmd string) (*Cert, error) {
	installed := &Cert{
		Domain:   domain,
		CertPath: filepath.Join(certDir, domain+".crt"),
		KeyPath:  filepath.Join(certDir, domain+".key"),
	}

	args := []string{
		"--install-cert",
		"-d", domain,
		"--fullchain-file", installed.CertPath,
		"--key-file", installed.KeyPath,
	}
	if reloadCmd != "" {
		args = append(args, "--reloadcmd", reloadCmd)
	}

	if err := runAcme(nil, args); err != nil {
		return nil, err
	}
	return installed, nil
}

// Renew renews a specific certificate
func Renew(domain string) error {
	return runAcme(nil, []string{"--renew", "-d", domain})
}

// RenewAll runs the acme.sh cron entry point, renewing everything due
func RenewAll() error {
	return runAcme(nil, []string{"--cron"})
}

// Remove deregisters a certificate from acme.sh
func Remove(domain string) error {
	return runAcme(nil, []string{"--remove", "-d", domain})
}

// List returns all domains acme.sh manages
func List() ([]string, error) {
	if !IsInstalled() {
		return nil, fmt.Errorf("acme.sh is not installed")
	}

	output, err := cmdExecutor.Execute("acme.sh", "--list")
	if err != nil {
		return nil, fmt.Errorf("acme.sh --list failed: %s", string(output))
	}

	// Output is a table: Main_Domain KeyLength SAN_Domains ... ; skip the header.
	var domains []string
	lines := strings.Split(string(output), "\n")
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 0 {
			domains = append(domains, fields[0])
		}
	}
	return domains, nil
}
