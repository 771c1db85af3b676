package cert

import (
	"errors"
	"strings"
	"testing"

	"github.com/ksyq12/glabenv/internal/executor"
)

func TestIsInstalled(t *testing.T) {
	t.Run("acme.sh installed", func(t *testing.T) {
		mock := &executor.MockExecutor{
			LookPathFunc: func(file string) (string, error) {
				if file == "acme.sh" {
					return "/root/.acme.sh/acme.sh", nil
				}
				return "", errors.New("not found")
			},
		}
		SetExecutor(mock)
		defer ResetExecutor()

		if !IsInstalled() {
			t.Error("IsInstalled should return true")
		}
	})

	t.Run("acme.sh not installed", func(t *testing.T) {
		mock := &executor.MockExecutor{
			LookPathFunc: func(file string) (string, error) {
				return "", errors.New("not found")
			},
		}
		SetExecutor(mock)
		defer ResetExecutor()

		if IsInstalled() {
			t.Error("IsInstalled should return false")
		}
	})
}

func TestIssue(t *testing.T) {
	t.Run("dns-01 arguments and token env", func(t *testing.T) {
		mock := &executor.MockExecutor{}
		SetExecutor(mock)
		defer ResetExecutor()

		cert, err := Issue("gitlab.example.com", "admin@example.com", "dns_cf", "cf-secret")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if cert.Domain != "gitlab.example.com" {
			t.Errorf("unexpected domain: %s", cert.Domain)
		}

		if len(mock.Calls) != 1 {
			t.Fatalf("expected 1 acme.sh call, got %d", len(mock.Calls))
		}
		call := mock.Calls[0]
		if call.Name != "acme.sh" {
			t.Errorf("expected acme.sh, got %s", call.Name)
		}

		joined := strings.Join(call.Args, " ")
		for _, want := range []string{"--issue", "--dns dns_cf", "-d gitlab.example.com", "--accountemail admin@example.com"} {
			if !strings.Contains(joined, want) {
				t.Errorf("args missing %q: %v", want, call.Args)
			}
		}
		if len(call.Env) != 1 || call.Env[0] != "CF_Token=cf-secret" {
			t.Errorf("CF_Token should travel via the environment: %v", call.Env)
		}
	})

	t.Run("issue failure surfaces output", func(t *testing.T) {
		mock := &executor.MockExecutor{
			ExecuteFunc: func(name string, args ...string) ([]byte, error) {
				return []byte("Verify error: DNS record not found"), errors.New("exit 1")
			},
		}
		SetExecutor(mock)
		defer ResetExecutor()

		_, err := Issue("gitlab.example.com", "", "dns_cf", "")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "DNS record not found") {
			t.Errorf("error should carry acme.sh output: %v", err)
		}
	})
}

func TestInstall(t *testing.T) {
	mock := &executor.MockExecutor{}
	SetExecutor(mock)
	defer ResetExecutor()

	cert, err := Install("gitlab.example.com", "/etc/gitlab/ssl", "gitlab-ctl hup nginx")
	if err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	if cert.CertPath != "/etc/gitlab/ssl/gitlab.example.com.crt" {
		t.Errorf("unexpected cert path: %s", cert.CertPath)
	}
	if cert.KeyPath != "/etc/gitlab/ssl/gitlab.example.com.key" {
		t.Errorf("unexpected key path: %s", cert.KeyPath)
	}

	joined := strings.Join(mock.Calls[0].Args, " ")
	for _, want := range []string{"--install-cert", "--reloadcmd gitlab-ctl hup nginx"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %v", want, mock.Calls[0].Args)
		}
	}
}

func TestRenew(t *testing.T) {
	mock := &executor.MockExecutor{}
	SetExecutor(mock)
	defer ResetExecutor()

	if err := Renew("gitlab.example.com"); err != nil {
		t.Fatalf("Renew failed: %v", err)
	}
	if err := RenewAll(); err != nil {
		t.Fatalf("RenewAll failed: %v", err)
	}

	if len(mock.Calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Args[0] != "--renew" {
		t.Errorf("expected --renew, got %v", mock.Calls[0].Args)
	}
	if mock.Calls[1].Args[0] != "--cron" {
		t.Errorf("expected --cron, got %v", mock.Calls[1].Args)
	}
}

func TestList(t *testing.T) {
	acmeOutput := `Main_Domain     KeyLength  SAN_Domains  CA               Created               Renew
gitlab.example.com  "ec-256"   no           LetsEncrypt.org  2026-08-01T00:00:00Z  2026-09-30T00:00:00Z
registry.example.com  "ec-256" no           LetsEncrypt.org  2026-08-15T00:00:00Z  2026-10-14T00:00:00Z
`
	mock := &executor.MockExecutor{
		ExecuteFunc: func(name string, args ...string) ([]byte, error) {
			return []byte(acmeOutput), nil
		},
	}
	SetExecutor(mock)
	defer ResetExecutor()

	domains, err := List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(domains) != 2 {
		t.Fatalf("expected 2 domains, got %v", domains)
	}
	if domains[0] != "gitlab.example.com" || domains[1] != "registry.example.com" {
		t.Errorf("unexpected domains: %v", domains)
	}
}
