package gitlab

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ksyq12/glabenv/internal/errors"
	"github.com/ksyq12/glabenv/internal/logger"
	"github.com/ksyq12/glabenv/internal/variable"
)

// apiVersion is the GitLab REST API version the client speaks
const apiVersion = "v4"

// defaultTimeout bounds every API call
const defaultTimeout = 30 * time.Second

// Config holds everything needed to talk to a GitLab project's
// variables endpoint
type Config struct {
	BaseURL   string
	Token     string
	ProjectID string // numeric ID or path form (group/project)

	// TLS options for self-hosted instances
	InsecureSkipVerify bool
	CABundle           string // path to a PEM bundle
}

// Client is a thin wrapper over the project variables REST endpoints
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient builds a client, wiring the TLS configuration for
// self-hosted GitLab instances
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" || cfg.Token == "" {
		return nil, errors.ErrAuthRequired
	}
	if cfg.ProjectID == "" {
		return nil, errors.ErrProjectRequired
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	transport := &http.Transport{}
	if cfg.InsecureSkipVerify {
		logger.Warn("TLS certificate verification disabled")
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	} else if cfg.CABundle != "" {
		pem, err := os.ReadFile(cfg.CABundle)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfig, "failed to read CA bundle", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.Wrap(errors.ErrCodeConfig, "no certificates found in CA bundle", nil)
		}
		transport.TLSClientConfig = &tls.Config{RootCAs: pool}
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
		},
	}, nil
}

// BaseURL returns the configured GitLab base URL
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// ProjectID returns the configured project identifier
func (c *Client) ProjectID() string {
	return c.cfg.ProjectID
}

// variablesURL returns the project variables endpoint, optionally with a key
func (c *Client) variablesURL(key string) string {
	u := fmt.Sprintf("%s/api/%s/projects/%s/variables",
		c.cfg.BaseURL, apiVersion, url.PathEscape(c.cfg.ProjectID))
	if key != "" {
		u += "/" + url.PathEscape(key)
	}
	return u
}

// do executes a request with auth headers and returns the response body
// for 2xx responses
func (c *Client) do(ctx context.Context, method, rawURL string, body interface{}) ([]byte, http.Header, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("PRIVATE-TOKEN", c.cfg.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(data))
		if len(msg) > 200 {
			msg = msg[:200]
		}
		return nil, resp.Header, fmt.Errorf("HTTP %d: %s", resp.StatusCode, msg)
	}
	return data, resp.Header, nil
}

// ListVariables fetches all variables for the project, following pagination
func (c *Client) ListVariables(ctx context.Context) ([]variable.Variable, error) {
	logger.Info("Fetching variables from project %s", c.cfg.ProjectID)

	var all []variable.Variable
	page := "1"
	for page != "" {
		u := c.variablesURL("") + "?per_page=100&page=" + page
		data, header, err := c.do(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, errors.Remote("list", "", err)
		}

		var vars []variable.Variable
		if err := json.Unmarshal(data, &vars); err != nil {
			return nil, errors.Remote("list", "", err)
		}
		all = append(all, vars...)
		page = header.Get("X-Next-Page")
	}

	logger.Info("Retrieved %d variables", len(all))
	return all, nil
}

// GetVariable fetches a single variable by key
func (c *Client) GetVariable(ctx context.Context, key string) (variable.Variable, error) {
	data, _, err := c.do(ctx, http.MethodGet, c.variablesURL(key), nil)
	if err != nil {
		if strings.Contains(err.Error(), "HTTP 404") {
			return variable.Variable{}, errors.ErrVariableNotFound
		}
		return variable.Variable{}, errors.Remote("get", key, err)
	}

	var v variable.Variable
	if err := json.Unmarshal(data, &v); err != nil {
		return variable.Variable{}, errors.Remote("get", key, err)
	}
	return v, nil
}

// variablePayload is the request body GitLab expects for writes
type variablePayload struct {
	Key         string `json:"key,omitempty"`
	Value       string `json:"value"`
	Protected   bool   `json:"protected"`
	Masked      bool   `json:"masked"`
	Type        string `json:"variable_type"`
	Description string `json:"description,omitempty"`
}

// CreateVariable creates a new variable in the project
func (c *Client) CreateVariable(ctx context.Context, v variable.Variable) error {
	logger.Info("Creating variable: %s", v.Key)

	payload := variablePayload{
		Key:         v.Key,
		Value:       v.Value,
		Protected:   v.Protected,
		Masked:      v.Masked,
		Type:        v.Type,
		Description: v.Description,
	}
	if _, _, err := c.do(ctx, http.MethodPost, c.variablesURL(""), payload); err != nil {
		return errors.Remote("create", v.Key, err)
	}
	return nil
}

// UpdateVariable updates an existing variable by key
func (c *Client) UpdateVariable(ctx context.Context, v variable.Variable) error {
	logger.Info("Updating variable: %s", v.Key)

	payload := variablePayload{
		Value:       v.Value,
		Protected:   v.Protected,
		Masked:      v.Masked,
		Type:        v.Type,
		Description: v.Description,
	}
	if _, _, err := c.do(ctx, http.MethodPut, c.variablesURL(v.Key), payload); err != nil {
		return errors.Remote("update", v.Key, err)
	}
	return nil
}

// DeleteVariable removes a variable by key
func (c *Client) DeleteVariable(ctx context.Context, key string) error {
	logger.Info("Deleting variable: %s", key)

	if _, _, err := c.do(ctx, http.MethodDelete, c.variablesURL(key), nil); err != nil {
		return errors.Remote("delete", key, err)
	}
	return nil
}

// Ping checks that the project is reachable with the configured credentials
func (c *Client) Ping(ctx context.Context) error {
	u := fmt.Sprintf("%s/api/%s/projects/%s",
		c.cfg.BaseURL, apiVersion, url.PathEscape(c.cfg.ProjectID))
	if _, _, err := c.do(ctx, http.MethodGet, u, nil); err != nil {
		return errors.Remote("ping", "", err)
	}
	return nil
}
