package variable

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ksyq12/glabenv/internal/errors"
)

// Metadata describes the provenance of an exported variables file
type Metadata struct {
	ProjectID      string `json:"project_id"`
	ExportedAt     string `json:"exported_at"`
	TotalVariables int    `json:"total_variables"`
	GitLabURL      string `json:"gitlab_url"`
}

// Document is the on-disk JSON representation of a variable collection
type Document struct {
	Variables []Variable `json:"variables"`
	Metadata  Metadata   `json:"metadata"`
}

// NewDocument builds a document from a collection with freshly stamped
// metadata
func NewDocument(c *Collection, projectID, gitlabURL string) *Document {
	return &Document{
		Variables: c.Variables(),
		Metadata: Metadata{
			ProjectID:      projectID,
			ExportedAt:     time.Now().Format(time.RFC3339),
			TotalVariables: c.Len(),
			GitLabURL:      gitlabURL,
		},
	}
}

// ParseDocument parses and validates a variables file. Any format error
// is fatal: no partial document is returned.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFormat, "failed to parse variables file", err)
	}
	if doc.Variables == nil {
		return nil, errors.Format("invalid format: 'variables' key not found")
	}
	// Validate eagerly so malformed files abort before any remote call.
	if _, err := FromVariables(doc.Variables); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Collection builds a validated collection from the document's variables
func (d *Document) Collection() (*Collection, error) {
	return FromVariables(d.Variables)
}

// ReadFile loads and parses a variables file from disk
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFormat, "failed to read variables file", err)
	}
	return ParseDocument(data)
}

// WriteFile writes the document to disk as indented JSON
func (d *Document) WriteFile(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to encode variables file", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to write variables file", err)
	}
	return nil
}
