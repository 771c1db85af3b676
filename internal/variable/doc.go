// Package variable defines the GitLab CI/CD variable data model and the
// JSON file format used to move variables between projects and disk.
//
// A Variable mirrors the fields the GitLab API exposes for project
// variables: key, value, protected, masked, and variable_type. The
// description field exists only in the file representation; GitLab does
// not persist it, and the tool uses it for human documentation and for
// annotating redacted exports.
//
// # Masked Values
//
// When a variable is masked, the remote store redacts its value in read
// responses. An exported file therefore carries an empty string for masked
// variables unless the export explicitly requested real values. Consumers
// must treat an observed empty value on a masked variable as a redaction
// sentinel, never as ground truth.
//
// # File Format
//
// Example document:
//
//	{
//	  "variables": [
//	    {
//	      "key": "DB_PASSWORD",
//	      "value": "",
//	      "description": "Masked value not exported",
//	      "protected": true,
//	      "masked": true,
//	      "variable_type": "env_var"
//	    }
//	  ],
//	  "metadata": {
//	    "project_id": "12345",
//	    "exported_at": "2026-08-30T10:00:00Z",
//	    "total_variables": 1,
//	    "gitlab_url": "https://gitlab.example.com"
//	  }
//	}
//
// Parsing validates every record eagerly: a missing key, a duplicate key,
// a key outside [A-Za-z0-9_], or an unknown variable_type aborts with a
// FORMAT error before any remote interaction.
package variable
