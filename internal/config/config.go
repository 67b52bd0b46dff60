// Package config loads the tool configuration from an HCL file. The file
// names the workspace to document, the service account credentials and
// the output target:
//
//	container {
//	  account_id   = "86620968"
//	  container_id = "1761764"
//	  workspace_id = "4"
//	}
//
//	credentials_file = env["GTM_CREDENTIALS"]
//
//	output "docs.md" {
//	  format = "markdown"
//	}
//
// Attribute expressions are evaluated against an `env` map holding the
// process environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Config is the decoded and validated tool configuration.
type Config struct {
	Container       Container
	CredentialsFile string
	Output          Output
}

// Container identifies the workspace whose elements are documented.
type Container struct {
	AccountID   string
	ContainerID string
	WorkspaceID string
}

// Output names the file the generated document is written to. Path "-"
// means standard output.
type Output struct {
	Path   string
	Format string
}

// fileSchema is the HCL shape of the configuration file.
type fileSchema struct {
	Container       *containerBlock `hcl:"container,block"`
	CredentialsFile string          `hcl:"credentials_file"`
	Output          *outputBlock    `hcl:"output,block"`
}

type containerBlock struct {
	AccountID   string `hcl:"account_id"`
	ContainerID string `hcl:"container_id"`
	WorkspaceID string `hcl:"workspace_id"`
}

type outputBlock struct {
	Path   string `hcl:"path,label"`
	Format string `hcl:"format,optional"`
}

// Load parses and validates the configuration file at path.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", path, diags.Error())
	}

	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, envContext(), &schema); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", path, diags.Error())
	}
	return newConfig(&schema)
}

func newConfig(schema *fileSchema) (*Config, error) {
	if schema.Container == nil {
		return nil, fmt.Errorf("missing required container block")
	}
	if schema.CredentialsFile == "" {
		return nil, fmt.Errorf("credentials_file must not be empty")
	}

	cfg := &Config{
		Container: Container{
			AccountID:   schema.Container.AccountID,
			ContainerID: schema.Container.ContainerID,
			WorkspaceID: schema.Container.WorkspaceID,
		},
		CredentialsFile: schema.CredentialsFile,
		Output:          Output{Path: "docs.md", Format: FormatMarkdown},
	}
	if cfg.Container.AccountID == "" || cfg.Container.ContainerID == "" || cfg.Container.WorkspaceID == "" {
		return nil, fmt.Errorf("container block requires account_id, container_id and workspace_id")
	}

	if schema.Output != nil {
		cfg.Output.Path = schema.Output.Path
		if schema.Output.Format != "" {
			cfg.Output.Format = schema.Output.Format
		}
	}
	if cfg.Output.Format != FormatMarkdown && cfg.Output.Format != FormatHTML {
		return nil, fmt.Errorf("invalid output format %q: must be %q or %q",
			cfg.Output.Format, FormatMarkdown, FormatHTML)
	}
	return cfg, nil
}

// envContext exposes the process environment to attribute expressions as
// the `env` map.
func envContext() *hcl.EvalContext {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			vars[k] = cty.StringVal(v)
		}
	}
	env := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		env = cty.MapVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
