package workflows

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Shell is a shell a workflow command is written for.
type Shell string

const (
	Fish Shell = "fish"
	Bash Shell = "bash"
	Zsh  Shell = "zsh"
)

// ParseShell accepts the lowercase shell name or its capitalised form.
func ParseShell(s string) (Shell, error) {
	switch s {
	case "fish", "Fish":
		return Fish, nil
	case "bash", "Bash":
		return Bash, nil
	case "zsh", "Zsh":
		return Zsh, nil
	}
	return "", fmt.Errorf("unknown shell %q (want fish, bash or zsh)", s)
}

// UnmarshalYAML rejects shells outside the supported set.
func (s *Shell) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	shell, err := ParseShell(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = shell
	return nil
}

// Argument is a named parameter of a workflow command. Arguments are
// referenced from the command as {{name}}.
type Argument struct {
	Name         string  `yaml:"name" json:"name"`
	Description  *string `yaml:"description,omitempty" json:"description,omitempty"`
	DefaultValue *string `yaml:"default_value,omitempty" json:"default_value,omitempty"`
}

// UnmarshalYAML requires the name key.
func (a *Argument) UnmarshalYAML(value *yaml.Node) error {
	if err := requireKeys(value, "name"); err != nil {
		return err
	}
	type plain Argument
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*a = Argument(p)
	return nil
}

// Workflow is a named, parameterised shell command template.
type Workflow struct {
	Name        string     `yaml:"name" json:"name"`
	Command     string     `yaml:"command" json:"command"`
	Tags        []string   `yaml:"tags,omitempty" json:"tags,omitempty"`
	Description *string    `yaml:"description,omitempty" json:"description,omitempty"`
	Arguments   []Argument `yaml:"arguments,omitempty" json:"arguments,omitempty"`
	SourceURL   *string    `yaml:"source_url,omitempty" json:"source_url,omitempty"`
	Author      *string    `yaml:"author,omitempty" json:"author,omitempty"`
	AuthorURL   *string    `yaml:"author_url,omitempty" json:"author_url,omitempty"`
	Shells      []Shell    `yaml:"shells,omitempty" json:"shells,omitempty"`
}

// UnmarshalYAML requires the name and command keys. Unknown keys are ignored.
func (w *Workflow) UnmarshalYAML(value *yaml.Node) error {
	if err := requireKeys(value, "name", "command"); err != nil {
		return err
	}
	type plain Workflow
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*w = Workflow(p)
	return nil
}

// requireKeys checks that a mapping node defines every key in keys with a
// non-null value.
func requireKeys(value *yaml.Node, keys ...string) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", value.Line)
	}
	values := make(map[string]*yaml.Node, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		values[value.Content[i].Value] = value.Content[i+1]
	}
	var missing, null []string
	for _, key := range keys {
		v, ok := values[key]
		switch {
		case !ok:
			missing = append(missing, key)
		case v.Tag == "!!null":
			null = append(null, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("line %d: missing field(s): %s", value.Line, strings.Join(missing, ", "))
	}
	if len(null) > 0 {
		return fmt.Errorf("line %d: null field(s): %s", value.Line, strings.Join(null, ", "))
	}
	return nil
}

// String formats every field of the workflow, one per line.
func (w Workflow) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", w.Name)
	fmt.Fprintf(&b, "Command: %s\n", w.Command)
	fmt.Fprintf(&b, "Tags: %v\n", w.Tags)
	fmt.Fprintf(&b, "Description: %s\n", StringValue(w.Description))
	fmt.Fprintf(&b, "Arguments: %v\n", argumentNames(w.Arguments))
	fmt.Fprintf(&b, "Source URL: %s\n", StringValue(w.SourceURL))
	fmt.Fprintf(&b, "Author: %s\n", StringValue(w.Author))
	fmt.Fprintf(&b, "Author URL: %s\n", StringValue(w.AuthorURL))
	fmt.Fprintf(&b, "Shells: %v", w.Shells)
	return b.String()
}

func argumentNames(args []Argument) []string {
	names := make([]string, 0, len(args))
	for _, a := range args {
		names = append(names, a.Name)
	}
	return names
}

// StringValue dereferences an optional string, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
