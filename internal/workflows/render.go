package workflows

import (
	"regexp"
	"strings"
)

// placeholderRegex matches {{name}} tokens in commands.
var placeholderRegex = regexp.MustCompile(`\{\{([^{}\s]+)\}\}`)

// Render substitutes every {{key}} in the command with values[key].
//
// Placeholders without a value are left untouched. Keys are applied in map
// order, so a value that itself contains {{other}} may or may not be
// expanded; callers must not rely on either outcome.
func (w Workflow) Render(values map[string]string) string {
	command := w.Command
	for key, value := range values {
		command = strings.ReplaceAll(command, "{{"+key+"}}", value)
	}
	return command
}

// Placeholders returns the unique placeholder names in the command, in
// order of first appearance.
func (w Workflow) Placeholders() []string {
	matches := placeholderRegex.FindAllStringSubmatch(w.Command, -1)
	seen := make(map[string]bool)
	var result []string
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			result = append(result, m[1])
		}
	}
	return result
}

// ArgumentValues returns the default values of w's arguments overlaid
// with overrides. Arguments without a default are omitted unless overridden.
func (w Workflow) ArgumentValues(overrides map[string]string) map[string]string {
	values := make(map[string]string, len(w.Arguments)+len(overrides))
	for _, arg := range w.Arguments {
		if arg.DefaultValue != nil {
			values[arg.Name] = *arg.DefaultValue
		}
	}
	for k, v := range overrides {
		values[k] = v
	}
	return values
}

// Argument returns the argument named name, if declared.
func (w Workflow) Argument(name string) (Argument, bool) {
	for _, arg := range w.Arguments {
		if arg.Name == name {
			return arg, true
		}
	}
	return Argument{}, false
}
