package workflows

import (
	"slices"

	"github.com/mitchellh/hashstructure/v2"
)

// New returns a workflow with only a name and a command.
func New(name, command string) Workflow {
	return Workflow{Name: name, Command: command}
}

// NewArgument returns an argument with only a name.
func NewArgument(name string) Argument {
	return Argument{Name: name}
}

// WithDescription returns a copy of a with the description set.
func (a Argument) WithDescription(description string) Argument {
	a.Description = &description
	return a
}

// WithDefault returns a copy of a with the default value set.
func (a Argument) WithDefault(value string) Argument {
	a.DefaultValue = &value
	return a
}

// WithDescription returns a copy of w with the description set.
func (w Workflow) WithDescription(description string) Workflow {
	c := w.Clone()
	c.Description = &description
	return c
}

// WithTags returns a copy of w with tags replaced.
func (w Workflow) WithTags(tags ...string) Workflow {
	c := w.Clone()
	c.Tags = slices.Clone(tags)
	return c
}

// WithArguments returns a copy of w with arguments replaced.
func (w Workflow) WithArguments(args ...Argument) Workflow {
	c := w.Clone()
	c.Arguments = cloneArguments(args)
	return c
}

// WithShells returns a copy of w with shells replaced.
func (w Workflow) WithShells(shells ...Shell) Workflow {
	c := w.Clone()
	c.Shells = slices.Clone(shells)
	return c
}

// WithSourceURL returns a copy of w with the source URL set.
func (w Workflow) WithSourceURL(url string) Workflow {
	c := w.Clone()
	c.SourceURL = &url
	return c
}

// WithAuthor returns a copy of w with the author name and URL set.
// An empty url leaves AuthorURL unset.
func (w Workflow) WithAuthor(name, url string) Workflow {
	c := w.Clone()
	c.Author = &name
	c.AuthorURL = nil
	if url != "" {
		c.AuthorURL = &url
	}
	return c
}

// Clone returns a deep copy of w. Nil slices stay nil.
func (w Workflow) Clone() Workflow {
	return Workflow{
		Name:        w.Name,
		Command:     w.Command,
		Tags:        slices.Clone(w.Tags),
		Description: cloneString(w.Description),
		Arguments:   cloneArguments(w.Arguments),
		SourceURL:   cloneString(w.SourceURL),
		Author:      cloneString(w.Author),
		AuthorURL:   cloneString(w.AuthorURL),
		Shells:      slices.Clone(w.Shells),
	}
}

// Equal reports whether w and other have the same field values.
// A nil slice equals an empty one; a nil optional string does not equal "".
func (w Workflow) Equal(other Workflow) bool {
	return w.Name == other.Name &&
		w.Command == other.Command &&
		slices.Equal(w.Tags, other.Tags) &&
		equalString(w.Description, other.Description) &&
		slices.EqualFunc(w.Arguments, other.Arguments, Argument.Equal) &&
		equalString(w.SourceURL, other.SourceURL) &&
		equalString(w.Author, other.Author) &&
		equalString(w.AuthorURL, other.AuthorURL) &&
		slices.Equal(w.Shells, other.Shells)
}

// Equal reports whether a and other have the same field values.
func (a Argument) Equal(other Argument) bool {
	return a.Name == other.Name &&
		equalString(a.Description, other.Description) &&
		equalString(a.DefaultValue, other.DefaultValue)
}

// Hash returns a structural hash of w. Equal workflows hash equally.
func (w Workflow) Hash() (uint64, error) {
	return hashstructure.Hash(w, hashstructure.FormatV2, nil)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneArguments(args []Argument) []Argument {
	if args == nil {
		return nil
	}
	out := make([]Argument, len(args))
	for i, a := range args {
		out[i] = Argument{
			Name:         a.Name,
			Description:  cloneString(a.Description),
			DefaultValue: cloneString(a.DefaultValue),
		}
	}
	return out
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
