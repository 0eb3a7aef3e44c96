package gitrepo

import (
	"context"
	"strconv"
	"strings"
)

// Status represents the status of a Git repository.
type Status struct {
	// Branch is the current branch name ("(detached)" when HEAD is detached).
	Branch string
	// Head is the commit hash HEAD points to ("(initial)" before the first commit).
	Head string
	// Upstream is the tracked remote branch, if any.
	Upstream string
	// Dirty is true if there are uncommitted changes.
	Dirty bool
	// Ahead is the number of commits ahead of upstream.
	Ahead int
	// Behind is the number of commits behind upstream.
	Behind int
	// Entries contains detailed status entries for each changed file.
	Entries []StatusEntry
}

// StatusEntry represents a single file's status.
type StatusEntry struct {
	// Path is the file path.
	Path string
	// X is the first status character (see git status --porcelain documentation).
	X byte
	// Y is the second status character.
	Y byte
}

// Status returns the current status of the repository.
func (r *gitRepo) Status(ctx context.Context) (Status, error) {
	output, err := r.runGit(ctx, "status", "--porcelain=v2", "--branch", "--untracked-files=all")
	if err != nil {
		return Status{}, err
	}
	return parseStatus(output), nil
}

// parseStatus parses porcelain v2 output:
//
//	# branch.oid <commit>
//	# branch.head <branch>
//	# branch.upstream <upstream>
//	# branch.ab +<ahead> -<behind>
//	1 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <path>
//	? <path>
func parseStatus(output string) Status {
	var status Status

	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "# branch.oid "):
			status.Head = strings.TrimPrefix(line, "# branch.oid ")
		case strings.HasPrefix(line, "# branch.head "):
			status.Branch = strings.TrimPrefix(line, "# branch.head ")
		case strings.HasPrefix(line, "# branch.upstream "):
			status.Upstream = strings.TrimPrefix(line, "# branch.upstream ")
		case strings.HasPrefix(line, "# branch.ab "):
			for _, part := range strings.Fields(strings.TrimPrefix(line, "# branch.ab ")) {
				if strings.HasPrefix(part, "+") {
					status.Ahead, _ = strconv.Atoi(strings.TrimPrefix(part, "+"))
				} else if strings.HasPrefix(part, "-") {
					status.Behind, _ = strconv.Atoi(strings.TrimPrefix(part, "-"))
				}
			}
		case strings.HasPrefix(line, "#"):
			// other headers
		case strings.HasPrefix(line, "? "):
			status.Entries = append(status.Entries, StatusEntry{
				Path: strings.TrimPrefix(line, "? "),
				X:    '?',
				Y:    '?',
			})
			status.Dirty = true
		default:
			fields := strings.Fields(line)
			if len(fields) < 3 {
				continue
			}
			entry := StatusEntry{Path: fields[len(fields)-1]}
			if xy := fields[1]; len(xy) >= 2 {
				entry.X = xy[0]
				entry.Y = xy[1]
			}
			status.Entries = append(status.Entries, entry)
			status.Dirty = true
		}
	}

	return status
}
