package history

import "strings"

// History holds the two listings read from a repository, newest-first.
// Trailing blank lines reported by the source are already removed.
type History struct {
	// Identifiers lists one commit ID per entry.
	Identifiers []string
	// Ancestry lists "<id> <parent>..." records, one per commit.
	Ancestry []string
}

// Len returns the number of identifiers in the listing.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.Identifiers)
}

// Options configures a history source.
type Options struct {
	RepoPath string
	GitPath  string   // git executable for the CLI backend. Empty means "git".
	Branch   string   // Starting revision when All is false. Empty means HEAD.
	All      bool     // Start from every ref instead of Branch.
	Include  []string // Glob patterns selecting refs when All is set
	Exclude  []string // Glob patterns rejecting refs when All is set
	// Combined reads identifiers and ancestry from a single query so both
	// listings describe the same snapshot of the repository.
	Combined bool
}

// FormatRecord renders an ancestry record in the "<id> <parent>..." form.
func FormatRecord(id string, parents []string) string {
	if len(parents) == 0 {
		return id
	}
	return id + " " + strings.Join(parents, " ")
}

// SplitListing splits newline-separated query output into entries.
// Carriage returns are dropped and trailing blank lines are removed;
// blank lines in the middle of the output are kept.
func SplitListing(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r", "")
	lines := strings.Split(raw, "\n")
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}

// identifiersFromAncestry takes the leading token of every record.
func identifiersFromAncestry(records []string) []string {
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		fields := strings.Fields(rec)
		if len(fields) == 0 {
			continue
		}
		ids = append(ids, fields[0])
	}
	return ids
}
