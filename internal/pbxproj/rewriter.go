package pbxproj

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jazzharmony/pbxkit/internal/config"
)

// ChangeKind names the textual form a replacement was applied to.
type ChangeKind string

const (
	KindPath     ChangeKind = "path"
	KindQuoted   ChangeKind = "quoted"
	KindPathAttr ChangeKind = "path-attr"
	KindNameAttr ChangeKind = "name-attr"
)

// Change is one mapping entry that matched at least once.
type Change struct {
	Kind  ChangeKind `json:"kind"`
	From  string     `json:"from"`
	To    string     `json:"to"`
	Count int        `json:"count"`
}

// RewriteReport is the output of Rewriter.Apply.
type RewriteReport struct {
	Text    string   `json:"-"`
	Changes []Change `json:"changes"`
	Total   int      `json:"total"`
}

// Outcome reports Changed when any replacement was made.
func (r *RewriteReport) Outcome() Outcome {
	if r.Total > 0 {
		return Changed
	}
	return Unchanged
}

// Rewriter applies the relocation tables to descriptor text.
type Rewriter struct {
	plan   config.RelocationPlan
	logger *slog.Logger
}

// NewRewriter creates a Rewriter. A nil logger falls back to slog.Default().
func NewRewriter(plan config.RelocationPlan, logger *slog.Logger) *Rewriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Rewriter{plan: plan, logger: logger.With("module", "rewriter")}
}

// Apply rewrites text in three passes: bare relative paths, quoted relative
// paths, then `path = X;` and `name = X;` attributes from the filename
// table. A quoted path also contains the bare path, so it is normally
// consumed by the first pass. Once rewritten, nothing matches again, so a
// second Apply over its own output reports no changes.
func (r *Rewriter) Apply(text string) *RewriteReport {
	rep := &RewriteReport{}

	for _, m := range r.plan.Paths {
		text = r.replace(rep, text, KindPath, m, m.From, m.To)
	}
	for _, m := range r.plan.Paths {
		text = r.replace(rep, text, KindQuoted, m, quote(m.From), quote(m.To))
	}
	for _, m := range r.plan.Filenames {
		text = r.replace(rep, text, KindPathAttr, m, attr("path", m.From), attr("path", m.To))
		text = r.replace(rep, text, KindNameAttr, m, attr("name", m.From), attr("name", m.To))
	}

	rep.Text = text
	return rep
}

func (r *Rewriter) replace(rep *RewriteReport, text string, kind ChangeKind, m config.Mapping, old, new string) string {
	if m.From == "" {
		return text
	}
	count := strings.Count(text, old)
	if count == 0 {
		return text
	}
	rep.Changes = append(rep.Changes, Change{Kind: kind, From: m.From, To: m.To, Count: count})
	rep.Total += count
	r.logger.Debug("replaced references", "kind", kind, "from", m.From, "to", m.To, "count", count)
	return strings.ReplaceAll(text, old, new)
}

func quote(s string) string {
	return `"` + s + `"`
}

func attr(name, value string) string {
	return fmt.Sprintf("%s = %s;", name, value)
}
