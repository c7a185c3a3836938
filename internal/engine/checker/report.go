package checker

import (
	"fmt"
	"slices"
	"strings"

	"github.com/concord-tools/concord/internal/core/domain"
)

// ReportGenerator renders a deterministic, human-readable description of all
// conflicts in a ledger. Output depends only on ledger contents and insertion
// order: packages appear in discovery order, targets within a package are
// sorted by descending source count with stable first-discovery tie-breaks,
// and sources are listed in discovery order.
type ReportGenerator struct {
	detector *Detector
}

// NewReportGenerator creates a ReportGenerator using the given detector for
// primary-root remediation branching.
func NewReportGenerator(detector *Detector) *ReportGenerator {
	return &ReportGenerator{detector: detector}
}

// Generate renders the full conflict report for the ledger. primaryRoot
// selects the remediation paragraph: conflicts with a non-canonical source
// inside it get the workspace-wide re-synchronization guidance.
func (g *ReportGenerator) Generate(l *domain.Ledger, primaryRoot string) string {
	var b strings.Builder

	affectsPrimary := false
	for _, name := range l.ConflictedNames() {
		g.writePackage(&b, l, name)
		if g.detector.AffectsRoot(l, name, primaryRoot) {
			affectsPrimary = true
		}
	}

	if affectsPrimary {
		b.WriteString("At least one conflicting resolution was recorded inside " + primaryRoot + ".\n")
		b.WriteString("Re-synchronize the whole workspace so that every package resolves to a single location.")
	} else {
		b.WriteString("Re-run dependency resolution in the directories listed above so that every\n")
		b.WriteString("package resolves to a single location.")
	}

	return b.String()
}

func (g *ReportGenerator) writePackage(b *strings.Builder, l *domain.Ledger, name string) {
	targets := l.Targets(name)

	// Stable sort: equal-count targets keep first-discovery order.
	slices.SortStableFunc(targets, func(a, c domain.InternedString) int {
		return len(l.Sources(name, c)) - len(l.Sources(name, a))
	})

	fmt.Fprintf(b, "Package %q resolves to %d different locations:\n", name, len(targets))

	canonicalSource, hasCanonical := l.CanonicalSource(name)

	for _, target := range targets {
		sources := l.Sources(name, target)

		annotation := ""
		if hasCanonical && slices.Contains(sources, canonicalSource) {
			annotation = fmt.Sprintf(" (canonical location, declared by %s)", canonicalSource)
		}

		if len(sources) == 1 {
			fmt.Fprintf(b, "  1 source wants %s%s:\n", target, annotation)
		} else {
			fmt.Fprintf(b, "  %d sources want %s%s:\n", len(sources), target, annotation)
		}

		for _, src := range sources {
			fmt.Fprintf(b, "    %s\n", src)
		}
	}

	b.WriteString("\n")
}
