package checker

import (
	"github.com/concord-tools/concord/internal/core/domain"
	"github.com/concord-tools/concord/internal/core/ports"
)

// Detector is a pure function layer over a populated ledger: it produces the
// conflict set and decides whether a conflict touches the primary root.
// It is separate from the Checker so the policy is testable in isolation.
type Detector struct {
	paths ports.Paths
}

// NewDetector creates a Detector using the given path resolver.
func NewDetector(paths ports.Paths) *Detector {
	return &Detector{paths: paths}
}

// Conflicts returns the conflicted package names in ledger insertion order.
func (d *Detector) Conflicts(l *domain.Ledger) []string {
	return l.ConflictedNames()
}

// AffectsRoot reports whether any source recorded for a non-canonical target
// of name lies within rootPath. Sources backing the canonical target are
// excluded: the package's own declaration is not the side that needs fixing.
func (d *Detector) AffectsRoot(l *domain.Ledger, name, rootPath string) bool {
	canonical, hasCanonical := l.CanonicalTarget(name)
	for _, target := range l.Targets(name) {
		if hasCanonical && target == canonical {
			continue
		}
		for _, src := range l.Sources(name, target) {
			if d.paths.Contains(rootPath, src.String()) {
				return true
			}
		}
	}
	return false
}
