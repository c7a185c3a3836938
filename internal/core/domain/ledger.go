// Package domain holds the core types for workspace dependency checking.
package domain

import "go.trai.ch/zerr"

// record tracks every resolution observed for a single package name.
//
// Targets are kept in discovery order alongside a per-target list of the
// source manifests that asserted them. Discovery order is the tie-breaker for
// report ordering, so both slices are append-only during a scan.
type record struct {
	targets         []InternedString
	sources         map[InternedString][]InternedString
	canonical       InternedString
	canonicalSource InternedString
	hasCanonical    bool
}

// Ledger records, per package name, every (target, source) pair observed
// while scanning a workspace, plus at most one canonical target.
//
// Package names, targets and sources all preserve insertion order. The ledger
// is written only during the scan phase; every read accessor returns a copy,
// so consumers (detector, report generator) cannot mutate scan results.
type Ledger struct {
	names   []string
	records map[string]*record
}

// NewLedger creates an empty ledger for a single checking run.
func NewLedger() *Ledger {
	return &Ledger{
		records: make(map[string]*record),
	}
}

func (l *Ledger) record(name string) *record {
	r, ok := l.records[name]
	if !ok {
		r = &record{
			sources: make(map[InternedString][]InternedString),
		}
		l.records[name] = r
		l.names = append(l.names, name)
	}
	return r
}

// RecordCanonical registers target as the package's own authoritative
// definition, declared by the manifest at source. The canonical source is
// also recorded as an ordinary source for its own target, so the canonical
// target is always present among the package's targets.
//
// Returns ErrDuplicateCanonical if the package already has a canonical
// target: two manifests both claiming ownership of one name is a workspace
// integrity violation, not an ordinary conflict.
func (l *Ledger) RecordCanonical(name string, target, source InternedString) error {
	r := l.record(name)
	if r.hasCanonical {
		err := zerr.With(ErrDuplicateCanonical, "package", name)
		err = zerr.With(err, "first_declaration", r.canonicalSource.String())
		return zerr.With(err, "duplicate_declaration", source.String())
	}
	r.hasCanonical = true
	r.canonical = target
	r.canonicalSource = source
	l.appendSource(r, target, source)
	return nil
}

// RecordResolution appends source to the source list for target under name,
// creating the record and target bucket if absent. Duplicate (name, target,
// source) triples are legal and simply extend the source list: a directory
// may re-assert the same fact.
func (l *Ledger) RecordResolution(name string, target, source InternedString) {
	l.appendSource(l.record(name), target, source)
}

func (l *Ledger) appendSource(r *record, target, source InternedString) {
	if _, seen := r.sources[target]; !seen {
		r.targets = append(r.targets, target)
	}
	r.sources[target] = append(r.sources[target], source)
}

// HasConflict reports whether name has more than one distinct target.
// Names never recorded have no conflict.
func (l *Ledger) HasConflict(name string) bool {
	r, ok := l.records[name]
	return ok && len(r.targets) > 1
}

// SingleTarget returns the sole target recorded for name.
//
// It fails with ErrNotResolvable when the name is unknown or conflicted;
// callers must check HasConflict first. Only the success-path map builder
// should reach this.
func (l *Ledger) SingleTarget(name string) (InternedString, error) {
	r, ok := l.records[name]
	if !ok || len(r.targets) != 1 {
		return InternedString{}, zerr.With(ErrNotResolvable, "package", name)
	}
	return r.targets[0], nil
}

// Names returns every recorded package name in insertion order.
func (l *Ledger) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// ConflictedNames returns, in ledger insertion order, every package name
// recorded with two or more distinct targets.
func (l *Ledger) ConflictedNames() []string {
	var out []string
	for _, name := range l.names {
		if l.HasConflict(name) {
			out = append(out, name)
		}
	}
	return out
}

// Targets returns the distinct targets recorded for name in discovery order.
func (l *Ledger) Targets(name string) []InternedString {
	r, ok := l.records[name]
	if !ok {
		return nil
	}
	out := make([]InternedString, len(r.targets))
	copy(out, r.targets)
	return out
}

// Sources returns the source manifests that asserted target for name,
// in discovery order.
func (l *Ledger) Sources(name string, target InternedString) []InternedString {
	r, ok := l.records[name]
	if !ok {
		return nil
	}
	srcs, ok := r.sources[target]
	if !ok {
		return nil
	}
	out := make([]InternedString, len(srcs))
	copy(out, srcs)
	return out
}

// CanonicalTarget returns the package's self-declared target, if any.
func (l *Ledger) CanonicalTarget(name string) (InternedString, bool) {
	r, ok := l.records[name]
	if !ok || !r.hasCanonical {
		return InternedString{}, false
	}
	return r.canonical, true
}

// CanonicalSource returns the manifest that declared the package's canonical
// target, if any.
func (l *Ledger) CanonicalSource(name string) (InternedString, bool) {
	r, ok := l.records[name]
	if !ok || !r.hasCanonical {
		return InternedString{}, false
	}
	return r.canonicalSource, true
}
