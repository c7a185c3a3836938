package checker_test

import (
	"testing"

	"github.com/concord-tools/concord/internal/adapters/fs"
	"github.com/concord-tools/concord/internal/core/domain"
	"github.com/concord-tools/concord/internal/engine/checker"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReporter() *checker.ReportGenerator {
	return checker.NewReportGenerator(checker.NewDetector(fs.NewResolver()))
}

func canonicalConflictLedger(t *testing.T, resolutionSource string) *domain.Ledger {
	t.Helper()
	l := domain.NewLedger()
	require.NoError(t, l.RecordCanonical("foo", intern("/ws/dirA/lib"), intern("/ws/dirA/package.yaml")))
	l.RecordResolution("foo", intern("/ws/dirC/lib"), intern(resolutionSource))
	return l
}

func TestReportGenerator_CanonicalAnnotation(t *testing.T) {
	l := canonicalConflictLedger(t, "/ws/dirB/.resolutions")

	report := newReporter().Generate(l, "/ws/primary")

	g := goldie.New(t)
	g.Assert(t, "report_canonical", []byte(report))
}

func TestReportGenerator_CountOrderingAndTieBreak(t *testing.T) {
	l := domain.NewLedger()

	// bar: the later-discovered target has more sources and must lead.
	l.RecordResolution("bar", intern("/ws/x/lib"), intern("/ws/p1/.resolutions"))
	l.RecordResolution("bar", intern("/ws/y/lib"), intern("/ws/p2/.resolutions"))
	l.RecordResolution("bar", intern("/ws/y/lib"), intern("/ws/p3/.resolutions"))

	// baz: equal counts keep first-discovery order.
	l.RecordResolution("baz", intern("/ws/m/lib"), intern("/ws/p4/.resolutions"))
	l.RecordResolution("baz", intern("/ws/n/lib"), intern("/ws/p5/.resolutions"))

	report := newReporter().Generate(l, "/ws/primary")

	g := goldie.New(t)
	g.Assert(t, "report_tiebreak", []byte(report))
}

func TestReportGenerator_PrimaryRootRemediation(t *testing.T) {
	l := canonicalConflictLedger(t, "/ws/primary/app/.resolutions")

	report := newReporter().Generate(l, "/ws/primary")

	g := goldie.New(t)
	g.Assert(t, "report_primary", []byte(report))
}

func TestReportGenerator_Deterministic(t *testing.T) {
	build := func() *domain.Ledger {
		l := domain.NewLedger()
		l.RecordResolution("foo", intern("/ws/a/lib"), intern("/ws/p1/.resolutions"))
		l.RecordResolution("foo", intern("/ws/b/lib"), intern("/ws/p2/.resolutions"))
		l.RecordResolution("foo", intern("/ws/c/lib"), intern("/ws/p3/.resolutions"))
		return l
	}

	first := newReporter().Generate(build(), "/ws/primary")
	for range 20 {
		assert.Equal(t, first, newReporter().Generate(build(), "/ws/primary"))
	}
}
