// Package checker implements workspace dependency-consistency checking: it
// verifies that every reference to a named dependency across a workspace
// resolves to the same on-disk location.
package checker

import (
	"context"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/concord-tools/concord/internal/core/domain"
	"github.com/concord-tools/concord/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// defaultParallelism bounds concurrent manifest reads during the scan phase.
const defaultParallelism = 8

// Checker orchestrates one checking run: it populates a ledger from the
// workspace's package directories, invokes the detector, and either returns
// the validated name→path map or fails with the full conflict report.
//
// Manifest reads may run in parallel, but ledger commits happen strictly in
// the order of Workspace.Dirs, so discovery order (and with it report
// ordering and tie-breaking) is reproducible for a fixed input order.
type Checker struct {
	paths       ports.Paths
	manifests   ports.ManifestSource
	detector    *Detector
	reporter    *ReportGenerator
	parallelism int
}

// New creates a Checker with the given collaborators.
func New(paths ports.Paths, manifests ports.ManifestSource) *Checker {
	detector := NewDetector(paths)
	return &Checker{
		paths:       paths,
		manifests:   manifests,
		detector:    detector,
		reporter:    NewReportGenerator(detector),
		parallelism: defaultParallelism,
	}
}

// Check runs the two-phase consistency check over ws.
//
// The scan phase records every canonical declaration and resolution entry
// into a fresh ledger; it aborts on a malformed canonical manifest or a
// duplicate canonical declaration. The decision phase either builds the
// success result or fails with ErrDependencyConflict carrying the report.
// No partial result is ever returned.
func (c *Checker) Check(ctx context.Context, ws *domain.Workspace) (*domain.Result, error) {
	loaded, err := c.loadManifests(ctx, ws.Dirs)
	if err != nil {
		return nil, err
	}

	ledger := domain.NewLedger()
	digest := xxhash.New()

	for _, dm := range loaded {
		if err := c.commit(ledger, digest, ws, dm); err != nil {
			return nil, err
		}
	}

	if conflicts := c.detector.Conflicts(ledger); len(conflicts) > 0 {
		report := c.reporter.Generate(ledger, ws.PrimaryRoot)
		return nil, zerr.Wrap(domain.ErrDependencyConflict, report)
	}

	names := ledger.Names()
	paths := make(map[string]string, len(names))
	for _, name := range names {
		target, err := ledger.SingleTarget(name)
		if err != nil {
			return nil, err
		}
		paths[name] = target.String()
	}

	return &domain.Result{
		Names:       names,
		Paths:       paths,
		Fingerprint: digest.Sum64(),
	}, nil
}

// loadManifests reads every directory's manifests with bounded parallelism.
// Results are slotted by index so the caller can commit them in directory
// order regardless of read completion order.
func (c *Checker) loadManifests(ctx context.Context, dirs []string) ([]*domain.DirManifests, error) {
	out := make([]*domain.DirManifests, len(dirs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelism)

	for i, dir := range dirs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dm, err := c.manifests.Load(dir)
			if err != nil {
				return err
			}
			out[i] = dm
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// commit records one directory's manifests into the ledger and folds their
// content into the workspace fingerprint. The canonical manifest is handled
// before the resolution manifest so a package's own declaration is always
// the first discovery for its target.
func (c *Checker) commit(ledger *domain.Ledger, digest *xxhash.Digest, ws *domain.Workspace, dm *domain.DirManifests) error {
	if dm.Canonical != nil {
		_, _ = digest.WriteString(dm.Canonical.Path)
		_, _ = digest.Write(dm.Canonical.Raw)

		name, ok := dm.Canonical.Doc["name"].(string)
		if !ok {
			return zerr.With(domain.ErrMalformedManifest, "path", dm.Canonical.Path)
		}

		target := c.paths.Absolute(dm.Dir, domain.LibDirName)
		err := ledger.RecordCanonical(
			name,
			domain.NewInternedString(target),
			domain.NewInternedString(dm.Canonical.Path),
		)
		if err != nil {
			return err
		}
	}

	if dm.Resolution != nil {
		_, _ = digest.WriteString(dm.Resolution.Path)
		_, _ = digest.WriteString(dm.Resolution.Text)

		c.commitResolutions(ledger, ws, dm)
	}

	return nil
}

func (c *Checker) commitResolutions(ledger *domain.Ledger, ws *domain.Workspace, dm *domain.DirManifests) {
	source := domain.NewInternedString(dm.Resolution.Path)

	for _, line := range strings.Split(dm.Resolution.Text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, rawPath, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		rawPath = strings.TrimSpace(rawPath)

		target := c.paths.Absolute(dm.Dir, rawPath)

		// Deliberately duplicated vendored copies: an allow-listed name
		// resolved inside its own directory is not a conflict.
		if ws.IsVendored(name) && c.paths.Contains(dm.Dir, target) {
			continue
		}

		ledger.RecordResolution(name, domain.NewInternedString(target), source)
	}
}
