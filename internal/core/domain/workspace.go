package domain

// Workspace describes one checking run's input: the ordered set of package
// directories plus the policy knobs from concord.yaml.
type Workspace struct {
	// Root is the absolute workspace root (the directory holding concord.yaml
	// unless overridden by the config's root field).
	Root string

	// PrimaryRoot is the subtree whose conflicts get the stronger remediation
	// guidance. Absolute.
	PrimaryRoot string

	// Dirs is the ordered list of absolute package directories to scan.
	// The order is the discovery order used for deterministic reporting, so
	// loaders must produce a stable ordering (lexicographic by path).
	Dirs []string

	// Vendored is the allow-list of package names exempt from conflict
	// recording when resolved to a local, non-escaping path.
	Vendored []string
}

// IsVendored reports whether name is on the vendor-pinned allow-list.
func (w *Workspace) IsVendored(name string) bool {
	for _, v := range w.Vendored {
		if v == name {
			return true
		}
	}
	return false
}

// Result is the successful outcome of one checking run: every package name
// mapped to its single agreed-upon target.
type Result struct {
	// Names holds the package names in ledger insertion order.
	Names []string

	// Paths maps each package name to its absolute resolution target.
	Paths map[string]string

	// Fingerprint is an xxhash digest over every manifest read during the
	// scan, in scan order. Two runs over byte-identical manifests produce the
	// same fingerprint, so callers can cache a verified workspace state.
	Fingerprint uint64
}
