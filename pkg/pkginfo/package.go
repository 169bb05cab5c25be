package pkginfo

// Package is the normalized, fully derived record for one SlackBuilds
// package. It is constructed on demand by the Loader and never persisted.
type Package struct {
	// Name is the bare package name (PRGNAM).
	Name string
	// Category is the repository category the package lives in.
	Category string
	// Identifier is the canonical "category/name" string.
	Identifier string

	// Directory is the absolute path of the descriptor directory. The
	// remaining paths are derived from it by fixed-name convention.
	Directory       string
	InfoFile        string
	BuildScriptFile string
	SlackDescFile   string
	ReadmeFile      string

	// Version is opaque; it is only ever compared for equality.
	Version  string
	Homepage string

	MaintainerName  string
	MaintainerEmail string

	// DownloadURLs and Checksums are parallel: Checksums[i] is the expected
	// MD5 of DownloadURLs[i]. They hold the generic lists as parsed.
	DownloadURLs []string
	Checksums    []string

	// ArchDownloadURLs/ArchChecksums hold the host architecture's override
	// lists when the descriptor defines them.
	ArchDownloadURLs []string
	ArchChecksums    []string

	// SourceURLs/SourceChecksums are the effective lists the pipeline
	// downloads: the architecture override when present, the generic lists
	// otherwise, and empty when the package is unsupported on this host.
	SourceURLs      []string
	SourceChecksums []string

	// UnsupportedOnArch is true exactly when the host architecture's
	// download list consists solely of the unsupported sentinel.
	UnsupportedOnArch bool

	// Requires lists dependency short names in declared order. The
	// %README% marker never appears here; its presence in the raw
	// descriptor sets HasExtraUndeclaredDeps instead.
	Requires               []string
	HasExtraUndeclaredDeps bool
}
