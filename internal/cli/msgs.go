package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Build link trees from file metadata"
	MsgBuildShort     = "Build the link trees"
	MsgWatchShort     = "Build, then rebuild whenever the storage changes"
	MsgGenConfigShort = "Print or write a starter configuration file"
	MsgVersionShort   = "Print version information"
	MsgVersionLong    = "Print detailed version information including commit hash and build date"

	MsgBuildLong = `Build walks the storage roots, resolves each file's metadata and creates
one link per configured link path under the link root. Directories that
the link paths call for are created on demand.`

	MsgBuildExample = `  linkfarm build
  linkfarm build --dry-run
  linkfarm build --storage-root /music --link-path artist/year --link-path genre`

	MsgWatchLong = `Watch performs a full build, then keeps watching the storage roots and
rebuilds after changes settle. Existing links are skipped on rebuilds,
whatever on_existing says, so every pass is idempotent. Stop with Ctrl-C.`

	MsgGenConfigLong = `Print an annotated configuration file with every setting commented out.
With --write the file is saved instead of printed; an existing file is
never overwritten.`

	MsgGenConfigExample = `  linkfarm gen-config                  # Print to stdout
  linkfarm gen-config -w               # Write ./linkfarm.toml
  linkfarm gen-config -w conf/lf.toml  # Write somewhere else`

	// Status messages
	MsgDryRunNotice = "DRY RUN MODE - No changes were made"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file to use instead of discovery"
	MsgFlagDryRun      = "Preview the operations without touching the filesystem"
	MsgFlagStorageRoot = "Storage root to scan (repeatable)"
	MsgFlagLinkRoot    = "Directory to build the link trees under"
	MsgFlagLinkPath    = "Link path template, e.g. artist/year (repeatable)"
	MsgFlagHardlink    = "Create hard links instead of symlinks"
	MsgFlagOnExisting  = "Policy for existing destinations: fail or skip"
	MsgFlagSource      = "Metadata source: yaml, xml, index or auto"
	MsgFlagDebounce    = "How long changes must settle before a rebuild"
	MsgFlagWrite       = "Write the config file instead of printing it"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
