package scrpatch

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Build patched game scripts from vanilla templates"
	MsgBuildShort      = "Patch every planned script and write it"
	MsgPatchShort      = "Print one patched script"
	MsgTemplatesShort  = "List script targets and their templates"
	MsgInitShort       = "Write a settings file"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice  = "DRY RUN MODE - nothing was written"
	MsgSettingsSaved = "Wrote settings to %s"

	// Error messages
	MsgErrBuildFailed = "%d of %d scripts failed"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Settings file (default ./scrpatch.toml, then $XDG_CONFIG_HOME/scrpatch/scrpatch.toml)"
	MsgFlagNoConfig  = "Ignore settings files; use defaults, environment and --set only"
	MsgFlagSet       = "Override a setting, key=value (repeatable)"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagTemplates = "Directory holding the vanilla .scr templates"
	MsgFlagOut       = "Directory the scripts/ tree is written under"
	MsgFlagJobs      = "Number of scripts patched at once"
	MsgFlagDryRun    = "Patch in memory without writing or removing files"
	MsgFlagNoPrune   = "Keep outputs of scripts the settings no longer select"
	MsgFlagCommented = "Write every default commented out"
	MsgFlagForce     = "Overwrite an existing settings file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/build-example.txt
	msgBuildExampleRaw string
	MsgBuildExample    = strings.TrimRight(msgBuildExampleRaw, "\n")

	//go:embed msgs/patch-long.txt
	msgPatchLongRaw string
	MsgPatchLong    = strings.TrimSpace(msgPatchLongRaw)

	//go:embed msgs/patch-example.txt
	msgPatchExampleRaw string
	MsgPatchExample    = strings.TrimRight(msgPatchExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
