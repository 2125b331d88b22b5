package actionq

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Build and inspect client action chains"
	MsgBuildShort      = "Build a chain from a document"
	MsgInspectShort    = "Decode and render a wire envelope"
	MsgValidateShort   = "Check that chain documents build"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Status messages
	MsgDryRunNotice      = "\nDRY RUN MODE - No changes were made"
	MsgOperationsTitle   = "Planned operations:"
	MsgOperationItem     = "  ✓ %s\n"
	MsgWroteEnvelope     = "Wrote %d action(s) to %s\n"
	MsgEnvelopeUnchanged = "%s is up to date\n"
	MsgValidOK           = "ok    %s (%d actions)\n"
	MsgValidFail         = "FAIL  %s: %s\n"
	MsgVersionFormat     = "actionq version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrLoadConfig     = "failed to load configuration: %w"
	MsgErrEmptyChain     = "document %s builds an empty chain and envelope.allow_empty is false"
	MsgErrReadEnvelope   = "failed to read envelope: %w"
	MsgErrValidateFailed = "%d of %d document(s) failed validation"
	MsgErrNoCommand      = "no command specified"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview changes without executing them"
	MsgFlagConfig    = "Config file (default: .actionq.toml in the current directory)"
	MsgFlagFormat    = "Output format: auto, envelope, chain, tree, markdown, yaml"
	MsgFlagOutput    = "Write the envelope to this file instead of stdout"
	MsgFlagForce     = "Replace the output file if it exists"
	MsgFlagDocFormat = "Document format when the extension does not name one: yaml, toml, json, xml"
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

	//go:embed msgs/inspect-long.txt
	msgInspectLongRaw string
	MsgInspectLong    = strings.TrimSpace(msgInspectLongRaw)

	//go:embed msgs/inspect-example.txt
	msgInspectExampleRaw string
	MsgInspectExample    = strings.TrimRight(msgInspectExampleRaw, "\n")

	//go:embed msgs/validate-long.txt
	msgValidateLongRaw string
	MsgValidateLong    = strings.TrimSpace(msgValidateLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
