package actionq

import (
	"fmt"

	"github.com/arthur-debert/actionq/pkg/actions"
	"github.com/arthur-debert/actionq/pkg/document"
	"github.com/arthur-debert/actionq/pkg/errors"
	"github.com/arthur-debert/actionq/pkg/logging"
	"github.com/arthur-debert/actionq/pkg/output"
	"github.com/arthur-debert/actionq/pkg/render"
	"github.com/spf13/cobra"
)

func newBuildCmd(opts *globalOptions) *cobra.Command {
	var (
		format    string
		outFile   string
		force     bool
		docFormat string
	)

	cmd := &cobra.Command{
		Use:     "build <document>",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.build")
			done := logging.LogOperationStart(logger, "build")
			defer done()

			q, err := buildDocument(args[0], docFormat, opts)
			if err != nil {
				return err
			}

			env, err := q.Serialize()
			if err != nil {
				return err
			}

			if outFile != "" {
				return writeEnvelope(cmd, opts, env, q.Len(), outFile, force)
			}

			r, err := render.NewRenderer(cmd.OutOrStdout(), opts.renderOptions(format))
			if err != nil {
				return err
			}
			return r.Render(env)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringVarP(&outFile, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().StringVar(&docFormat, "doc-format", "", MsgFlagDocFormat)

	return cmd
}

// buildDocument loads path and builds its queue, enforcing envelope.allow_empty
func buildDocument(path, docFormat string, opts *globalOptions) (*actions.Queue, error) {
	if docFormat == "" {
		docFormat = opts.cfg.Document.DefaultFormat
	}
	if !document.IsFormat(docFormat) {
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported document format %q", docFormat).
			WithDetail("valid", document.Formats)
	}

	doc, err := document.LoadWithFormat(path, docFormat)
	if err != nil {
		return nil, err
	}

	q, err := document.Build(doc)
	if err != nil {
		return nil, err
	}

	if q.IsEmpty() && !opts.cfg.Envelope.AllowEmpty {
		return nil, errors.Newf(errors.ErrEmptyChain, MsgErrEmptyChain, path).
			WithDetail("path", path)
	}
	return q, nil
}

func writeEnvelope(cmd *cobra.Command, opts *globalOptions, env actions.Envelope, depth int, target string, force bool) error {
	w := output.NewWriter(opts.dryRun).
		WithModes(opts.cfg.FileMode(), opts.cfg.DirMode()).
		EnableForce(force)

	ops, err := w.WriteEnvelope(cmd.Context(), target, env)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.dryRun {
		fmt.Fprintln(out, MsgOperationsTitle)
		for _, op := range ops {
			fmt.Fprintf(out, MsgOperationItem, op)
		}
		fmt.Fprintln(out, MsgDryRunNotice)
		return nil
	}

	if len(ops) == 1 && ops[0].Kind == output.OpUnchanged {
		fmt.Fprintf(out, MsgEnvelopeUnchanged, target)
		return nil
	}
	fmt.Fprintf(out, MsgWroteEnvelope, depth, target)
	return nil
}
