package actionq

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/actionq/pkg/actions"
	"github.com/arthur-debert/actionq/pkg/errors"
	"github.com/arthur-debert/actionq/pkg/logging"
	"github.com/arthur-debert/actionq/pkg/render"
	"github.com/spf13/cobra"
)

func newInspectCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "inspect [envelope-file|-]",
		Short:   MsgInspectShort,
		Long:    MsgInspectLong,
		Example: MsgInspectExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.inspect")

			source := "-"
			if len(args) == 1 {
				source = args[0]
			}

			data, err := readSource(cmd, source)
			if err != nil {
				return fmt.Errorf(MsgErrReadEnvelope, err)
			}

			env, err := actions.DecodeEnvelope(data)
			if err != nil {
				return err
			}

			ropts := opts.renderOptions(format)
			if parsed, err := render.ParseFormat(ropts.Format); err == nil && parsed == render.FormatAuto {
				// The input already is an envelope; show the decoded chain instead
				ropts.Format = render.FormatChain
				if render.SupportsColor(cmd.OutOrStdout()) {
					ropts.Format = render.FormatTree
				}
			}

			logger.Debug().
				Str("source", source).
				Str("format", ropts.Format).
				Bool("empty", env.IsEmpty()).
				Msg("Inspecting envelope")

			r, err := render.NewRenderer(cmd.OutOrStdout(), ropts)
			if err != nil {
				return err
			}
			return r.Render(env)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)

	return cmd
}

// readSource reads a file, or the command's stdin for "-"
func readSource(cmd *cobra.Command, source string) ([]byte, error) {
	if source == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentLoad, "cannot read %s", source).
			WithDetail("path", source)
	}
	return data, nil
}
