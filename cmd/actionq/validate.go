package actionq

import (
	"fmt"

	"github.com/arthur-debert/actionq/pkg/errors"
	"github.com/arthur-debert/actionq/pkg/logging"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *globalOptions) *cobra.Command {
	var docFormat string

	cmd := &cobra.Command{
		Use:     "validate <document...>",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.validate")
			out := cmd.OutOrStdout()

			failed := 0
			for _, path := range args {
				q, err := buildDocument(path, docFormat, opts)
				if err != nil {
					failed++
					logger.Debug().Err(err).Str("path", path).Msg("Document failed validation")
					fmt.Fprintf(out, MsgValidFail, path, describeError(err))
					continue
				}
				fmt.Fprintf(out, MsgValidOK, path, q.Len())
			}

			if failed > 0 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrValidateFailed, failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&docFormat, "doc-format", "", MsgFlagDocFormat)

	return cmd
}

// describeError formats an error as "CODE at step: message"
func describeError(err error) string {
	code := errors.GetErrorCode(err)
	if step, ok := errors.GetErrorDetails(err)["step"]; ok {
		return fmt.Sprintf("%s at %v: %v", code, step, err)
	}
	return fmt.Sprintf("%s: %v", code, err)
}
