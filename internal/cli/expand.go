package cli

import (
	"strings"

	"github.com/mydehq/numrange/internal/api"
	"github.com/spf13/cobra"
)

func (a *app) expandCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "expand <summary>",
		Short: "Expand a range summary back into numbers",
		Long: `Expand a summary such as "1, 3, 6-8" into the numbers it covers and
print it again in canonical form. Reversed spans like "8-6" are accepted.
Put "--" before a summary that starts with a negative number.`,
		Example: `  numrange expand "1, 3, 6-8"
  numrange expand -o json -- "-3--1, 4"`,
		Annotations: map[string]string{noteAnnotation: negativeNote},
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []api.Option
			if strict {
				opts = append(opts, api.WithStrict())
			}

			res, err := api.Expand(cmd.Context(), strings.Join(args, ","), opts...)
			if err != nil {
				return err
			}
			return a.renderer(cmd.OutOrStdout()).Render(res)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the summary contains no numbers")
	return cmd
}
