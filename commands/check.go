package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *commandeer) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate every profile of the site config",
		Long: `Validate every profile of the site config. Every violation found is
reported, and the command fails if any profile is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.resolve(cmd.Context())
			if err != nil {
				return err
			}
			for _, o := range result.Outcomes {
				if o.Err == nil {
					fmt.Fprintf(c.stdout, "%s: ok\n", c.displayName(o))
				}
			}
			return failedErr(result)
		},
	}
}
