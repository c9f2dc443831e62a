package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/nemesisdb/siteconf/helpers"
	"github.com/spf13/cobra"
)

func (c *commandeer) newProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the profiles of the site config",
		Long: `List the profiles of the site config with the keys each one overrides
and the fingerprint of its resolved config. Profiles with the same
fingerprint resolve to the same site.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.resolve(cmd.Context())
			if err != nil {
				return err
			}

			title := helpers.GetTitleFunc(c.v.GetString("titleCaseStyle"))

			w := tabwriter.NewWriter(c.stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tPROFILE\tNAME\tOVERRIDES\tFINGERPRINT")
			for _, o := range result.Outcomes {
				if o.Profile == "" {
					continue
				}
				overrides := strings.Join(o.Overrides, ",")
				if overrides == "" {
					overrides = "-"
				}
				fingerprint := "invalid"
				if o.Err == nil {
					f, err := o.Config.Fingerprint()
					if err != nil {
						return err
					}
					fingerprint = fmt.Sprintf("%016x", f)
				}
				name := title(strings.ReplaceAll(o.Profile, "-", " "))
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.displayFile(o.File), o.Profile, name, overrides, fingerprint)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			return failedErr(result)
		},
	}

	cmd.Flags().String("title-case-style", "AP", "how profile names are title cased (AP, Chicago or Go)")
	c.bindFlags(cmd, map[string]string{"title-case-style": "titleCaseStyle"})

	return cmd
}
