package commands

import (
	"fmt"

	"github.com/nemesisdb/siteconf/config"
	"github.com/nemesisdb/siteconf/minifiers"
	"github.com/nemesisdb/siteconf/publisher"
	"github.com/spf13/cobra"
)

func (c *commandeer) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the resolved config of every profile as JSON",
		Long: `Write the resolved config of every profile to
<destination>/<profile>/site.json, where the site generator picks it up.
Nothing is written if any profile is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.export(cmd)
		},
	}

	cmd.Flags().StringP("destination", "d", "", "filesystem path to write files to (default is build)")
	cmd.Flags().Bool("minify", false, "minify the written JSON")
	c.bindFlags(cmd, map[string]string{
		"destination": "destination",
		"minify":      "minify",
	})

	return cmd
}

func (c *commandeer) export(cmd *cobra.Command) error {
	start := c.clock.Now()

	result, err := c.resolve(cmd.Context())
	if err != nil {
		return err
	}
	if err := failedErr(result); err != nil {
		return err
	}

	// Profile names become directory names, so they must be unique
	// across files.
	seen := make(map[string]string)
	for _, o := range result.Outcomes {
		if other, found := seen[o.Profile]; found {
			return fmt.Errorf("profile %q is defined in both %s and %s", o.Profile, other, o.File)
		}
		seen[o.Profile] = o.File
	}

	publishers := make(map[string]publisher.DestinationPublisher)
	for _, o := range result.Outcomes {
		pub, found := publishers[o.File]
		if !found {
			if pub, err = c.newPublisher(o.File); err != nil {
				return err
			}
			publishers[o.File] = pub
		}

		target, err := publisher.PublishSite(pub, o.Profile, o.Config, c.clock, c.v.GetBool("minify"))
		if err != nil {
			return fmt.Errorf("%s: %w", c.displayName(o), err)
		}
		fmt.Fprintln(c.stdout, target)
	}

	c.logger.Infof("Exported %d profiles in %d ms", len(result.Outcomes), c.clock.Since(start).Milliseconds())

	return nil
}

// newPublisher creates a publisher using the minify settings of filename,
// with the --minify flag on top.
func (c *commandeer) newPublisher(filename string) (publisher.DestinationPublisher, error) {
	fileCfg, err := c.loader.Provider(filename)
	if err != nil {
		return publisher.DestinationPublisher{}, err
	}

	flagCfg := config.New()
	if c.v.GetBool("minify") {
		flagCfg.Set("minify", map[string]any{"minifyOutput": true})
	}

	min, err := minifiers.New(config.NewCompositeConfig(fileCfg, flagCfg))
	if err != nil {
		return publisher.DestinationPublisher{}, fmt.Errorf("%s: %w", filename, err)
	}

	return publisher.NewDestinationPublisher(c.fs.PublishDir, min), nil
}
