package commands

import (
	"encoding/json"
	"fmt"

	"github.com/nemesisdb/siteconf/common/maps"
	"github.com/nemesisdb/siteconf/config"
	"github.com/spf13/cobra"
)

func (c *commandeer) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print a value from the resolved config",
		Long: `Print a value from the resolved config, with defaults filled in. Nested
keys are separated by dots and matched case insensitively, e.g.
colorMode.defaultMode. Strings are printed as is, other values as JSON.

If more than one profile is resolved, each value is prefixed with the
file and profile it comes from.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			result, err := c.resolve(cmd.Context())
			if err != nil {
				return err
			}
			if err := failedErr(result); err != nil {
				return err
			}

			for _, o := range result.Outcomes {
				cfg := config.NewFrom(maps.MustToParamsAndPrepare(o.Config.ToRaw()))
				if !cfg.IsSet(key) {
					return fmt.Errorf("%s: %q is not set", c.displayName(o), key)
				}
				s, err := formatValue(cfg.Get(key))
				if err != nil {
					return err
				}
				if len(result.Outcomes) > 1 {
					fmt.Fprintf(c.stdout, "%s: %s\n", c.displayName(o), s)
				} else {
					fmt.Fprintln(c.stdout, s)
				}
			}

			return nil
		},
	}
}

func formatValue(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
