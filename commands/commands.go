// Package commands implements the siteconf command line interface.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bep/clocks"
	"github.com/nemesisdb/siteconf/common/loggers"
	"github.com/nemesisdb/siteconf/common/paths"
	"github.com/nemesisdb/siteconf/config"
	"github.com/nemesisdb/siteconf/siteconfig"
	"github.com/nemesisdb/siteconf/sitefs"
	"github.com/nemesisdb/siteconf/sites"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "SITECONF"

// Execute runs the siteconf CLI with args and returns the exit code.
func Execute(args []string) int {
	c := newCommandeer(os.Stdout, os.Stderr)
	cmd := c.newRootCmd()
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(c.stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

// commandeer holds what the commands share. It is set up by the root
// command's PersistentPreRunE.
type commandeer struct {
	v *viper.Viper

	stdout io.Writer
	stderr io.Writer
	clock  clocks.Clock

	logger loggers.Logger
	fs     *sitefs.Fs
	loader *config.Loader
	files  []string
}

func newCommandeer(stdout, stderr io.Writer) *commandeer {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &commandeer{
		v:      v,
		stdout: stdout,
		stderr: stderr,
		clock:  clocks.System(),
	}
}

func (c *commandeer) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "siteconf",
		Short: "siteconf validates and exports documentation site configs",
		Long: `siteconf reads a declarative documentation site config (TOML, YAML, JSON,
JSONC or XML), validates every profile in it and exports the resolved
config for the site generator.

With no --config, site.{toml,yaml,yml,json,jsonc,xml} in the source
directory is used.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
	}

	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)

	flags := cmd.PersistentFlags()
	flags.StringSliceP("config", "c", nil, "config file(s) to use (default is site.{toml,yaml,yml,json,jsonc,xml})")
	flags.StringP("profile", "p", "", "resolve only this profile")
	flags.StringP("source", "s", "", "filesystem path to read files relative from")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	c.bindFlags(cmd, map[string]string{
		"config":    "config",
		"profile":   "profile",
		"source":    "source",
		"log-level": "logLevel",
	})

	cmd.AddCommand(
		c.newCheckCmd(),
		c.newExportCmd(),
		c.newProfilesCmd(),
		c.newGetCmd(),
	)

	return cmd
}

// bindFlags binds the flags of cmd, by name, to viper keys, so each can also
// be set through the environment, e.g. SITECONF_LOGLEVEL.
func (c *commandeer) bindFlags(cmd *cobra.Command, keys map[string]string) {
	for name, key := range keys {
		f := cmd.PersistentFlags().Lookup(name)
		if f == nil {
			f = cmd.Flags().Lookup(name)
		}
		if err := c.v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	}
}

func (c *commandeer) init() error {
	threshold, err := loggers.ParseLevel(c.v.GetString("logLevel"))
	if err != nil {
		return err
	}
	c.logger = loggers.New(threshold, c.stderr)

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	if source := c.v.GetString("source"); source != "" {
		workingDir = paths.AbsPathify(workingDir, source)
	}
	c.fs = sitefs.NewDefault(workingDir, c.v.GetString("destination"))
	c.loader = config.NewLoader(c.fs.Source)

	for _, filename := range c.v.GetStringSlice("config") {
		c.files = append(c.files, c.fs.AbsPath(filename))
	}
	if len(c.files) == 0 {
		filename, err := config.FindConfigFile(c.fs.Source, c.fs.WorkingDir)
		if err != nil {
			return err
		}
		c.files = []string{filename}
	}
	for _, filename := range c.files {
		c.logger.Debugf("Using config file: %s", filename)
	}

	return nil
}

// resolve resolves the configured files and logs every failure.
func (c *commandeer) resolve(ctx context.Context) (*sites.Result, error) {
	result, err := sites.Resolve(ctx, c.loader, c.files, c.v.GetString("profile"))
	if err != nil {
		return nil, err
	}
	for _, o := range result.Outcomes {
		if o.Err != nil {
			c.logOutcomeErr(o)
		}
	}
	return result, nil
}

// logOutcomeErr logs one line per violation.
func (c *commandeer) logOutcomeErr(o sites.Outcome) {
	name := c.displayName(o)
	var cerr *siteconfig.ConfigError
	if errors.As(o.Err, &cerr) {
		for _, err := range cerr.Errors {
			c.logger.Errorf("%s: %s", name, err)
		}
		return
	}
	for _, err := range unwrapJoined(o.Err) {
		c.logger.Errorf("%s: %s", name, err)
	}
}

func unwrapJoined(err error) []error {
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		return u.Unwrap()
	}
	return []error{err}
}

// displayFile returns filename relative to the working dir when it is below it.
func (c *commandeer) displayFile(filename string) string {
	if rel, err := filepath.Rel(c.fs.WorkingDir, filename); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return filename
}

func (c *commandeer) displayName(o sites.Outcome) string {
	if o.Profile == "" {
		return c.displayFile(o.File)
	}
	return fmt.Sprintf("%s [%s]", c.displayFile(o.File), o.Profile)
}

func failedErr(r *sites.Result) error {
	if r.Failed() == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d profiles failed", r.Failed(), len(r.Outcomes))
}
