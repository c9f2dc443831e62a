// Package sites resolves every profile of a set of site config files.
package sites

import (
	"context"
	"errors"
	"fmt"

	"github.com/nemesisdb/siteconf/config"
	"github.com/nemesisdb/siteconf/profiles"
	"github.com/nemesisdb/siteconf/siteconfig"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result of resolving one profile of one file. Exactly one of
// Config and Err is set. A file that could not be loaded has a single
// Outcome with an empty Profile.
type Outcome struct {
	File    string
	Profile string

	// The keys the profile overrides in the file's template.
	Overrides []string

	Config *siteconfig.SiteConfig
	Err    error
}

// Result holds the outcomes ordered by file, then profile name.
type Result struct {
	Outcomes []Outcome

	failures atomic.Int64
}

// Failed returns the number of outcomes with an error.
func (r *Result) Failed() int {
	return int(r.failures.Load())
}

// Err joins the errors of all failed outcomes, or returns nil if there are none.
func (r *Result) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = append(errs, o.wrapErr())
		}
	}
	return errors.Join(errs...)
}

func (o Outcome) wrapErr() error {
	if o.Profile == "" {
		return fmt.Errorf("%s: %w", o.File, o.Err)
	}
	return fmt.Errorf("%s [%s]: %w", o.File, o.Profile, o.Err)
}

// Resolve loads files with loader and resolves their profiles in parallel.
// If profile is not empty, only that profile is resolved, and a file without
// it gets a failed Outcome.
//
// Problems with the files themselves are reported in the Result; the
// returned error is only set when ctx is done before all work has finished.
func Resolve(ctx context.Context, loader *config.Loader, files []string, profile string) (*Result, error) {
	sets := make([]*profiles.Set, len(files))
	loadErrs := make([]error, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(config.GetNumWorkers())

	for i, filename := range files {
		i, filename := i, filename
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := loader.Load(filename)
			if err == nil {
				sets[i], err = profiles.New(p)
			}
			loadErrs[i] = err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	type job struct {
		slot int
		set  *profiles.Set
	}

	result := &Result{}
	var jobs []job
	for i, filename := range files {
		if loadErrs[i] != nil {
			result.Outcomes = append(result.Outcomes, Outcome{File: filename, Err: loadErrs[i]})
			result.failures.Inc()
			continue
		}
		names := sets[i].Names()
		if profile != "" {
			names = []string{profile}
		}
		for _, name := range names {
			jobs = append(jobs, job{slot: len(result.Outcomes), set: sets[i]})
			result.Outcomes = append(result.Outcomes, Outcome{File: filename, Profile: name})
		}
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(config.GetNumWorkers())

	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each job owns its slot.
			o := &result.Outcomes[j.slot]
			o.Overrides = j.set.Overrides(o.Profile)
			raw, err := j.set.Raw(o.Profile)
			if err == nil {
				o.Config, err = siteconfig.Resolve(raw)
			}
			if err != nil {
				o.Err = err
				result.failures.Inc()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
