// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/invowk/porter/internal/config"
	"github.com/invowk/porter/internal/issue"
	"github.com/invowk/porter/pkg/pathmap"
	"github.com/invowk/porter/pkg/porter"
	"github.com/invowk/porter/pkg/types"
)

// errRootWithoutMap is returned when ad-hoc hook flags are used without --map.
var errRootWithoutMap = errors.New("--root and the delimiter flags require --map")

// hookFlags builds an ad-hoc hook that replaces the configured ones.
type hookFlags struct {
	mapping       string
	root          string
	entrySplit    string
	keyValueSplit string
	nameSplit     string
}

func (f *hookFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mapping, "map", "", "use this mapping instead of the configured hooks")
	cmd.Flags().StringVar(&f.root, "root", "", "root namespace of the --map hook")
	cmd.Flags().StringVar(&f.entrySplit, "entry-split", "", "entry delimiter of --map (default \":\")")
	cmd.Flags().StringVar(&f.keyValueSplit, "key-value-split", "", "names/directory delimiter of --map (default \"=\")")
	cmd.Flags().StringVar(&f.nameSplit, "name-split", "", "name list delimiter of --map (default \",\")")
}

// hook returns the ad-hoc hook config, or nil when --map is not set.
func (f *hookFlags) hook() (*config.HookConfig, error) {
	if f.mapping == "" {
		if f.root != "" || f.entrySplit != "" || f.keyValueSplit != "" || f.nameSplit != "" {
			return nil, errRootWithoutMap
		}
		return nil, nil
	}
	return &config.HookConfig{
		Map:           f.mapping,
		Root:          types.ModuleName(f.root),
		EntrySplit:    types.Delimiter(f.entrySplit),
		KeyValueSplit: types.Delimiter(f.keyValueSplit),
		NameSplit:     types.Delimiter(f.nameSplit),
	}, nil
}

// mapOptions returns the mapping options for the delimiter flags that are set.
func (f *hookFlags) mapOptions() []pathmap.Option {
	var opts []pathmap.Option
	if f.entrySplit != "" {
		opts = append(opts, pathmap.WithEntrySplit(types.Delimiter(f.entrySplit)))
	}
	if f.keyValueSplit != "" {
		opts = append(opts, pathmap.WithKeyValueSplit(types.Delimiter(f.keyValueSplit)))
	}
	if f.nameSplit != "" {
		opts = append(opts, pathmap.WithNameSplit(types.Delimiter(f.nameSplit)))
	}
	return opts
}

// finder loads the configuration and builds the hook chain commands resolve
// names through. With --map, the ad-hoc hook is the only hook.
func (a *App) finder(ctx context.Context, flags *hookFlags) (*porter.Chain, *config.Config, *log.Logger, error) {
	cfg, err := a.LoadConfig(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := a.Logger(cfg)

	adhoc, err := flags.hook()
	if err != nil {
		return nil, nil, nil, err
	}
	if adhoc != nil {
		cfg.Hooks = []config.HookConfig{*adhoc}
	}

	chain, err := cfg.Chain(a.Environment(), logger)
	if err != nil {
		return nil, nil, nil, hookError(err)
	}
	logger.Debug("hooks ready", "count", chain.Len(), "config", cfg.Source)
	return chain, cfg, logger, nil
}

// hookError wraps a hook construction failure with the matching catalog issue.
func hookError(err error) error {
	return issue.NewErrorContext().
		WithOperation("build hooks").
		WithIssue(classifyError(err)).
		WithSuggestion("Run 'porter check --explain' for details").
		Wrap(err).
		BuildError()
}

// reportLoadError renders a config or hook failure.
func (a *App) reportLoadError(err error) error {
	if errors.Is(err, errRootWithoutMap) {
		return err
	}
	return a.reportError(err, types.ExitFailure)
}

// printOutcome writes one resolution line.
func (a *App) printOutcome(name types.ModuleName, out porter.Outcome) {
	switch out.Kind {
	case porter.OutcomeDirectory:
		line := fmt.Sprintf("%s -> %s", NameStyle.Render(string(name)), out.Location)
		if out.Candidate != name {
			line += SubtitleStyle.Render(fmt.Sprintf(" (as %s)", out.Candidate))
		}
		fmt.Fprintf(a.stdout, "%s %s\n", successIcon, line)
	case porter.OutcomeVirtualNamespace:
		fmt.Fprintf(a.stdout, "%s %s -> %s\n", successIcon, NameStyle.Render(string(name)), VirtualStyle.Render("virtual namespace"))
	default:
		fmt.Fprintf(a.stdout, "%s %s: %s\n", warningIcon, NameStyle.Render(string(name)), SubtitleStyle.Render("not handled"))
	}
}
