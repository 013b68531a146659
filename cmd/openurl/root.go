package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/openurl-core/browser"
	"github.com/jongio/openurl-core/cliout"
	"github.com/jongio/openurl-core/config"
	"github.com/jongio/openurl-core/logutil"
	"github.com/jongio/openurl-core/notify"
	"github.com/jongio/openurl-core/urlutil"
	"github.com/jongio/openurl-core/version"
)

type rootOptions struct {
	params  []string
	target  string
	timeout time.Duration
	noWait  bool
	notify  bool
	output  string
	debug   bool
}

// openResult is the JSON shape emitted with --output json.
type openResult struct {
	URL    string `json:"url"`
	Target string `json:"target"`
	Opened bool   `json:"opened"`
}

func newRootCommand(info *version.Info) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "openurl <url>",
		Short: "Open a URL in the system default browser",
		Long: `Open a URL in the system default browser.

The URL must use http:// or https:// (a bare host defaults to https://).
Query parameters given with -p are sanitized and appended; characters
that are unsafe for the platform's launch mechanism are stripped.`,
		Example: `  openurl https://example.com
  openurl example.com -p q="hello world" -p page=2
  openurl https://example.com --target none --output json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(opts.debug, opts.output == "json")
			return cliout.SetFormat(opts.output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd.Flags(), opts); err != nil {
				return err
			}
			return runOpen(cmd.Context(), args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.params, "param", "p", nil, "Query parameter in key=value form (repeatable)")
	flags.StringVarP(&opts.target, "target", "t", string(browser.TargetSystem),
		fmt.Sprintf("Browser target (%s)", browser.FormatValidTargets()))
	flags.DurationVar(&opts.timeout, "timeout", browser.DefaultTimeout, "Timeout for the launch command")
	flags.BoolVar(&opts.noWait, "no-wait", false, "Do not wait for the opener process to exit")
	flags.BoolVar(&opts.notify, "notify", false, "Raise a desktop notification if the launch fails")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "default", "Output format (default, json)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(version.NewCommand(info, &opts.output))

	return cmd
}

// applyConfig fills option values from the config file for every flag the
// user did not set explicitly. Flags always win over file values.
func applyConfig(flags *pflag.FlagSet, opts *rootOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if !flags.Changed("target") {
		opts.target = cfg.Target
	}
	if !flags.Changed("timeout") {
		opts.timeout = time.Duration(cfg.Timeout)
	}
	if !flags.Changed("no-wait") {
		opts.noWait = !cfg.Wait
	}
	if !flags.Changed("notify") {
		opts.notify = cfg.Notify
	}
	if !flags.Changed("output") {
		opts.output = cfg.Output
		// The format was already set from the flag default in PersistentPreRunE.
		if err := cliout.SetFormat(opts.output); err != nil {
			return err
		}
	}

	return nil
}

// parseParams converts repeated key=value flags into the launcher's
// parameter map. Repeated keys are rejected here so the error names the
// flag rather than surfacing later as a sanitizer collision.
func parseParams(params []string) (map[any]any, error) {
	if len(params) == 0 {
		return nil, nil
	}

	out := make(map[any]any, len(params))
	for _, p := range params {
		key, value, found := strings.Cut(p, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --param %q: expected key=value", p)
		}
		if _, exists := out[key]; exists {
			return nil, fmt.Errorf("%w: --param key %q given twice", urlutil.ErrKeyCollision, key)
		}
		out[key] = value
	}

	return out, nil
}

func runOpen(ctx context.Context, rawURL string, opts *rootOptions) error {
	log := logutil.NewLogger("cli")

	if !browser.IsValid(opts.target) {
		return fmt.Errorf("invalid browser target %q (valid targets: %s)", opts.target, browser.FormatValidTargets())
	}

	params, err := parseParams(opts.params)
	if err != nil {
		return err
	}

	// Only bare hosts get the https:// default; an explicit scheme, even a
	// wrong one, is passed through so the sanitizer rejects it by name.
	url := rawURL
	if !strings.Contains(rawURL, "://") {
		url = urlutil.NormalizeScheme(rawURL, "https")
	}
	log.Debug("opening url", "url", url, "target", opts.target, "wait", !opts.noWait)

	launcher := browser.New(
		browser.WithTarget(browser.Target(opts.target)),
		browser.WithTimeout(opts.timeout),
		browser.WithWait(!opts.noWait),
	)
	defer func() { _ = launcher.Close() }()

	ok, err := launcher.OpenURL(ctx, url, params)
	if err != nil {
		notifyFailure(ctx, opts, url)
		return err
	}

	result := openResult{
		URL:    url,
		Target: browser.GetTargetDisplayName(browser.Target(opts.target)),
		Opened: ok,
	}

	return cliout.Print(result, func() {
		if !ok {
			cliout.Warning("Browser may not have opened for %s", url)
			return
		}
		cliout.Success("Opened %s in %s", url, result.Target)
	})
}

// notifyFailure raises a desktop toast when --notify is set. Notification
// errors are logged, never surfaced: the launch error is the one the user
// needs to see.
func notifyFailure(ctx context.Context, opts *rootOptions, url string) {
	if !opts.notify {
		return
	}

	n := notify.New(notify.Config{AppName: "openurl"})
	err := n.Send(ctx, notify.Notification{
		Title:   "openurl",
		Message: fmt.Sprintf("Could not open %s in your browser", url),
	})
	if err != nil {
		logutil.Debug("failed to send notification", "error", err)
	}
}
