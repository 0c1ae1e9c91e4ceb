package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/motodash/internal/action"
	"github.com/five82/motodash/internal/app"
	"github.com/five82/motodash/internal/config"
	"github.com/five82/motodash/internal/moto"
	"github.com/five82/motodash/internal/radial"
	"github.com/five82/motodash/internal/stub"
	"github.com/five82/motodash/internal/ui"
)

type rootFlags struct {
	configPath string
	prefsPath  string
	apiBind    string
	poll       int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "motodash",
		Short:         "Terminal dashboard for the moto-pi device API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  motodash

  # One-shot reads and commands
  motodash status network
  motodash trigger unlock

  # Serve canned device endpoints for development
  motodash stub --bind 127.0.0.1:8080
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), flags.appOptions())
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/motodash/config.toml)")
	cmd.PersistentFlags().StringVar(&flags.apiBind, "api", "", "device API address, overrides api_bind")
	cmd.Flags().StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/motodash/prefs.toml)")
	cmd.Flags().IntVar(&flags.poll, "poll", 0, "header refresh interval in seconds")

	cmd.AddCommand(
		newStatusCmd(flags),
		newTriggerCmd(flags),
		newStubCmd(flags),
		newMenuCmd(),
	)
	return cmd
}

func (f *rootFlags) appOptions() app.Options {
	return app.Options{
		ConfigPath: f.configPath,
		PrefsPath:  f.prefsPath,
		PollEvery:  f.poll,
		APIBind:    f.apiBind,
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(flags *rootFlags) (config.Config, error) {
	return app.LoadConfig(app.Options{ConfigPath: flags.configPath, APIBind: flags.apiBind})
}

func newClient(flags *rootFlags) (*moto.Client, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	client, err := moto.NewClient(cfg.APIBind)
	if err != nil {
		return nil, fmt.Errorf("init device client: %w", err)
	}
	return client, nil
}

func newStatusCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "status [hal|network|motorcycle|gps]...",
		Short:     "Read component status once",
		ValidArgs: []string{"hal", "network", "motorcycle", "gps"},
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(flags)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				for _, sub := range moto.Subsystems {
					args = append(args, string(sub))
				}
			}

			out := cmd.OutOrStdout()
			failed := false
			for _, name := range args {
				if strings.EqualFold(strings.TrimSpace(name), "gps") {
					st := action.NewGPS().Await(cmd.Context(), "GPS", action.ReadGPS(client))
					if st.Phase != action.Succeeded {
						fmt.Fprintf(out, "GPS: %s\n", st.ErrorMessage)
						failed = true
						continue
					}
					fmt.Fprintln(out, st.Result.String())
					continue
				}

				sub, err := moto.ParseSubsystem(name)
				if err != nil {
					return err
				}
				st := action.NewStatus().Await(cmd.Context(), sub.Title(), action.ReadStatus(client, sub))
				fmt.Fprintf(out, "%s Components\n", sub.Title())
				if st.Phase != action.Succeeded {
					fmt.Fprintf(out, "  %s\n", st.ErrorMessage)
					failed = true
					continue
				}
				for _, e := range *st.Result {
					fmt.Fprintf(out, "  %s: %s\n", e.Device, strings.ToUpper(e.Status))
				}
			}
			if failed {
				return errors.New(action.StatusFailure)
			}
			return nil
		},
	}
}

func newTriggerCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "trigger <reboot|unlock|start>",
		Short:     "Send a one-shot motorcycle command",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"reboot", "unlock", "start"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := moto.ParseAction(args[0])
			if err != nil {
				return err
			}
			client, err := newClient(flags)
			if err != nil {
				return err
			}

			st := action.NewAction().Await(cmd.Context(), a.Title(), action.Trigger(client, a))
			if st.Phase != action.Succeeded {
				return errors.New(st.ErrorMessage)
			}
			fmt.Fprintln(cmd.OutOrStdout(), *st.Result)
			return nil
		},
	}
}

func newStubCmd(flags *rootFlags) *cobra.Command {
	var bind string
	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Serve canned device endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			addr := cfg.StubBind
			if strings.TrimSpace(bind) != "" {
				addr = bind
			}
			return stub.Serve(cmd.Context(), addr, stub.Defaults())
		},
	}
	cmd.Flags().StringVar(&bind, "bind", "", "listen address, overrides stub_bind")
	return cmd
}

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu [value]...",
		Short: "Print the radial menu as SVG",
		Long:  "Print the dashboard's radial menu as SVG, or a menu of the given values.",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := ui.MenuItems()
			if len(args) > 0 {
				items = make([]radial.Item, 0, len(args))
				for _, v := range args {
					items = append(items, radial.Item{Value: v, Label: v})
				}
			}
			g := radial.DefaultGeometry
			fmt.Fprintln(cmd.OutOrStdout(), g.SVG(g.Layout(items)))
			return nil
		},
	}
}
