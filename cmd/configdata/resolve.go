package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jumppad-labs/configdata"
	"github.com/jumppad-labs/configdata/logger"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	foundStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("70"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

type resolveOptions struct {
	configFile string
	locations  []string
	profiles   []string
	logLevel   string
	contents   bool
}

func newResolveCommand(out io.Writer) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the config data resources for the configured locations",
		Example: `  configdata resolve --config loader.hcl
  configdata resolve --location "classpath:/config/" --location "optional:file:./config/" --profile dev`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, out, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Loader configuration file")
	cmd.Flags().StringArrayVarP(&opts.locations, "location", "l", nil, "Location to resolve, replaces the configured locations")
	cmd.Flags().StringSliceVarP(&opts.profiles, "profile", "p", nil, "Profiles to resolve, replaces the configured profiles")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.contents, "contents", false, "Print the contents of every resource")

	return cmd
}

func runResolve(cmd *cobra.Command, out io.Writer, opts *resolveOptions) error {
	lc := configdata.DefaultLoaderConfig()
	if opts.configFile != "" {
		var err error
		lc, err = configdata.ParseLoaderConfig(opts.configFile)
		if err != nil {
			return err
		}
	}

	if len(opts.locations) > 0 {
		lc.Locations = []configdata.LocationConfig{}
		for _, l := range opts.locations {
			lc.Locations = append(lc.Locations, configdata.LocationConfig{Value: l})
		}
	}

	if len(opts.profiles) > 0 {
		lc.Profiles = opts.profiles
	}

	if len(lc.Locations) == 0 {
		return fmt.Errorf("no locations configured, use --location or a loader configuration file")
	}

	log := logger.NewStdOutLoggerWithOptions(os.Stderr, logger.ParseLevel(opts.logLevel))

	loader, err := configdata.NewLoader(lc, log)
	if err != nil {
		return err
	}

	resources, err := loader.Load(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Resolved %d config data resources", len(resources))))

	for _, r := range resources {
		if r.EmptyDirectory() {
			fmt.Fprintf(out, "%s %s\n", emptyStyle.Render("∅"), r.String())
			continue
		}

		fmt.Fprintf(out, "%s %s %s\n", foundStyle.Render("✓"), r.String(), dimStyle.Render(r.Reference().String()))

		if opts.contents {
			if err := printContents(out, r); err != nil {
				return err
			}
		}
	}

	return nil
}

func printContents(out io.Writer, r *configdata.StandardResource) error {
	rc, err := r.Resource().Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("unable to read %s: %w", r, err)
	}

	fmt.Fprintln(out)

	return nil
}
