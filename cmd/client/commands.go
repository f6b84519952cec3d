package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/MKhiriev/go-mod-manager/internal/client"
	"github.com/MKhiriev/go-mod-manager/internal/config"
	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/MKhiriev/go-mod-manager/models"
	"github.com/spf13/cobra"
)

// cli carries state shared by every command.
type cli struct {
	flags       *config.StructuredConfig
	metricsAddr string
	app         *client.App
	log         *logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "mod-manager",
		Short:         "Install, remove and upload Session mods",
		Version:       buildInfo(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.open(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context())
		},
	}
	root.SetVersionTemplate("{{.Version}}")

	c.flags = config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&c.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics and pipeline status on this address")

	root.AddCommand(
		c.listCmd(),
		c.installCmd(),
		c.removeCmd(),
		c.installedCmd(),
		c.uploadCmd(),
		c.loginCmd(),
		c.importCmd(),
		c.renameCmd(),
		c.hideCmd(true),
		c.hideCmd(false),
	)
	return root
}

func (c *cli) open(cmd *cobra.Command) error {
	if cmd.Name() == "help" {
		return nil
	}

	cfg, err := config.GetClientConfig(c.flags)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error getting configs:", err)
		return err
	}

	c.log = logger.NewClientLogger("mod-manager", cfg.App.LogDir)

	c.app, err = client.NewApp(cmd.Context(), cfg, client.Options{MetricsAddress: c.metricsAddr}, c.log)
	if err != nil {
		c.log.Err(err).Msg("init client app error")
		fmt.Fprintln(cmd.ErrOrStderr(), "init client app error:", err)
		return err
	}
	return nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	if err := c.app.Close(); err != nil {
		c.log.Err(err).Msg("client shutdown error")
		return err
	}
	return nil
}

// report prints result and turns a failed result into an error.
func report(cmd *cobra.Command, result models.Result, err error) error {
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}
	if !result.Success {
		fmt.Fprintln(cmd.ErrOrStderr(), result.Message)
		return errors.New(result.Message)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Message)
	return nil
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [category...]",
		Short: "List catalog entries, optionally of some categories only",
		RunE: func(cmd *cobra.Command, args []string) error {
			assets, err := c.app.List(cmd.Context(), args)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			if len(assets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No assets to show")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ASSET\tNAME\tCATEGORY\tAUTHOR")
			for _, a := range assets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.AssetName, a.Name, a.Category, a.Author)
			}
			return w.Flush()
		},
	}
}

func (c *cli) installCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <asset>",
		Short: "Download and install a catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Install(cmd.Context(), args[0])
			return report(cmd, result, err)
		},
	}
}

func (c *cli) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <asset>",
		Short: "Delete the installed files of a catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Remove(cmd.Context(), args[0])
			return report(cmd, result, err)
		},
	}
}

func (c *cli) installedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "installed",
		Short: "List installed maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MAP\tNAME\tHIDDEN\tFOLDER")
			for _, m := range c.app.Installed() {
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", m.ItemName, m.DisplayName(), m.IsHiddenByUser, m.ContentDirectory)
			}
			return w.Flush()
		},
	}
}

func (c *cli) uploadCmd() *cobra.Command {
	var req models.UploadRequest

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a new asset to the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.PathToFile = args[0]
			result, err := c.app.Upload(cmd.Context(), req)
			return report(cmd, result, err)
		},
	}

	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "Asset name")
	cmd.Flags().StringVar(&req.Author, "author", "", "Asset author, defaults to the last one used")
	cmd.Flags().StringVar(&req.Description, "description", "", "Asset description, defaults to the name")
	cmd.Flags().StringVar(&req.Category, "category", string(models.CategoryMaps), "Asset category")
	cmd.Flags().StringVarP(&req.PathToThumbnail, "thumbnail", "t", "", "Preview image path")
	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [credentials.json]",
		Short: "Authenticate to the asset store for uploads",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return report(cmd, c.app.Login(cmd.Context(), path), nil)
		},
	}
}

func (c *cli) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <folder>",
		Short: "Import a map folder from disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Import(cmd.Context(), args[0])
			return report(cmd, result, err)
		},
	}
}

func (c *cli) renameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <map file> <name>",
		Short: "Set the display name of an installed map",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Rename(args[0], args[1]); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			return nil
		},
	}
}

func (c *cli) hideCmd(hidden bool) *cobra.Command {
	use, short := "hide <map file>", "Hide an installed map from the map list"
	if !hidden {
		use, short = "unhide <map file>", "Show a hidden map in the map list again"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.SetHidden(args[0], hidden); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			return nil
		},
	}
}
