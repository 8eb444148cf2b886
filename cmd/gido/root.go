package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/maeumgido/internal/adapters/share"
	"github.com/jsamuelsen/maeumgido/internal/app"
	"github.com/jsamuelsen/maeumgido/internal/platform/bootstrap"
	"github.com/jsamuelsen/maeumgido/internal/platform/config"
	"github.com/jsamuelsen/maeumgido/internal/platform/logging"
	"github.com/jsamuelsen/maeumgido/internal/ports"
)

// sharerFactory builds the native sharer and the ordered copiers.
type sharerFactory func(cfg *config.Config, out io.Writer, manual bool) (ports.Sharer, []ports.Sharer)

// cli holds flag values and the services built in PersistentPreRunE.
type cli struct {
	profile  string
	logLevel string

	out    io.Writer
	errOut io.Writer

	sharers sharerFactory

	cfg             *config.Config
	logger          *slog.Logger
	recommendations *app.RecommendationService
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut, sharers: defaultSharers}

	return c.rootCmd()
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gido",
		Short: "마음기도: recommend a prayer for how you feel and where you are",
		Long: `gido recommends up to three prayers for an emotion and a situation.

Leave a facet empty to mean "all". The first result is the featured prayer,
which share and copy act on.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetOut(c.out)
	root.SetErr(c.errOut)

	root.PersistentFlags().StringVar(&c.profile, "profile", bootstrap.DefaultProfile, "config profile (configs/<profile>.yaml)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")

	root.AddCommand(
		c.facetsCmd(),
		c.recommendCmd(),
		c.listCmd(),
		c.showCmd(),
		c.shareCmd(app.ActionShare),
		c.shareCmd(app.ActionCopy),
	)

	return root
}

// setup loads config, logging and the catalog once per invocation.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := bootstrap.Config(c.profile)
	if err != nil {
		return err
	}

	logCfg := bootstrap.LoggingConfig(cfg)
	logCfg.Format = "pretty"
	logCfg.Level = c.logLevel

	c.cfg = cfg
	c.logger = logging.NewWithWriter(logCfg, c.errOut)

	catalog, err := bootstrap.Catalog(cmd.Context(), cfg, c.logger)
	if err != nil {
		return err
	}

	c.recommendations = app.NewRecommendationService(app.RecommendationServiceConfig{
		Catalog:   catalog,
		PublicURL: cfg.Share.PublicURL,
		Logger:    c.logger,
	})

	return nil
}

func defaultSharers(cfg *config.Config, out io.Writer, manual bool) (ports.Sharer, []ports.Sharer) {
	if manual {
		return nil, []ports.Sharer{share.NewManual(out)}
	}

	return share.NewNative(cfg.Share.Command, cfg.Share.Args),
		[]ports.Sharer{share.NewClipboard(), share.NewManual(out)}
}
