package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/raykavin/coinstats"
	"github.com/raykavin/coinstats/pkg/chart"
	"github.com/raykavin/coinstats/pkg/config"
	"github.com/raykavin/coinstats/pkg/core"
	"github.com/raykavin/coinstats/pkg/dataset"
	"github.com/raykavin/coinstats/pkg/plot"
	"github.com/raykavin/coinstats/pkg/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Command line flags
var (
	configFile string
	outputFile string
	format     string
	width      int
	height     int
)

func main() {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:          "coinstats",
		Short:        "Cryptocurrency price, market cap and volume charts",
		Version:      coinstats.Version,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "YAML config file")
	flags.StringP("data", "d", "", "Coins JSON file or URL (e.g. data/coins.json)")
	flags.String("coin", "", "Coin to chart (e.g. bitcoin)")
	flags.StringP("metric", "m", "", "Metric: price_usd, market_cap or 24h_vol")
	flags.String("start", "", "Interval start (e.g. 05/12/2013)")
	flags.String("end", "", "Interval end (e.g. 31/10/2017)")

	for key, flag := range map[string]string{
		"data":           "data",
		"default_coin":   "coin",
		"default_metric": "metric",
		"start":          "start",
		"end":            "end",
	} {
		must(v.BindPFlag(key, flags.Lookup(flag)))
	}

	rootCmd.AddCommand(
		buildServeCmd(v),
		buildRenderCmd(v),
		buildPlotCmd(v),
		buildSummaryCmd(v),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildServeCmd(v *viper.Viper) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive chart page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, collection, err := load(cmd.Context(), v)
			if err != nil {
				return err
			}

			options := []plot.Option{
				plot.WithPort(cfg.Port),
				plot.WithDefaults(cfg.Selection(collection)),
				plot.WithCORSOrigins(cfg.CORSOrigins...),
				plot.WithRenderer(render.NewImageRenderer(render.WithSize(cfg.ChartWidth, cfg.ChartHeight))),
			}
			if cfg.Debug {
				options = append(options, plot.WithDebug())
			}

			server, err := plot.NewServer(collection, coinstats.DefaultLog, options...)
			if err != nil {
				return err
			}
			return server.Start(cmd.Context())
		},
	}

	serveCmd.Flags().IntP("port", "p", 0, "HTTP port (default 8080)")
	bindFlag(v, "port", serveCmd)

	return serveCmd
}

func buildRenderCmd(v *viper.Viper) *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the selected chart to an SVG or PNG file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, collection, err := load(cmd.Context(), v)
			if err != nil {
				return err
			}

			plan, err := chart.Redraw(collection, cfg.Selection(collection))
			if err != nil {
				return err
			}

			imageFormat := render.Format(format)
			if imageFormat != render.FormatSVG && imageFormat != render.FormatPNG {
				return fmt.Errorf("unsupported format %q", format)
			}

			renderer := render.NewImageRenderer(render.WithSize(cfg.ChartWidth, cfg.ChartHeight))
			if err := writeChart(outputFile, renderer, plan, imageFormat); err != nil {
				return err
			}

			coinstats.DefaultLog.Infof("Chart of %s written to %s", plan.Coin, outputFile)
			return nil
		},
	}

	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (e.g. ./bitcoin.svg)")
	renderCmd.Flags().StringVarP(&format, "format", "f", "svg", "Image format: svg or png")
	must(renderCmd.MarkFlagRequired("output"))

	return renderCmd
}

func buildPlotCmd(v *viper.Viper) *cobra.Command {
	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw the selected chart in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, collection, err := load(cmd.Context(), v)
			if err != nil {
				return err
			}

			plan, err := chart.Redraw(collection, cfg.Selection(collection))
			if err != nil {
				return err
			}

			graph, err := render.ASCII(plan, width, height)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), graph)
			return nil
		},
	}

	plotCmd.Flags().IntVar(&width, "width", 80, "Chart width in columns")
	plotCmd.Flags().IntVar(&height, "height", 20, "Chart height in rows")

	return plotCmd
}

func buildSummaryCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print points, dates and price range of every coin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, collection, err := load(cmd.Context(), v)
			if err != nil {
				return err
			}

			render.Summary(cmd.OutOrStdout(), collection)
			return nil
		},
	}
}

// load reads the configuration and the coins document it points to
func load(ctx context.Context, v *viper.Viper) (*config.Config, core.SeriesCollection, error) {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return nil, core.SeriesCollection{}, err
	}

	collection, err := coinstats.Load(ctx, cfg.Data, dataset.WithRetries(cfg.FetchRetries))
	if err != nil {
		return nil, core.SeriesCollection{}, err
	}

	return cfg, collection, nil
}

// writeChart renders into memory first so a failed render leaves no file
func writeChart(path string, renderer *render.ImageRenderer, plan chart.RenderPlan, format render.Format) error {
	buffer := bytes.NewBuffer(nil)
	if err := renderer.Render(buffer, plan, format); err != nil {
		return err
	}

	if err := os.WriteFile(path, buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func bindFlag(v *viper.Viper, key string, cmd *cobra.Command) {
	must(v.BindPFlag(key, cmd.Flags().Lookup(key)))
}

// must panics on command wiring errors, which are programming mistakes
func must(err error) {
	if err != nil {
		panic(err)
	}
}
