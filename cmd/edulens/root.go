package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/edulens/edulens-api/internal/config"
	"github.com/edulens/edulens-api/internal/domain/planner"
	"github.com/edulens/edulens-api/internal/domain/textbook"
	"github.com/edulens/edulens-api/internal/platform/logger"
	"github.com/edulens/edulens-api/internal/service"
)

// cli holds the state shared by all subcommands. Services are built in the
// root command's PersistentPreRunE once flags are parsed.
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configFile string
	envFile    string
	now        string

	cfg      *config.Config
	planner  service.PlannerService
	textbook service.TextbookService
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	c := &cli{in: in, out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:          "edulens",
		Short:        "EduLens study planner and wordbook tools",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default ./config.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().StringVar(&c.now, "now", "", "treat this date or RFC 3339 time as now")

	rootCmd.AddCommand(examYearCmd(c))
	rootCmd.AddCommand(deadlineCmd(c))
	rootCmd.AddCommand(studyTimeCmd(c))
	rootCmd.AddCommand(normalizeCmd(c))
	rootCmd.AddCommand(groupCmd(c))
	rootCmd.AddCommand(unitsCmd(c))
	rootCmd.AddCommand(pagesCmd(c))

	return rootCmd
}

func (c *cli) setup() error {
	cfg, err := config.LoadWith(config.Options{ConfigFile: c.configFile, EnvFile: c.envFile})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg

	clock, err := c.clock()
	if err != nil {
		return err
	}

	log := logger.SetupWithWriter(cfg.Server, c.errOut)
	c.planner = service.NewPlannerService(clock, cfg.Planner, log)
	c.textbook = service.NewTextbookService(textbook.DefaultCatalog(), cfg.Site, log)
	return nil
}

// clock returns the wall clock, or a fixed clock when --now is set. A bare
// date means midnight in Tokyo.
func (c *cli) clock() (service.Clock, error) {
	if c.now == "" {
		return service.SystemClock, nil
	}
	if t, err := time.Parse(time.RFC3339, c.now); err == nil {
		return service.FixedClock(t), nil
	}
	d, err := planner.ParseDate(c.now)
	if err != nil {
		return nil, fmt.Errorf("--now: %w", err)
	}
	return service.FixedClock(time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, planner.Tokyo)), nil
}

func (c *cli) printJSON(v interface{}) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
