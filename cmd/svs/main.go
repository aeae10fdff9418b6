// cmd/svs/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tamzrod/svs/internal/config"
	"github.com/tamzrod/svs/internal/logger"
	"github.com/tamzrod/svs/internal/procuser"
	"github.com/tamzrod/svs/internal/render"
	"github.com/tamzrod/svs/internal/service"
)

// Exit codes.
const (
	exitOK    = 0
	exitDown  = 1
	exitFatal = 2
)

// envConfig names the config file when --config is not given.
const envConfig = "SVS_CONFIG"

// errServiceDown carries quiet mode's positive answer out of RunE.
var errServiceDown = errors.New("a service is down but wanted up")

type options struct {
	dir     string
	quiet   bool
	color   string
	config  string
	verbose bool

	// set in PersistentPreRunE
	cfg *config.Config
	log *zap.Logger
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	o := &options{}
	root := newRootCmd(o)
	root.SetArgs(args)

	err := root.Execute()
	if o.log != nil {
		_ = o.log.Sync()
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errServiceDown):
		return exitDown
	default:
		fmt.Fprintf(os.Stderr, "svs: %v\n", err)
		for _, h := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", h)
		}
		return exitFatal
	}
}

func newRootCmd(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "svs",
		Short: "Show the status of supervised services",
		Long: `Show the status of every service in a runit service directory.

With -q nothing is printed and the exit code answers whether any
service is down while wanted up (1) or not (0).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, o)
		},
	}

	bindRootFlags(root.PersistentFlags(), o)

	root.AddCommand(newWatchCmd(o), newExportCmd(o))
	return root
}

func bindRootFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.dir, "dir", "d", "", "service directory (default $SVDIR or /var/service)")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "print nothing; exit 1 if any service is down but wanted up")
	fs.StringVar(&o.color, "color", "", "color output: auto, always or never")
	fs.StringVarP(&o.config, "config", "c", "", "config file (default $"+envConfig+")")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging on stderr")
}

// setup loads config and builds the logger. Flags win over the file.
func (o *options) setup() error {
	o.log = logger.New(o.verbose)

	path := o.config
	if path == "" {
		path = os.Getenv(envConfig)
	}

	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if err := config.Validate(loaded); err != nil {
			return errors.Wrapf(err, "config %s", path)
		}
		cfg = loaded
	}
	if o.color != "" {
		cfg.SVS.Color = o.color
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}
	config.Normalize(cfg)

	o.cfg = cfg
	o.log.Debug("config loaded", zap.String("path", path), zap.String("color", cfg.SVS.Color))
	return nil
}

func (o *options) root() string {
	return config.ServiceDir(o.dir, o.cfg)
}

func (o *options) table(f *os.File) *render.Table {
	isTTY := term.IsTerminal(int(f.Fd()))
	t := render.NewTable(f, render.Profile(o.cfg.SVS.Color, isTTY))
	t.LookupUser = procuser.Lookup
	return t
}

func runList(cmd *cobra.Command, o *options) error {
	root := o.root()

	if o.quiet {
		down, err := service.AnyDown(root)
		if err != nil {
			return err
		}
		if down {
			return errServiceDown
		}
		return nil
	}

	l, err := service.Scanner{Log: o.log}.Aggregate(root)
	if err != nil {
		return err
	}
	return o.table(os.Stdout).Render(l, time.Now())
}
