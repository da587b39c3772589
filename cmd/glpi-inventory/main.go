package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	kingpin "github.com/alecthomas/kingpin/v2"
	"github.com/sirupsen/logrus"

	"glpi-inventory/internal/adapter"
	"glpi-inventory/internal/codec"
	"glpi-inventory/internal/config"
	"glpi-inventory/internal/domain"
	"glpi-inventory/internal/glpi"
	"glpi-inventory/internal/logging"
)

var version = "dev"

// options holds the parsed command line
type options struct {
	ConfigPath string
	List       bool
	Host       string
	Format     string
	LogLevel   string
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("glpi-inventory", "Ansible dynamic inventory backed by GLPI computers.")
	app.Version(version)
	app.HelpFlag.Short('h')

	app.Flag("config", "Inventory source file (defaults to the "+config.EnvConfigPath+" search path).").
		Short('c').PlaceHolder("glpi.yml").StringVar(&opts.ConfigPath)
	app.Flag("list", "Print the whole inventory. This is the default; --host takes precedence.").BoolVar(&opts.List)
	app.Flag("host", "Print the variables of a single host.").PlaceHolder("NAME").StringVar(&opts.Host)
	app.Flag("format", "Output format of the inventory.").Default("json").EnumVar(&opts.Format, codec.Formats()...)
	app.Flag("log-level", "Log level written to stderr (debug, info, warn, error).").
		Default(logging.DefaultLevel.String()).StringVar(&opts.LogLevel)

	return app
}

func main() {
	var opts options
	app := newApp(&opts)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := logging.New(opts.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, nil, os.Stdout, logger); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "glpi-inventory: %s\n", describe(err))
		os.Exit(1)
	}
}

// run loads configuration and credentials, pulls the inventory and writes
// it to out
func run(ctx context.Context, opts options, lookup config.LookupFunc, out io.Writer, logger *logrus.Logger) error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if opts.ConfigPath != "" {
		cfg, path, err = config.LoadFromPath(opts.ConfigPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return err
	}
	logger.WithField("config", path).Debug("config loaded")

	creds, err := config.LoadCredentials(lookup)
	if err != nil {
		return err
	}

	var source adapter.Adapter = adapter.NewGLPIAdapter(cfg.URL, creds, logger,
		glpi.WithTimeout(cfg.Timeout.Duration()))

	inv, err := source.Sync(ctx)
	if err != nil {
		return err
	}

	if opts.Host != "" {
		if opts.List {
			logger.WithField("host", opts.Host).Debug("--host given, ignoring --list")
		}
		return codec.ExportHost(inv, opts.Host, out)
	}

	exporter, err := codec.ForFormat(opts.Format)
	if err != nil {
		return err
	}
	return exporter.Export(inv, out)
}

// describe prefixes an error with its kind
func describe(err error) string {
	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		return "configuration error: " + err.Error()
	}
	var remoteErr *glpi.RemoteError
	if errors.As(err, &remoteErr) {
		return "GLPI request failed: " + err.Error()
	}
	return err.Error()
}
