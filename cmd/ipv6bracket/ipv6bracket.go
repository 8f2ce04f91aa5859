package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/miguelangel-nubla/ipv6bracket"
	"github.com/miguelangel-nubla/ipv6bracket/pkg/nanoleaf"
	"github.com/miguelangel-nubla/ipv6bracket/pkg/registry"
)

var (
	logLevel string
	host     string
	token    string
	port     int
	patch    bool
)

func init() {
	flag.StringVar(&logLevel, "log_level", "info", "Logging level (debug, info, warn, error, fatal, panic) default: info")
	flag.StringVar(&host, "host", "", "Nanoleaf host: hostname, IPv4 or IPv6 literal (zone allowed)")
	flag.StringVar(&token, "token", "", "Nanoleaf auth token")
	flag.IntVar(&port, "port", nanoleaf.DefaultPort, "Nanoleaf API port")
	flag.BoolVar(&patch, "patch", true, "Bracket IPv6 literal hosts before the client builds its URL")
}

type options struct {
	host  string
	token string
	port  int
	patch bool
}

func main() {
	flag.Parse()

	sugar := initializeLogger()
	code := run(sugar, registry.Default, os.Stdout, options{
		host:  host,
		token: token,
		port:  port,
		patch: patch,
	})
	_ = sugar.Sync()
	os.Exit(code)
}

// run prints the client API URL for opts and returns the process exit code.
func run(sugar *zap.SugaredLogger, reg *registry.Registry, out io.Writer, opts options) int {
	if opts.host == "" {
		sugar.Error("-host is required")
		return 2
	}

	if opts.patch {
		integration := ipv6bracket.NewIntegration(sugar, reg)
		integration.Setup(context.Background(), ipv6bracket.Config{})
		integration.SetupEntry(context.Background(), ipv6bracket.NewEntry(opts.host, map[string]any{
			"host":  opts.host,
			"token": opts.token,
			"port":  opts.port,
		}))
	}

	obj, err := reg.Create(nanoleaf.Name, registry.Keywords(map[string]any{
		"session": nil,
		"host":    opts.host,
		"token":   opts.token,
		"port":    opts.port,
	}))
	if err != nil {
		sugar.Errorw("can't create nanoleaf client", zap.Error(err))
		return 1
	}

	fmt.Fprintln(out, obj.(*nanoleaf.Nanoleaf).APIURL())
	return 0
}

func initializeLogger() *zap.SugaredLogger {
	zapLevel, err := parseLogLevel(logLevel)
	if err != nil {
		log.Fatalf("invalid log level: %s", logLevel)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	return zap.Must(cfg.Build()).Sugar()
}

func parseLogLevel(level string) (zapcore.Level, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return zapLevel, nil
}
