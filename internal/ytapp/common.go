package ytapp

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Avinashricky211/Ytapp/internal/config"
)

// Options is a group of common options for all subcommands.
type Options struct {
	ConfigPath string `short:"c" long:"config" description:"custom config path" env:"YTAPP_CONFIG"`
	Debug      bool   `long:"debug" description:"enable debug logging" env:"YTAPP_DEBUG"`
}

// Command is a common part of all subcommands.
type Command struct {
	Config *Config
	Wg     *sync.WaitGroup
	Ctx    context.Context
}

func (cmd *Command) Init(opts interface{}) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	})

	options, ok := opts.(*Options)
	if !ok {
		panic("type mismatch")
	}

	lvl := zerolog.InfoLevel
	if options.Debug {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)

	// -------------

	ctx, cancel := context.WithCancel(context.Background())
	cmd.Ctx = ctx
	cmd.Wg = &sync.WaitGroup{}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		cnt := 0
		for {
			select {
			case s := <-signalChan:
				switch cnt {
				case 0:
					log.Warn().Stringer("signal", s).Msg("Graceful termination")
					cancel()
				case 1:
					log.Warn().Msg("Send one more signal for hard termination")
				case 2:
					log.Warn().Msg("Hard termination")
					os.Exit(1)
				}
				cnt++
			case <-ctx.Done():
				return
			}
		}
	}()

	// -------------

	var cfg Config

	reader := config.New(
		"ytapp.yaml",
		config.WithExplicitPath(options.ConfigPath),
		config.WithDefaults(ConfigDefaults),
	)
	if err := reader.Read(&cfg); err != nil {
		return fmt.Errorf("config error: %v", err)
	}

	cmd.Config = &cfg

	return nil
}

func (cmd *Command) Close() {
	cmd.Wg.Wait()
}
