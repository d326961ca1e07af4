package app

import (
	"errors"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/notehub/notehub/internal/config"
	"github.com/notehub/notehub/internal/logging"
	"github.com/notehub/notehub/internal/pathutil"
	"github.com/notehub/notehub/internal/ui"
	"github.com/notehub/notehub/notes"
	"github.com/notehub/notehub/store"
	"github.com/notehub/notehub/timer"
)

// env holds what every command needs: the loaded config, the open store
// and the log file.
type env struct {
	cfg *config.Config
	db  *store.Client
	log io.Closer
}

// setup loads the config, starts logging and opens the store. The first-run
// prompt is shown only when prompt is set.
func setup(ctx *cli.Context, prompt bool) (*env, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	configPath := pathutil.ConfigFilePath()

	var opts []config.Option

	if prompt {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	closer, err := logging.Setup(pathutil.LogFilePath(), cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	return &env{cfg: cfg, db: db, log: closer}, nil
}

func (e *env) Close() error {
	return errors.Join(e.db.Close(), e.log.Close())
}

func (e *env) engine(opts ...timer.Option) *timer.Engine {
	return timer.New(e.db.Namespace(store.NamespaceTimer), e.cfg, opts...)
}

func (e *env) notes() *notes.Client {
	return notes.New(e.db.Namespace(store.NamespaceAuth), e.cfg.Notes)
}

// withEnv runs fn with a prepared environment and releases it afterwards.
func withEnv(prompt bool, fn func(*cli.Context, *env) error) cli.ActionFunc {
	return func(ctx *cli.Context) (err error) {
		e, err := setup(ctx, prompt)
		if err != nil {
			return err
		}

		defer func() {
			err = errors.Join(err, e.Close())
		}()

		return fn(ctx, e)
	}
}
