// Package alert delivers phase completion alerts: an audible tone, a desktop
// notification and an optional user command
package alert

import (
	"log/slog"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/kballard/go-shellquote"

	"github.com/notehub/notehub/internal/config"
)

const appName = "notehub"

// Desktop is the notifier used outside tests.
type Desktop struct {
	notify  func(title, message, icon string) error
	run     func(name string, args ...string) error
	opts    config.NotificationConfig
	initErr error
	wg      sync.WaitGroup
	once    sync.Once
}

// New returns a notifier for the given notification settings.
func New(opts config.NotificationConfig) *Desktop {
	return &Desktop{
		opts:   opts,
		notify: beeep.Notify,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

func (d *Desktop) initSpeaker() error {
	d.once.Do(func() {
		d.initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
		if d.initErr != nil {
			d.initErr = errSpeakerInit.Wrap(d.initErr)
		}
	})

	return d.initErr
}

func (d *Desktop) streamer() (beep.Streamer, error) {
	if d.opts.Sound != "" {
		return fileStreamer(d.opts.Sound)
	}

	return toneStreamer()
}

// PlayTone starts the completion sound and returns without waiting for it.
func (d *Desktop) PlayTone() {
	if !d.opts.Enabled {
		return
	}

	s, err := d.streamer()
	if err != nil {
		slog.Warn("unable to prepare sound", slog.Any("error", err))
		return
	}

	if err := d.initSpeaker(); err != nil {
		slog.Warn("unable to play sound", slog.Any("error", err))
		return
	}

	speaker.Play(s)
}

// Notify shows a desktop notification and runs the configured command in the
// background.
func (d *Desktop) Notify(message string) {
	if !d.opts.Enabled {
		return
	}

	// icon is empty if the file is not found
	icon, _ := xdg.SearchDataFile(filepath.Join(appName, "icon.png"))

	if err := d.notify(appName, message, icon); err != nil {
		slog.Warn("unable to display notification", slog.Any("error", err))
	}

	if d.opts.Cmd == "" {
		return
	}

	d.wg.Add(1)

	go func() {
		defer d.wg.Done()

		if err := d.runCmd(); err != nil {
			slog.Warn(
				"notification command failed",
				slog.String("cmd", d.opts.Cmd),
				slog.Any("error", err),
			)
		}
	}()
}

// Wait blocks until background commands started by Notify have exited.
func (d *Desktop) Wait() {
	d.wg.Wait()
}

// runCmd executes the configured notification command.
func (d *Desktop) runCmd() error {
	args, err := splitCmd(d.opts.Cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	return d.run(args[0], args[1:]...)
}

func splitCmd(cmd string) ([]string, error) {
	args, err := shellquote.Split(cmd)
	if err != nil {
		return nil, errParseCmd.Wrap(err)
	}

	return args, nil
}
