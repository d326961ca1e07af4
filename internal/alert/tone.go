package alert

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	sampleRate beep.SampleRate = 44100

	toneFrequency = 800
	toneDuration  = 500 * time.Millisecond
	toneStartGain = 0.3
	toneEndGain   = 0.01
)

// decay scales a stream by a gain that falls exponentially from `from` to
// `to` over total samples and stays at `to` afterwards.
type decay struct {
	streamer beep.Streamer
	from     float64
	to       float64
	pos      int
	total    int
}

func (d *decay) gain(pos int) float64 {
	if d.total <= 0 {
		return d.to
	}

	t := min(float64(pos)/float64(d.total), 1)

	return d.from * math.Pow(d.to/d.from, t)
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.streamer.Stream(samples)

	for i := range samples[:n] {
		g := d.gain(d.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}

	return n, ok
}

func (d *decay) Err() error {
	return d.streamer.Err()
}

// toneStreamer returns the completion tone: a short 800 Hz sine that fades
// out.
func toneStreamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, toneFrequency)
	if err != nil {
		return nil, err
	}

	n := sampleRate.N(toneDuration)

	return beep.Take(n, &decay{
		streamer: sine,
		from:     toneStartGain,
		to:       toneEndGain,
		total:    n,
	}), nil
}

// fileStreamer decodes an audio file and resamples it to the speaker rate.
func fileStreamer(path string) (beep.Streamer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errOpenSound.Wrap(err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, errInvalidSoundFormat.Fmt(path)
	}

	if err != nil {
		_ = f.Close()
		return nil, errDecodeSound.Wrap(err)
	}

	closer := beep.Callback(func() {
		_ = stream.Close()
	})

	if format.SampleRate == sampleRate {
		return beep.Seq(stream, closer), nil
	}

	return beep.Seq(beep.Resample(4, format.SampleRate, sampleRate, stream), closer), nil
}
