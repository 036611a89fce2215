// Package playback plays an audio file through the speaker and exposes the
// played samples as an audio.Capture.
package playback

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/galaxy-visualization/internal/audio"
)

// Patterns lists the file globs Open can decode.
var Patterns = []string{"*.wav", "*.mp3", "*.flac"}

// ErrUnsupported is returned for file extensions without a decoder.
var ErrUnsupported = errors.New("unsupported audio file type")

var (
	speakerMu   sync.Mutex
	speakerRate beep.SampleRate
)

// Player is a file being played. It satisfies audio.Capture.
type Player struct {
	*audio.Ring

	path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	logger   *slog.Logger

	closed atomic.Bool
}

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }, nil
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }, nil
	case ".flac":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// Open decodes path and starts playing it. ringSize is the number of recent
// samples kept for analysis.
func Open(path string, ringSize int, logger *slog.Logger) (*Player, error) {
	if logger == nil {
		logger = slog.Default()
	}
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	if err := ensureSpeaker(format.SampleRate); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return nil, err
	}

	p := &Player{
		Ring:     audio.NewRing(ringSize, float64(format.SampleRate)),
		path:     path,
		file:     f,
		streamer: streamer,
		format:   format,
		logger:   logger,
	}
	p.ctrl = &beep.Ctrl{Streamer: audio.NewTap(streamer, p.Ring)}

	speaker.Play(beep.Seq(p.ctrl, beep.Callback(p.finished)))

	logger.Info("audio file playing",
		"path", path,
		"sample_rate", int(format.SampleRate),
		"duration", p.Duration().Round(time.Second),
	)
	return p, nil
}

// ensureSpeaker initialises the speaker on first use and re-initialises it
// when the sample rate changes. Anything already playing is cleared.
func ensureSpeaker(rate beep.SampleRate) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerRate == rate {
		speaker.Clear()
		return nil
	}
	if speakerRate != 0 {
		speaker.Clear()
	}
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("initialize speaker: %w", err)
	}
	speakerRate = rate
	return nil
}

// Duration is the total length of the file.
func (p *Player) Duration() time.Duration {
	return p.format.SampleRate.D(p.streamer.Len())
}

// TogglePause pauses or resumes playback.
func (p *Player) TogglePause() bool {
	speaker.Lock()
	defer speaker.Unlock()
	p.ctrl.Paused = !p.ctrl.Paused
	return p.ctrl.Paused
}

// finished runs on the speaker goroutine once the sequence ends. Closing
// the player ends it too, which is not reported.
func (p *Player) finished() {
	if p.closed.Load() {
		return
	}
	p.logger.Info("audio file finished", "path", p.path)
}

// Close stops playback and releases the file. The decoders close the file
// along with the stream.
func (p *Player) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}

	speaker.Lock()
	p.ctrl.Streamer = nil
	speaker.Unlock()

	err := p.streamer.Close()
	if cerr := p.file.Close(); cerr != nil && !errors.Is(cerr, os.ErrClosed) && err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(p.path), err)
	}
	return nil
}
