// Package mic captures the default audio input device into an audio.Ring.
package mic

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/iburimskiy/galaxy-visualization/internal/audio"
)

// Config selects the capture format.
type Config struct {
	SampleRate float64
	BufferSize int
	RingSize   int
}

// Capture is a running microphone stream. It satisfies audio.Capture.
type Capture struct {
	*audio.Ring

	stream *portaudio.Stream
	logger *slog.Logger
	once   sync.Once
}

// Open starts a mono input stream on the default device. Any failure leaves
// portaudio terminated and is returned to the caller.
func Open(cfg Config, logger *slog.Logger) (*Capture, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RingSize < cfg.BufferSize {
		cfg.RingSize = cfg.BufferSize * 4
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portaudio: %w", err)
	}

	c := &Capture{
		Ring:   audio.NewRing(cfg.RingSize, cfg.SampleRate),
		logger: logger,
	}
	stream, err := portaudio.OpenDefaultStream(1, 0, cfg.SampleRate, cfg.BufferSize, c.process)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("open default input stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("start input stream: %w", err)
	}
	c.stream = stream

	logger.Info("microphone capture started",
		"sample_rate", cfg.SampleRate,
		"buffer_size", cfg.BufferSize,
	)
	return c, nil
}

func (c *Capture) process(in []float32) {
	c.WriteFloat32(in)
}

// Close stops the stream and releases portaudio. It is safe to call twice.
func (c *Capture) Close() error {
	var err error
	c.once.Do(func() {
		if stopErr := c.stream.Stop(); stopErr != nil {
			c.logger.Warn("stop input stream", "error", stopErr)
		}
		if closeErr := c.stream.Close(); closeErr != nil {
			err = fmt.Errorf("close input stream: %w", closeErr)
		}
		if termErr := portaudio.Terminate(); termErr != nil && err == nil {
			err = fmt.Errorf("terminate portaudio: %w", termErr)
		}
		c.logger.Info("microphone capture stopped")
	})
	return err
}
