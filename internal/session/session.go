package session

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tickdown/internal/clock"
	"tickdown/internal/config"
	"tickdown/internal/fields"
	"tickdown/internal/gifenc"
	"tickdown/internal/history"
	"tickdown/internal/render"
	"tickdown/internal/sink"
)

// Result summarizes a completed render session.
type Result struct {
	ID     string
	Path   string
	Frames int
	Passed bool
	Bytes  int64
}

// Session renders one countdown animation end to end: duration computation,
// per-second frame rendering, GIF encoding, and the streamed write to disk.
type Session struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *history.Store
	now    func() time.Time
}

// New constructs a session. The history store may be nil to skip the ledger.
func New(cfg *config.Config, logger *slog.Logger, store *history.Store) *Session {
	return NewAt(cfg, logger, store, time.Now)
}

// NewAt constructs a session with an injectable current-time source.
func NewAt(cfg *config.Config, logger *slog.Logger, store *history.Store, now func() time.Time) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if now == nil {
		now = time.Now
	}
	return &Session{cfg: cfg, logger: logger, store: store, now: now}
}

// Run computes the remaining duration for target, renders the animation, and
// streams it to <out_dir>/tmp/<name>.gif. The optional onComplete callback
// fires only after the sink reports a durable flush; passing nil is a no-op.
// Cancelling ctx aborts between frames and discards the partial output.
func (s *Session) Run(ctx context.Context, target string, onComplete func(Result)) (Result, error) {
	rc := s.cfg.Render
	zone := clock.ParseZone(rc.Timezone)

	calc := clock.NewAt(s.logger, s.now)
	outcome, err := calc.Compute(target, zone, rc.PassedMessage)
	if err != nil {
		return Result{}, err
	}

	renderer, err := render.New(render.Options{
		Width:      rc.Width,
		Height:     rc.Height,
		Color:      rc.Color,
		Background: rc.Background,
	})
	if err != nil {
		return Result{}, err
	}

	out, err := sink.NewFile(s.cfg.OutputPath(""))
	if err != nil {
		return Result{}, err
	}

	counter := &countingWriter{w: out}
	encoder := gifenc.New(counter, gifenc.Options{
		Width:       rc.Width,
		Height:      rc.Height,
		DelayCS:     gifenc.DefaultDelayCS,
		PaletteSize: gifenc.DefaultPaletteSize,
	})

	result := Result{
		ID:   uuid.NewString(),
		Path: out.Path(),
	}

	if err := s.encode(ctx, outcome, renderer, encoder, &result); err != nil {
		out.Abort()
		<-out.Done()
		return Result{}, err
	}

	if err := out.Close(); err != nil {
		return Result{}, err
	}
	if err := <-out.Done(); err != nil {
		return Result{}, err
	}

	result.Frames = encoder.Frames()
	result.Bytes = counter.n
	s.record(ctx, target, zone, result)

	s.logger.Info("animation written",
		"component", "session",
		"path", result.Path,
		"frames", result.Frames,
		"bytes", result.Bytes,
	)

	if onComplete != nil {
		onComplete(result)
	}
	return result, nil
}

// encode walks the state machine: Start, one frame per simulated second (or a
// single message frame once the date has passed), Finish.
func (s *Session) encode(ctx context.Context, outcome clock.Outcome, renderer *render.Renderer, encoder *gifenc.Encoder, result *Result) error {
	if err := encoder.Start(); err != nil {
		return err
	}

	switch o := outcome.(type) {
	case clock.Passed:
		result.Passed = true
		if err := encoder.AddFrame(renderer.Message(o.Message)); err != nil {
			return err
		}
	case clock.Remaining:
		ms := o.Millis
		for i := 0; i < s.cfg.Render.Frames; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			set := fields.Decompose(ms)
			s.logger.Info(set.String(), "component", "session", "frame", i)
			if err := encoder.AddFrame(renderer.Countdown(set)); err != nil {
				return err
			}
			ms = fields.Decrement(ms, 1)
		}
	}

	return encoder.Finish()
}

func (s *Session) record(ctx context.Context, target string, zone clock.Zone, result Result) {
	if s.store == nil {
		return
	}
	err := s.store.Add(ctx, history.Record{
		ID:       result.ID,
		Name:     s.cfg.Render.Name,
		Path:     result.Path,
		Target:   target,
		Timezone: string(zone),
		Frames:   result.Frames,
		Bytes:    result.Bytes,
		Passed:   result.Passed,
	})
	if err != nil {
		// The ledger is bookkeeping; a failed insert never fails the render.
		s.logger.Warn("record render", "component", "session", "error", err)
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
