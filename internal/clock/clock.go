package clock

import (
	"io"
	"log/slog"
	"time"
	_ "time/tzdata"

	"tickdown/internal/faults"
)

// TargetLayout is the accepted target time format, interpreted in the
// session's time zone.
const TargetLayout = "2006-01-02 15:04"

// DefaultPassedMessage is rendered when the target has passed and the caller
// supplied no message of their own.
const DefaultPassedMessage = "Date has passed!"

// Zone identifies one of the supported named time zones.
type Zone string

const (
	ZoneUK Zone = "uk"
	ZoneNL Zone = "nl"
	ZoneRU Zone = "ru"
)

var zoneLocations = map[Zone]string{
	ZoneUK: "Europe/London",
	ZoneNL: "Europe/Amsterdam",
	ZoneRU: "Europe/Moscow",
}

// ParseZone resolves a zone identifier, falling back to UK for anything
// unrecognized.
func ParseZone(id string) Zone {
	z := Zone(id)
	if _, ok := zoneLocations[z]; !ok {
		return ZoneUK
	}
	return z
}

// Location loads the IANA location backing the zone.
func (z Zone) Location() (*time.Location, error) {
	name, ok := zoneLocations[z]
	if !ok {
		name = zoneLocations[ZoneUK]
	}
	return time.LoadLocation(name)
}

// Outcome is the result of a duration computation: either the target has
// passed, or some duration remains.
type Outcome interface {
	outcome()
}

// Passed signals that the target instant is not after the current instant.
// The session renders Message as its single frame.
type Passed struct {
	Message string
}

// Remaining holds the countdown duration in milliseconds.
type Remaining struct {
	Millis int64
}

func (Passed) outcome()    {}
func (Remaining) outcome() {}

// Calculator resolves target/current instant pairs into countdown outcomes.
type Calculator struct {
	logger *slog.Logger
	now    func() time.Time
}

// New constructs a Calculator. A nil logger discards diagnostics.
func New(logger *slog.Logger) *Calculator {
	return NewAt(logger, time.Now)
}

// NewAt constructs a Calculator with an injectable current-time source.
func NewAt(logger *slog.Logger, now func() time.Time) *Calculator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if now == nil {
		now = time.Now
	}
	return &Calculator{logger: logger.With("component", "clock"), now: now}
}

// Compute parses target in the given zone and compares it against the current
// instant. A target at or before now yields Passed carrying passedMessage (or
// the default literal when empty); otherwise Remaining holds the difference in
// milliseconds. Malformed targets fail with ErrParse.
func (c *Calculator) Compute(target string, zone Zone, passedMessage string) (Outcome, error) {
	loc, err := zone.Location()
	if err != nil {
		return nil, faults.Wrap(faults.ErrParse, "clock", "load zone", string(zone), err)
	}

	targetTime, err := time.ParseInLocation(TargetLayout, target, loc)
	if err != nil {
		return nil, faults.Wrap(faults.ErrParse, "clock", "parse target", target, err)
	}

	currentTime := c.now().In(loc)
	difference := targetTime.Sub(currentTime)

	c.logger.Info("target time", "value", targetTime.Format(time.RFC3339))
	c.logger.Info("current time", "value", currentTime.Format(time.RFC3339))
	c.logger.Info("difference", "value", difference.Round(time.Second).String())

	if difference <= 0 {
		message := passedMessage
		if message == "" {
			message = DefaultPassedMessage
		}
		return Passed{Message: message}, nil
	}
	return Remaining{Millis: difference.Milliseconds()}, nil
}
