// Package server implements the amount calculator: parsing ISO-8601
// amounts, shifting date-times by them and normalizing periods. The
// transports in the grpc and local packages serve a Server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/blockberries/chrono"
	"github.com/blockberries/chrono/calendar"
	"github.com/blockberries/chrono/types"
)

// DefaultMaxTextLength is the longest amount text accepted unless
// WithMaxTextLength says otherwise.
const DefaultMaxTextLength = 64

// Calculator is the amount calculation service. Implementations are
// safe for concurrent use.
type Calculator interface {
	Parse(ctx context.Context, req types.ParseRequest) (types.ParseResult, error)
	Shift(ctx context.Context, req types.ShiftRequest) (types.ShiftResult, error)
	Normalize(ctx context.Context, req types.NormalizeRequest) (types.NormalizeResult, error)
	Close() error
}

// Compile-time interface check.
var _ Calculator = (*Server)(nil)

// Server implements Calculator over the chrono and calendar packages.
// It holds no per-request state.
type Server struct {
	log      *slog.Logger
	validate *validator.Validate
	maxText  int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxTextLength limits the length of amount text. Values below one
// are ignored.
func WithMaxTextLength(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxText = n
		}
	}
}

// New creates a Server.
func New(opts ...Option) *Server {
	s := &Server{
		log:      slog.Default(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		maxText:  DefaultMaxTextLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse parses req.Text as the kind of amount named by req.Kind and
// returns it together with its canonical text.
func (s *Server) Parse(ctx context.Context, req types.ParseRequest) (types.ParseResult, error) {
	return handle(ctx, s, "parse", req, s.parse)
}

// Shift applies the amount in req to req.Start in the direction of
// req.Op.
func (s *Server) Shift(ctx context.Context, req types.ShiftRequest) (types.ShiftResult, error) {
	return handle(ctx, s, "shift", req, s.shift)
}

// Normalize folds whole years out of the months of req.Period.
func (s *Server) Normalize(ctx context.Context, req types.NormalizeRequest) (types.NormalizeResult, error) {
	return handle(ctx, s, "normalize", req, s.normalize)
}

// Close is a no-op.
func (s *Server) Close() error { return nil }

// handle runs one request: it validates req, logs it under a fresh
// request id and converts arithmetic overflow into an error.
func handle[Req, Res any](ctx context.Context, s *Server, op string, req Req, fn func(Req) (Res, error)) (res Res, err error) {
	log := s.log.With(slog.String("request_id", uuid.NewString()), slog.String("op", op))
	log.Debug("request", slog.Any("req", req))

	defer func() {
		if r := recover(); r != nil {
			ae, ok := r.(*chrono.ArithmeticError)
			if !ok {
				panic(r)
			}
			err = ae
		}
		if err != nil {
			var zero Res
			res = zero
			log.Warn("request failed", slog.Any("error", err))
			err = fmt.Errorf("chrono server: %s: %w", op, err)
		}
	}()

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := s.validate.Struct(req); err != nil {
		return res, invalid(err)
	}
	return fn(req)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", chrono.ErrInvalidArgument, err)
}

// amountOf parses text as kind, enforcing the length limit.
func (s *Server) amountOf(kind types.AmountKind, text string) (amount, error) {
	if err := s.validate.Var(text, "max="+strconv.Itoa(s.maxText)); err != nil {
		return nil, invalid(fmt.Errorf("amount text longer than %d characters", s.maxText))
	}
	switch kind {
	case types.AmountDuration:
		return chrono.ParseDuration(text)
	case types.AmountPeriod:
		return chrono.ParsePeriod(text)
	}
	return nil, invalid(fmt.Errorf("unknown amount kind %d", kind))
}

// amount is what both Duration and Period provide.
type amount interface {
	chrono.TemporalAmount
	String() string
}

func (s *Server) parse(req types.ParseRequest) (types.ParseResult, error) {
	a, err := s.amountOf(req.Kind, req.Text)
	if err != nil {
		return types.ParseResult{}, err
	}
	res := types.ParseResult{Kind: req.Kind, Canonical: a.String()}
	switch v := a.(type) {
	case chrono.Duration:
		w := v.Wire()
		res.Duration = &w
	case chrono.Period:
		w := v.Wire()
		res.Period = &w
	}
	return res, nil
}

func (s *Server) shift(req types.ShiftRequest) (types.ShiftResult, error) {
	start, err := LocalDateTimeOfWire(req.Start)
	if err != nil {
		return types.ShiftResult{}, err
	}
	a, err := s.amountOf(req.Kind, req.Amount)
	if err != nil {
		return types.ShiftResult{}, err
	}

	var end calendar.LocalDateTime
	switch req.Op {
	case types.ShiftPlus:
		end, err = chrono.Add(start, a)
	case types.ShiftMinus:
		end, err = chrono.Subtract(start, a)
	default:
		err = invalid(fmt.Errorf("unknown shift op %d", req.Op))
	}
	if err != nil {
		return types.ShiftResult{}, err
	}
	return types.ShiftResult{
		Result:    WireOfLocalDateTime(end),
		DayOfWeek: int32(end.Date().DayOfWeek()),
		Applied:   a.String(),
	}, nil
}

func (s *Server) normalize(req types.NormalizeRequest) (types.NormalizeResult, error) {
	p := chrono.PeriodOfWire(req.Period).Normalized()
	return types.NormalizeResult{
		Period:      p.Wire(),
		TotalMonths: p.ToTotalMonths(),
		Canonical:   p.String(),
	}, nil
}

// LocalDateTimeOfWire converts the wire form to a calendar date-time,
// rejecting dates that do not exist.
func LocalDateTimeOfWire(w types.DateTime) (calendar.LocalDateTime, error) {
	month, err := calendar.MonthOf(int64(w.Month))
	if err != nil {
		return calendar.LocalDateTime{}, err
	}
	d, err := calendar.LocalDateOf(w.Year, month, int64(w.Day))
	if err != nil {
		return calendar.LocalDateTime{}, err
	}
	t, err := calendar.LocalTimeOf(int64(w.Hour), int64(w.Minute), int64(w.Second), int64(w.Micro))
	if err != nil {
		return calendar.LocalDateTime{}, err
	}
	return calendar.LocalDateTimeOf(d, t), nil
}

// WireOfLocalDateTime is the inverse of LocalDateTimeOfWire.
func WireOfLocalDateTime(dt calendar.LocalDateTime) types.DateTime {
	d, t := dt.Date(), dt.Time()
	return types.DateTime{
		Year:   d.Year(),
		Month:  int32(d.Month()),
		Day:    int32(d.Day()),
		Hour:   int32(t.Hour()),
		Minute: int32(t.Minute()),
		Second: int32(t.Second()),
		Micro:  int32(t.Micro()),
	}
}
