package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"gallery/internal/logging"
	"gallery/internal/metrics"
	"gallery/internal/model"
)

const tracerName = "gallery/internal/service"

// GalleryService exposes the operations of a single Gallery with tracing,
// logging and metrics around each call. Results and validation errors are
// returned exactly as the model produces them.
type GalleryService interface {
	// Rename assigns a new gallery name; model.ErrInvalidName on rejection.
	Rename(ctx context.Context, name string) error
	// Relocate assigns a new city; model.ErrInvalidCity on rejection.
	Relocate(ctx context.Context, city string) error
	// Resize assigns a new area in square meters; model.ErrInvalidArea on rejection.
	Resize(ctx context.Context, areaSqM float64) error
	SetOpenToPublic(ctx context.Context, open bool)

	AddExhibition(ctx context.Context, name string, year int) string
	RemoveExhibition(ctx context.Context, name string) string
	ListExhibitions(ctx context.Context) string

	// Snapshot returns a value copy of the gallery state.
	Snapshot(ctx context.Context) model.Snapshot
}

// Option configures a galleryService.
type Option func(*galleryService)

// WithRecorder sets the metrics recorder. Defaults to metrics.Nop.
func WithRecorder(rec metrics.Recorder) Option {
	return func(s *galleryService) { s.rec = rec }
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *galleryService) { s.log = l }
}

// WithTracerProvider sets the tracer provider. Defaults to the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *galleryService) { s.tracer = tp.Tracer(tracerName) }
}

// galleryService is the concrete implementation of GalleryService.
// Like model.Gallery it is not safe for concurrent use.
type galleryService struct {
	g      *model.Gallery
	rec    metrics.Recorder
	log    *slog.Logger
	tracer trace.Tracer
}

// NewGalleryService wraps an existing gallery.
func NewGalleryService(g *model.Gallery, opts ...Option) GalleryService {
	return newGalleryService(g, opts...)
}

func newGalleryService(g *model.Gallery, opts ...Option) *galleryService {
	s := &galleryService{
		g:   g,
		rec: metrics.Nop{},
		log: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = otel.GetTracerProvider().Tracer(tracerName)
	}
	return s
}

// Open validates and constructs a gallery, then wraps it.
// A rejected field is recorded and the model error is returned unchanged.
func Open(ctx context.Context, name, city string, areaSqM float64, openToPublic bool, opts ...Option) (GalleryService, error) {
	s := newGalleryService(nil, opts...)
	ctx, span, log := s.start(ctx, "gallery.open", attribute.String("gallery.name", name))
	defer span.End()

	g, err := model.New(name, city, areaSqM, openToPublic)
	if err != nil {
		s.rejected(ctx, span, log, err)
		return nil, err
	}
	s.g = g
	log.InfoContext(ctx, "gallery_opened", "gallery", name, "city", city, "area_sq_m", areaSqM, "open_to_public", openToPublic)
	return s, nil
}

func (s *galleryService) Rename(ctx context.Context, name string) error {
	ctx, span, log := s.start(ctx, "gallery.rename", attribute.String("gallery.new_name", name))
	defer span.End()

	old := s.g.Name()
	if err := s.g.SetName(name); err != nil {
		s.rejected(ctx, span, log, err)
		return err
	}
	log.InfoContext(ctx, "gallery_renamed", "from", old, "to", name)
	return nil
}

func (s *galleryService) Relocate(ctx context.Context, city string) error {
	ctx, span, log := s.start(ctx, "gallery.relocate", attribute.String("gallery.city", city))
	defer span.End()

	if err := s.g.SetCity(city); err != nil {
		s.rejected(ctx, span, log, err)
		return err
	}
	log.InfoContext(ctx, "gallery_relocated", "city", city)
	return nil
}

func (s *galleryService) Resize(ctx context.Context, areaSqM float64) error {
	ctx, span, log := s.start(ctx, "gallery.resize", attribute.Float64("gallery.area_sq_m", areaSqM))
	defer span.End()

	if err := s.g.SetAreaSqM(areaSqM); err != nil {
		s.rejected(ctx, span, log, err)
		return err
	}
	log.InfoContext(ctx, "gallery_resized", "area_sq_m", areaSqM)
	return nil
}

func (s *galleryService) SetOpenToPublic(ctx context.Context, open bool) {
	ctx, span, log := s.start(ctx, "gallery.set_open_to_public", attribute.Bool("gallery.open_to_public", open))
	defer span.End()

	s.g.SetOpenToPublic(open)
	log.InfoContext(ctx, "gallery_visibility_changed", "open_to_public", open)
}

func (s *galleryService) AddExhibition(ctx context.Context, name string, year int) string {
	ctx, span, log := s.start(ctx, "gallery.add_exhibition",
		attribute.String("exhibition.name", name),
		attribute.Int("exhibition.year", year),
	)
	defer span.End()

	outcome := metrics.OutcomeAdded
	if _, ok := s.g.Exhibition(name); ok {
		outcome = metrics.OutcomeExists
	}
	msg := s.g.AddExhibition(name, year)
	s.exhibitionOp(ctx, span, log, metrics.OpAdd, outcome, "exhibition", name, "year", year)
	return msg
}

func (s *galleryService) RemoveExhibition(ctx context.Context, name string) string {
	ctx, span, log := s.start(ctx, "gallery.remove_exhibition", attribute.String("exhibition.name", name))
	defer span.End()

	outcome := metrics.OutcomeNotFound
	if _, ok := s.g.Exhibition(name); ok {
		outcome = metrics.OutcomeRemoved
	}
	msg := s.g.RemoveExhibition(name)
	s.exhibitionOp(ctx, span, log, metrics.OpRemove, outcome, "exhibition", name)
	return msg
}

func (s *galleryService) ListExhibitions(ctx context.Context) string {
	ctx, span, log := s.start(ctx, "gallery.list_exhibitions")
	defer span.End()

	outcome := metrics.OutcomeClosed
	if s.g.OpenToPublic() {
		outcome = metrics.OutcomeListed
	}
	out := s.g.ListExhibitions()
	s.exhibitionOp(ctx, span, log, metrics.OpList, outcome, "count", s.g.Len())
	return out
}

func (s *galleryService) Snapshot(ctx context.Context) model.Snapshot {
	_, span := s.tracer.Start(ctx, "gallery.snapshot")
	defer span.End()
	return s.g.Snapshot()
}

// start opens a span and returns a logger tagged with a fresh operation id.
func (s *galleryService) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span, *slog.Logger) {
	opID := uuid.NewString()
	attrs = append(attrs, attribute.String("gallery.operation_id", opID))
	ctx, span := s.tracer.Start(ctx, op, trace.WithAttributes(attrs...))
	return ctx, span, s.log.With("op", op, "operation_id", opID)
}

func (s *galleryService) rejected(ctx context.Context, span trace.Span, log *slog.Logger, err error) {
	field := model.FieldOf(err)
	s.rec.ValidationRejected(field)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	log.WarnContext(ctx, "validation_rejected", "field", field, "error", err.Error())
}

func (s *galleryService) exhibitionOp(ctx context.Context, span trace.Span, log *slog.Logger, op, outcome string, args ...any) {
	s.rec.ExhibitionOp(op, outcome)
	span.SetAttributes(attribute.String("exhibition.outcome", outcome))
	log.InfoContext(ctx, "exhibition_"+op, append([]any{"outcome", outcome}, args...)...)
}
