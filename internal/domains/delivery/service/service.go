package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"deliveryform/config"
	"deliveryform/infras/otel"
	"deliveryform/internal/domains/delivery/availability"
	"deliveryform/internal/domains/delivery/model"
	"deliveryform/internal/domains/delivery/model/dto"
	"deliveryform/internal/domains/delivery/repository"
	"deliveryform/internal/domains/notification"
	"deliveryform/shared"
	"deliveryform/shared/cache"
	"deliveryform/shared/constant"
	"deliveryform/shared/failure"
	"deliveryform/shared/metrics"
	"deliveryform/shared/timezone"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheCounts = "delivery:counts"
)

// Clock reports the current instant.
type Clock func() time.Time

type Delivery interface {
	Submit(ctx context.Context, req dto.BookingRequest) (model.Booking, error)
	UnavailableDates(ctx context.Context) (dto.UnavailableDatesResponse, error)
	Availability(ctx context.Context) (dto.AvailabilityResponse, error)
	Deliveries(ctx context.Context) ([]dto.DeliveryResponse, error)
	Calendar() availability.Calendar
	Window() availability.Window
}

type serviceImpl struct {
	repo     repository.Booking
	notifier notification.Notifier
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	calendar availability.Calendar
	now      Clock

	// serializes read, validate and write of submissions in this process
	mu sync.Mutex
}

func New(repo repository.Booking, notifier notification.Notifier, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Delivery {
	return NewWithClock(repo, notifier, cfg, cache, otel, timezone.Now)
}

func NewWithClock(
	repo repository.Booking,
	notifier notification.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	now Clock,
) Delivery {
	return &serviceImpl{
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		calendar: CalendarFromConfig(cfg),
		now:      now,
	}
}

// CalendarFromConfig builds the booking calendar for the configured timezone.
func CalendarFromConfig(cfg *config.Config) availability.Calendar {
	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil || cfg.App.Timezone == "" {
		loc = timezone.GetLocation()
	}

	return availability.New(loc, cfg.Delivery.CutoffHour, cfg.Delivery.Capacity, cfg.Delivery.HorizonDays)
}

func (s *serviceImpl) Calendar() availability.Calendar {
	return s.calendar
}

// Window is the booking window at the service clock's current instant.
func (s *serviceImpl) Window() availability.Window {
	return s.calendar.AllowedWindow(s.now())
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.BookingRequest) (booking model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err = s.record(ctx, req)
	if err != nil {
		switch {
		case failure.IsMissingField(err):
			metrics.SubmissionsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		case failure.IsDateWindow(err):
			metrics.SubmissionsTotal.WithLabelValues(metrics.ResultDateWindow).Inc()
		default:
			metrics.SubmissionsTotal.WithLabelValues(metrics.ResultFailed).Inc()
		}

		return model.Booking{}, err
	}

	metrics.SubmissionsTotal.WithLabelValues(metrics.ResultAccepted).Inc()
	shared.InvalidateCaches(ctx, s.cache, cacheCounts)

	// The booking stands even when the confirmation cannot be sent.
	confirmation := notification.Confirmation{
		OrderNumber:  booking.OrderNumber,
		Name:         booking.Name,
		Email:        booking.Email,
		DeliveryDate: booking.DeliveryDate,
		Date:         s.calendar.FormatDate(booking.DeliveryDate),
		Address:      booking.FullAddress,
		Contactless:  booking.ContactlessDelivery,
	}

	if notifyErr := s.notifier.SendConfirmation(ctx, confirmation); notifyErr != nil {
		metrics.NotificationErrorsTotal.WithLabelValues(s.notifier.Driver()).Inc()
		log.Error().Err(notifyErr).Str("order", booking.OrderNumber).Msg("failed to send delivery confirmation")
	}

	return booking, nil
}

// record runs read, validate and write under the submission lock.
func (s *serviceImpl) record(ctx context.Context, req dto.BookingRequest) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	window := s.calendar.AllowedWindow(now)

	counts, err := s.repo.CountByDate(ctx, window.Start, window.End)
	if err != nil {
		metrics.LedgerErrorsTotal.WithLabelValues("count").Inc()
		log.Error().Err(err).Msg("failed to count deliveries")

		return model.Booking{}, fmt.Errorf("failed to count deliveries: %w", err)
	}

	req = req.Trim()

	// A resubmission replaces its earlier booking, so that booking must not
	// count against the date it moves to or stays on.
	if req.OrderNumber != "" && req.Email != "" {
		previous, err := s.repo.Get(ctx, req.OrderNumber, req.Email)
		if err != nil {
			metrics.LedgerErrorsTotal.WithLabelValues("get").Inc()
			log.Error().Err(err).Msg("failed to look up previous booking")

			return model.Booking{}, fmt.Errorf("failed to look up previous booking: %w", err)
		}

		if previous.OrderNumber != "" {
			key := s.calendar.FormatDate(previous.DeliveryDate)
			if counts[key] > 0 {
				counts[key]--
			}
		}
	}

	booking, err := Validate(req, now, counts, s.calendar)
	if err != nil {
		log.Info().Err(err).Str("order", req.OrderNumber).Msg("submission rejected")

		return model.Booking{}, err
	}

	if err = s.repo.Upsert(ctx, booking); err != nil {
		metrics.LedgerErrorsTotal.WithLabelValues("upsert").Inc()
		log.Error().Err(err).Str("order", booking.OrderNumber).Msg("failed to save delivery")

		return model.Booking{}, fmt.Errorf("failed to save delivery: %w", err)
	}

	log.Info().
		Str("order", booking.OrderNumber).
		Str("deliveryDate", s.calendar.FormatDate(booking.DeliveryDate)).
		Msg("delivery booked")

	return booking, nil
}

// counts returns the bookings per date of window, through the cache.
func (s *serviceImpl) counts(ctx context.Context, window availability.Window) (res availability.Counts, err error) {
	cacheKey := shared.BuildCacheKey(cacheCounts, s.calendar.FormatDate(window.Start))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for delivery counts")

		return res, nil
	}

	res, err = s.repo.CountByDate(ctx, window.Start, window.End)
	if err != nil {
		metrics.LedgerErrorsTotal.WithLabelValues("count").Inc()
		log.Error().Err(err).Msg("failed to count deliveries")

		return nil, fmt.Errorf("failed to count deliveries: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save delivery counts to cache")
	}

	return res, nil
}

func (s *serviceImpl) UnavailableDates(ctx context.Context) (res dto.UnavailableDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnavailableDates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.now()

	counts, err := s.counts(ctx, s.calendar.AllowedWindow(now))
	if err != nil {
		return res, err
	}

	res.UnavailableDates = s.format(s.calendar.FullDates(counts, now))

	return res, nil
}

func (s *serviceImpl) Availability(ctx context.Context) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.now()
	window := s.calendar.AllowedWindow(now)

	counts, err := s.counts(ctx, window)
	if err != nil {
		return res, err
	}

	return dto.AvailabilityResponse{
		WindowStart:      s.calendar.FormatDate(window.Start),
		WindowEnd:        s.calendar.FormatDate(window.End),
		Capacity:         s.calendar.Capacity,
		CutoffHour:       s.calendar.CutoffHour,
		UnavailableDates: s.format(s.calendar.FullDates(counts, now)),
		SelectableDates:  s.format(s.calendar.SelectableDates(counts, now)),
	}, nil
}

func (s *serviceImpl) Deliveries(ctx context.Context) (res []dto.DeliveryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Deliveries")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		metrics.LedgerErrorsTotal.WithLabelValues("get_all").Inc()
		log.Error().Err(err).Msg("failed to get deliveries")

		return nil, fmt.Errorf("failed to get deliveries: %w", err)
	}

	res = make([]dto.DeliveryResponse, 0, len(bookings))
	for _, booking := range bookings {
		res = append(res, dto.DeliveryResponse{DeliveryDate: s.calendar.FormatDate(booking.DeliveryDate)})
	}

	return res, nil
}

func (s *serviceImpl) format(dates []time.Time) []string {
	out := make([]string, 0, len(dates))
	for _, date := range dates {
		out = append(out, s.calendar.FormatDate(date))
	}

	return out
}
