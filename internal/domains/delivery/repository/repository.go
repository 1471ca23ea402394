package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"deliveryform/config"
	"deliveryform/infras/otel"
	"deliveryform/infras/postgres"
	"deliveryform/infras/sheets"
	"deliveryform/internal/domains/delivery/availability"
	"deliveryform/internal/domains/delivery/model"
	"deliveryform/shared/constant"
	"deliveryform/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

// Booking is the delivery ledger. Get returns a zero Booking when nothing
// matches. Upsert replaces the record with the same (order number, email)
// key or adds a new one.
type Booking interface {
	Get(ctx context.Context, orderNumber, email string) (model.Booking, error)
	GetAll(ctx context.Context) ([]model.Booking, error)
	GetByDate(ctx context.Context, date time.Time) ([]model.Booking, error)
	CountByDate(ctx context.Context, from, to time.Time) (availability.Counts, error)
	Upsert(ctx context.Context, booking model.Booking) error
}

// New picks the ledger driver from configuration.
func New(cfg *config.Config, otel otel.Otel) Booking {
	switch cfg.Ledger.Driver {
	case constant.LedgerDriverPostgres:
		log.Info().Str("driver", cfg.Ledger.Driver).Msg("Using relational delivery ledger")

		return NewPostgres(postgres.New(cfg), timezone.GetLocation(), otel)
	default:
		log.Info().Str("driver", constant.LedgerDriverSheets).Msg("Using spreadsheet delivery ledger")

		return NewSheets(sheets.New(cfg, otel), cfg.Sheets.SheetName, timezone.GetLocation(), otel)
	}
}

func countBetween(bookings []model.Booking, from, to time.Time, loc *time.Location) availability.Counts {
	window := availability.Window{Start: from, End: to}
	counts := availability.Counts{}

	for _, booking := range bookings {
		day := booking.DeliveryDate.In(loc)
		if window.Contains(day) {
			counts[day.Format(constant.DateLayout)]++
		}
	}

	return counts
}
