// Package manifest produces the per-day driver manifest and publishes it to
// object storage.
package manifest

import (
	"bytes"
	"cmp"
	"context"
	"deliveryform/infras/otel"
	"deliveryform/infras/s3"
	"deliveryform/internal/domains/delivery/model"
	"deliveryform/internal/domains/delivery/repository"
	"deliveryform/shared/constant"
	"encoding/csv"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	Directory = "manifests"

	contactlessYes = "Yes"
	contactlessNo  = "No"
)

var header = []string{
	"Order Number",
	"Name",
	"Phone Number",
	"Delivery Address",
	"Postal Code",
	"Contactless Delivery",
	"Delivery Instructions",
}

type Result struct {
	Date  string
	Count int
	URL   string
}

type Manifest interface {
	Export(ctx context.Context, date time.Time) (Result, error)
}

type manifestImpl struct {
	repo repository.Booking
	s3   s3.S3
	loc  *time.Location
	otel otel.Otel
}

func New(repo repository.Booking, s3 s3.S3, loc *time.Location, otel otel.Otel) Manifest {
	return &manifestImpl{
		repo: repo,
		s3:   s3,
		loc:  loc,
		otel: otel,
	}
}

// Build renders bookings as CSV ordered by postal code, then street.
func Build(bookings []model.Booking) ([]byte, error) {
	sorted := slices.Clone(bookings)
	slices.SortStableFunc(sorted, func(a, b model.Booking) int {
		return cmp.Or(
			cmp.Compare(a.PostalCode, b.PostalCode),
			cmp.Compare(a.Street, b.Street),
			cmp.Compare(a.OrderNumber, b.OrderNumber),
		)
	})

	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write manifest header: %w", err)
	}

	for _, booking := range sorted {
		contactless := contactlessNo
		if booking.ContactlessDelivery {
			contactless = contactlessYes
		}

		record := []string{
			booking.OrderNumber,
			booking.Name,
			booking.PhoneNumber,
			booking.FullAddress,
			booking.PostalCode,
			contactless,
			booking.DeliveryInstructions,
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write manifest row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush manifest: %w", err)
	}

	return buf.Bytes(), nil
}

// Export publishes the manifest of date as manifests/YYYY-MM-DD.csv. A day
// without bookings removes any manifest published earlier.
func (m *manifestImpl) Export(ctx context.Context, date time.Time) (res Result, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".manifest.Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Date = date.In(m.loc).Format(constant.DateLayout)
	fileName := res.Date + ".csv"

	bookings, err := m.repo.GetByDate(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", res.Date).Msg("failed to get deliveries for manifest")

		return res, fmt.Errorf("failed to get deliveries: %w", err)
	}

	res.Count = len(bookings)
	scope.SetAttribute("manifest.count", res.Count)

	if res.Count == 0 {
		if err = m.s3.Delete(ctx, Directory, fileName); err != nil {
			return res, fmt.Errorf("failed to remove stale manifest: %w", err)
		}

		log.Info().Str("date", res.Date).Msg("no deliveries, manifest removed")

		return res, nil
	}

	data, err := Build(bookings)
	if err != nil {
		return res, err
	}

	res.URL, err = m.s3.Upload(ctx, Directory, fileName, constant.ContentTypeCSV, data)
	if err != nil {
		return res, fmt.Errorf("failed to upload manifest: %w", err)
	}

	log.Info().Str("date", res.Date).Int("count", res.Count).Str("url", res.URL).Msg("manifest exported")

	return res, nil
}
