package repository

import (
	"context"
	"deliveryform/infras/otel"
	"deliveryform/infras/sheets"
	"deliveryform/internal/domains/delivery/availability"
	"deliveryform/internal/domains/delivery/model"
	"deliveryform/shared/constant"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	ColumnSubmittedAt          = "Submission Date Time"
	ColumnOrderNumber          = "Order Number"
	ColumnName                 = "Name"
	ColumnEmail                = "Email"
	ColumnPhoneNumber          = "Phone Number"
	ColumnFullAddress          = "Delivery Address"
	ColumnStreet               = "Street"
	ColumnStreet2              = "Street 2"
	ColumnCity                 = "City"
	ColumnState                = "State"
	ColumnPostalCode           = "Postal Code"
	ColumnDeliveryDate         = "Delivery Date"
	ColumnContactlessDelivery  = "Contactless Delivery"
	ColumnDeliveryInstructions = "Delivery Instructions"

	contactlessYes = "Yes"
	contactlessNo  = "No"

	// Sheets caps a grid at 18278 columns (ZZZ); rows never get near that.
	lastColumn = "ZZZ"
)

// Columns is the header written to an empty sheet.
var Columns = []string{
	ColumnSubmittedAt,
	ColumnOrderNumber,
	ColumnName,
	ColumnEmail,
	ColumnPhoneNumber,
	ColumnFullAddress,
	ColumnStreet,
	ColumnStreet2,
	ColumnCity,
	ColumnState,
	ColumnPostalCode,
	ColumnDeliveryDate,
	ColumnContactlessDelivery,
	ColumnDeliveryInstructions,
}

type sheetsImpl struct {
	client    sheets.Client
	sheetName string
	loc       *time.Location
	otel      otel.Otel
}

// NewSheets stores one booking per spreadsheet row. Columns are located by
// their header text, so extra or reordered columns are kept as they are.
func NewSheets(client sheets.Client, sheetName string, loc *time.Location, otel otel.Otel) Booking {
	return &sheetsImpl{
		client:    client,
		sheetName: sheetName,
		loc:       loc,
		otel:      otel,
	}
}

func (s *sheetsImpl) fullRange() string {
	return fmt.Sprintf("%s!A:%s", s.sheetName, lastColumn)
}

// rowRange addresses a 1-based sheet row, e.g. "Sheet1!A5".
func (s *sheetsImpl) rowRange(row int) string {
	return fmt.Sprintf("%s!A%d", s.sheetName, row)
}

func (s *sheetsImpl) GetAll(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sheets.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, err := s.client.Get(ctx, s.fullRange())
	if err != nil {
		return nil, fmt.Errorf("failed to read delivery ledger: %w", err)
	}

	if len(rows) == 0 {
		return []model.Booking{}, nil
	}

	header := rows[0]
	bookings = make([]model.Booking, 0, len(rows)-1)

	for idx, row := range rows[1:] {
		booking, err := decodeRow(header, row, s.loc)
		if err != nil {
			log.Warn().Err(err).Int("row", idx+2).Msg("skipping unreadable ledger row")

			continue
		}

		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (s *sheetsImpl) Get(ctx context.Context, orderNumber, email string) (model.Booking, error) {
	bookings, err := s.GetAll(ctx)
	if err != nil {
		return model.Booking{}, err
	}

	key := model.Booking{OrderNumber: orderNumber, Email: email}
	for _, booking := range bookings {
		if booking.SameKey(key) {
			return booking, nil
		}
	}

	return model.Booking{}, nil
}

func (s *sheetsImpl) GetByDate(ctx context.Context, date time.Time) ([]model.Booking, error) {
	bookings, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	key := date.In(s.loc).Format(constant.DateLayout)

	return slices.DeleteFunc(bookings, func(b model.Booking) bool {
		return b.DeliveryDate.In(s.loc).Format(constant.DateLayout) != key
	}), nil
}

func (s *sheetsImpl) CountByDate(ctx context.Context, from, to time.Time) (availability.Counts, error) {
	bookings, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return countBetween(bookings, from, to, s.loc), nil
}

// Upsert overwrites the row with the same key in place or appends a new one.
// Only the header and the affected row are written, so a failed write never
// touches other bookings. Concurrent writers are not coordinated here.
func (s *sheetsImpl) Upsert(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sheets.Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rows, err := s.client.Get(ctx, s.fullRange())
	if err != nil {
		return fmt.Errorf("failed to read delivery ledger: %w", err)
	}

	if len(rows) == 0 {
		scope.SetAttribute("ledger.replaced", false)

		if err = s.client.Update(ctx, s.rowRange(1), [][]string{Columns, encodeRow(Columns, booking, s.loc)}); err != nil {
			return fmt.Errorf("failed to write delivery ledger: %w", err)
		}

		return nil
	}

	header := mergeHeader(rows[0])
	if len(header) != len(rows[0]) {
		if err = s.client.Update(ctx, s.rowRange(1), [][]string{header}); err != nil {
			return fmt.Errorf("failed to extend delivery ledger header: %w", err)
		}
	}

	encoded := encodeRow(header, booking, s.loc)

	for idx, row := range rows[1:] {
		if !rowHasKey(header, row, booking) {
			continue
		}

		scope.SetAttribute("ledger.replaced", true)

		// body index 0 is sheet row 2
		if err = s.client.Update(ctx, s.rowRange(idx+2), [][]string{encoded}); err != nil {
			return fmt.Errorf("failed to write delivery ledger row: %w", err)
		}

		return nil
	}

	scope.SetAttribute("ledger.replaced", false)

	if err = s.client.Append(ctx, s.fullRange(), [][]string{encoded}); err != nil {
		return fmt.Errorf("failed to append to delivery ledger: %w", err)
	}

	return nil
}

// mergeHeader keeps the existing column order and appends any known column
// the sheet does not have yet.
func mergeHeader(existing []string) []string {
	header := slices.Clone(existing)

	for _, column := range Columns {
		if !slices.Contains(header, column) {
			header = append(header, column)
		}
	}

	return header
}

func cell(header, row []string, column string) string {
	idx := slices.Index(header, column)
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func rowHasKey(header, row []string, booking model.Booking) bool {
	return cell(header, row, ColumnOrderNumber) == booking.OrderNumber &&
		strings.EqualFold(cell(header, row, ColumnEmail), booking.Email)
}

func encodeRow(header []string, booking model.Booking, loc *time.Location) []string {
	contactless := contactlessNo
	if booking.ContactlessDelivery {
		contactless = contactlessYes
	}

	values := map[string]string{
		ColumnSubmittedAt:          booking.SubmittedAt.In(loc).Format(constant.DateTimeLayout),
		ColumnOrderNumber:          booking.OrderNumber,
		ColumnName:                 booking.Name,
		ColumnEmail:                booking.Email,
		ColumnPhoneNumber:          booking.PhoneNumber,
		ColumnFullAddress:          booking.FullAddress,
		ColumnStreet:               booking.Street,
		ColumnStreet2:              booking.Street2,
		ColumnCity:                 booking.City,
		ColumnState:                booking.State,
		ColumnPostalCode:           booking.PostalCode,
		ColumnDeliveryDate:         booking.DeliveryDate.In(loc).Format(constant.DateLayout),
		ColumnContactlessDelivery:  contactless,
		ColumnDeliveryInstructions: booking.DeliveryInstructions,
	}

	row := make([]string, len(header))
	for idx, column := range header {
		row[idx] = values[column]
	}

	return row
}

func decodeRow(header, row []string, loc *time.Location) (model.Booking, error) {
	deliveryDate, err := time.ParseInLocation(constant.DateLayout, cell(header, row, ColumnDeliveryDate), loc)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid delivery date: %w", err)
	}

	booking := model.Booking{
		OrderNumber: cell(header, row, ColumnOrderNumber),
		Name:        cell(header, row, ColumnName),
		Email:       cell(header, row, ColumnEmail),
		PhoneNumber: cell(header, row, ColumnPhoneNumber),
		FullAddress: cell(header, row, ColumnFullAddress),
		Address: model.Address{
			Street:     cell(header, row, ColumnStreet),
			Street2:    cell(header, row, ColumnStreet2),
			City:       cell(header, row, ColumnCity),
			State:      cell(header, row, ColumnState),
			PostalCode: cell(header, row, ColumnPostalCode),
		},
		DeliveryDate:         deliveryDate,
		ContactlessDelivery:  strings.EqualFold(cell(header, row, ColumnContactlessDelivery), contactlessYes),
		DeliveryInstructions: cell(header, row, ColumnDeliveryInstructions),
	}

	// Older rows hold only the submission date.
	submitted := cell(header, row, ColumnSubmittedAt)
	if at, err := time.Parse(constant.DateTimeLayout, submitted); err == nil {
		booking.SubmittedAt = at.In(loc)
	} else if at, err := time.ParseInLocation(constant.DateLayout, submitted, loc); err == nil {
		booking.SubmittedAt = at
	}

	return booking, nil
}
