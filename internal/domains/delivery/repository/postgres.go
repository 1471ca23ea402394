package repository

import (
	"context"
	"deliveryform/infras/otel"
	"deliveryform/infras/postgres"
	"deliveryform/internal/domains/delivery/availability"
	"deliveryform/internal/domains/delivery/model"
	"deliveryform/shared/constant"
	"deliveryform/shared/logger"
	"fmt"
	"time"
)

// Dates travel as YYYY-MM-DD text both ways so the driver never shifts a
// civil date through UTC.
var (
	selectColumns = fmt.Sprintf(
		"%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, to_char(%s, 'YYYY-MM-DD') AS %s, %s, %s, %s",
		model.FieldOrderNumber, model.FieldName, model.FieldEmail, model.FieldPhoneNumber, model.FieldFullAddress,
		model.FieldStreet, model.FieldStreet2, model.FieldCity, model.FieldState, model.FieldPostalCode,
		model.FieldDeliveryDate, model.FieldDeliveryDate,
		model.FieldContactlessDelivery, model.FieldDeliveryInstructions, model.FieldSubmittedAt,
	)

	upsertQuery = fmt.Sprintf(`INSERT INTO %[1]s (
		order_number, name, email, phone_number, delivery_address, street, street2, city, state, postal_code,
		delivery_date, contactless_delivery, delivery_instructions, submitted_at
	) VALUES (
		:order_number, :name, :email, :phone_number, :delivery_address, :street, :street2, :city, :state, :postal_code,
		CAST(:delivery_date AS DATE), :contactless_delivery, :delivery_instructions, :submitted_at
	)
	ON CONFLICT (order_number, email) DO UPDATE SET
		name = EXCLUDED.name,
		phone_number = EXCLUDED.phone_number,
		delivery_address = EXCLUDED.delivery_address,
		street = EXCLUDED.street,
		street2 = EXCLUDED.street2,
		city = EXCLUDED.city,
		state = EXCLUDED.state,
		postal_code = EXCLUDED.postal_code,
		delivery_date = EXCLUDED.delivery_date,
		contactless_delivery = EXCLUDED.contactless_delivery,
		delivery_instructions = EXCLUDED.delivery_instructions,
		submitted_at = EXCLUDED.submitted_at`, model.TableName)
)

type bookingRow struct {
	OrderNumber          string    `db:"order_number"`
	Name                 string    `db:"name"`
	Email                string    `db:"email"`
	PhoneNumber          string    `db:"phone_number"`
	FullAddress          string    `db:"delivery_address"`
	Street               string    `db:"street"`
	Street2              string    `db:"street2"`
	City                 string    `db:"city"`
	State                string    `db:"state"`
	PostalCode           string    `db:"postal_code"`
	DeliveryDate         string    `db:"delivery_date"`
	ContactlessDelivery  bool      `db:"contactless_delivery"`
	DeliveryInstructions string    `db:"delivery_instructions"`
	SubmittedAt          time.Time `db:"submitted_at"`
}

type countRow struct {
	Day   string `db:"day"`
	Total int    `db:"total"`
}

func toRow(booking model.Booking, loc *time.Location) bookingRow {
	return bookingRow{
		OrderNumber:          booking.OrderNumber,
		Name:                 booking.Name,
		Email:                booking.Email,
		PhoneNumber:          booking.PhoneNumber,
		FullAddress:          booking.FullAddress,
		Street:               booking.Street,
		Street2:              booking.Street2,
		City:                 booking.City,
		State:                booking.State,
		PostalCode:           booking.PostalCode,
		DeliveryDate:         booking.DeliveryDate.In(loc).Format(constant.DateLayout),
		ContactlessDelivery:  booking.ContactlessDelivery,
		DeliveryInstructions: booking.DeliveryInstructions,
		SubmittedAt:          booking.SubmittedAt.UTC(),
	}
}

func (r bookingRow) toModel(loc *time.Location) (model.Booking, error) {
	deliveryDate, err := time.ParseInLocation(constant.DateLayout, r.DeliveryDate, loc)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid delivery date %q: %w", r.DeliveryDate, err)
	}

	return model.Booking{
		OrderNumber: r.OrderNumber,
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		FullAddress: r.FullAddress,
		Address: model.Address{
			Street:     r.Street,
			Street2:    r.Street2,
			City:       r.City,
			State:      r.State,
			PostalCode: r.PostalCode,
		},
		DeliveryDate:         deliveryDate,
		ContactlessDelivery:  r.ContactlessDelivery,
		DeliveryInstructions: r.DeliveryInstructions,
		SubmittedAt:          r.SubmittedAt.In(loc),
	}, nil
}

type postgresImpl struct {
	db   *postgres.Connection
	loc  *time.Location
	otel otel.Otel
}

// NewPostgres stores bookings in the delivery_bookings table. The
// (order_number, email) primary key makes Upsert a single statement.
func NewPostgres(db *postgres.Connection, loc *time.Location, otel otel.Otel) Booking {
	return &postgresImpl{
		db:   db,
		loc:  loc,
		otel: otel,
	}
}

func (p *postgresImpl) selectBookings(ctx context.Context, query string, args map[string]any) ([]model.Booking, error) {
	rows := []bookingRow{}

	prepare, err := p.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &rows, args); err != nil {
		return nil, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	bookings := make([]model.Booking, 0, len(rows))

	for _, row := range rows {
		booking, err := row.toModel(p.loc)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (p *postgresImpl) Get(ctx context.Context, orderNumber, email string) (booking model.Booking, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = :order_number AND lower(%s) = lower(:email)",
		selectColumns, model.TableName, model.FieldOrderNumber, model.FieldEmail)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bookings, err := p.selectBookings(ctx, query, map[string]any{
		"order_number": orderNumber,
		"email":        email,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return model.Booking{}, err
	}

	if len(bookings) == 0 {
		return model.Booking{}, nil
	}

	return bookings[0], nil
}

func (p *postgresImpl) GetAll(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s, %s",
		selectColumns, model.TableName, model.FieldDeliveryDate, model.FieldSubmittedAt)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bookings, err = p.selectBookings(ctx, query, map[string]any{})
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, err
	}

	return bookings, nil
}

func (p *postgresImpl) GetByDate(ctx context.Context, date time.Time) (bookings []model.Booking, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.GetByDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = CAST(:day AS DATE) ORDER BY %s",
		selectColumns, model.TableName, model.FieldDeliveryDate, model.FieldSubmittedAt)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bookings, err = p.selectBookings(ctx, query, map[string]any{
		"day": date.In(p.loc).Format(constant.DateLayout),
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, err
	}

	return bookings, nil
}

func (p *postgresImpl) CountByDate(ctx context.Context, from, to time.Time) (counts availability.Counts, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.CountByDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf(
		"SELECT to_char(%[1]s, 'YYYY-MM-DD') AS day, COUNT(*) AS total FROM %[2]s "+
			"WHERE %[1]s BETWEEN CAST(:from AS DATE) AND CAST(:to AS DATE) GROUP BY %[1]s",
		model.FieldDeliveryDate, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := p.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	rows := []countRow{}

	err = prepare.SelectContext(ctx, &rows, map[string]any{
		"from": from.In(p.loc).Format(constant.DateLayout),
		"to":   to.In(p.loc).Format(constant.DateLayout),
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to count data (%s): %w", model.EntityName, err)
	}

	counts = availability.Counts{}
	for _, row := range rows {
		counts[row.Day] = row.Total
	}

	return counts, nil
}

func (p *postgresImpl) Upsert(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, upsertQuery)

	_, err = p.db.Write.NamedExecContext(ctx, upsertQuery, toRow(booking, p.loc))
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return nil
}
