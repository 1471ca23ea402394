package repository_test

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "deliveryform/infras/otel/mocks"
	sheetsMocks "deliveryform/infras/sheets/mocks"
	"deliveryform/internal/domains/delivery/model"
	"deliveryform/internal/domains/delivery/repository"
)

// memorySheet keeps one grid in memory. Update writes from the row named by
// "Sheet!A<n>"; failWrite rejects every write.
type memorySheet struct {
	rows      [][]string
	failWrite error
}

func (m *memorySheet) Get(_ context.Context, _ string) ([][]string, error) {
	out := make([][]string, len(m.rows))
	for i, row := range m.rows {
		out[i] = slices.Clone(row)
	}

	return out, nil
}

func (m *memorySheet) Update(_ context.Context, rangeA1 string, rows [][]string) error {
	if m.failWrite != nil {
		return m.failWrite
	}

	_, cellRef, found := strings.Cut(rangeA1, "!A")
	if !found {
		return errors.New("unexpected range " + rangeA1)
	}

	start, err := strconv.Atoi(cellRef)
	if err != nil || start < 1 {
		return errors.New("unexpected range " + rangeA1)
	}

	for i, row := range rows {
		idx := start - 1 + i
		for len(m.rows) <= idx {
			m.rows = append(m.rows, []string{})
		}

		m.rows[idx] = slices.Clone(row)
	}

	return nil
}

func (m *memorySheet) Append(_ context.Context, _ string, rows [][]string) error {
	if m.failWrite != nil {
		return m.failWrite
	}

	m.rows = append(m.rows, rows...)

	return nil
}

func newYork(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	return loc
}

func sampleBooking(loc *time.Location) model.Booking {
	address := model.Address{
		Street:     "12 Main St",
		Street2:    "Apt 4",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
	}

	return model.Booking{
		OrderNumber:          "A-100",
		Name:                 "Sam Lee",
		Email:                "sam@example.com",
		PhoneNumber:          "555-0100",
		FullAddress:          address.Full(),
		Address:              address,
		DeliveryDate:         time.Date(2024, 6, 12, 0, 0, 0, 0, loc),
		ContactlessDelivery:  true,
		DeliveryInstructions: "Leave at the door",
		SubmittedAt:          time.Date(2024, 6, 10, 14, 0, 0, 0, loc),
	}
}

func TestSheets_UpsertThenGetAll(t *testing.T) {
	loc := newYork(t)
	sheet := &memorySheet{}
	repo := repository.NewSheets(sheet, "Sheet1", loc, otelMocks.NewOtel())
	ctx := context.Background()

	booking := sampleBooking(loc)
	require.NoError(t, repo.Upsert(ctx, booking))

	require.Len(t, sheet.rows, 2)
	assert.Equal(t, repository.Columns, sheet.rows[0])
	assert.Contains(t, sheet.rows[1], "2024-06-12")
	assert.Contains(t, sheet.rows[1], "Yes")

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, booking.OrderNumber, got[0].OrderNumber)
	assert.Equal(t, booking.Name, got[0].Name)
	assert.Equal(t, booking.Email, got[0].Email)
	assert.Equal(t, booking.Address, got[0].Address)
	assert.Equal(t, booking.FullAddress, got[0].FullAddress)
	assert.True(t, booking.DeliveryDate.Equal(got[0].DeliveryDate))
	assert.True(t, booking.SubmittedAt.Equal(got[0].SubmittedAt))
	assert.True(t, got[0].ContactlessDelivery)
	assert.Equal(t, booking.DeliveryInstructions, got[0].DeliveryInstructions)
}

func TestSheets_UpsertReplacesSameKey(t *testing.T) {
	loc := newYork(t)
	sheet := &memorySheet{}
	repo := repository.NewSheets(sheet, "Sheet1", loc, otelMocks.NewOtel())
	ctx := context.Background()

	first := sampleBooking(loc)
	require.NoError(t, repo.Upsert(ctx, first))

	second := first
	second.Email = "SAM@example.com"
	second.DeliveryDate = time.Date(2024, 6, 13, 0, 0, 0, 0, loc)
	second.ContactlessDelivery = false
	require.NoError(t, repo.Upsert(ctx, second))

	other := first
	other.OrderNumber = "A-101"
	require.NoError(t, repo.Upsert(ctx, other))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "A-100", got[0].OrderNumber)
	assert.True(t, second.DeliveryDate.Equal(got[0].DeliveryDate))
	assert.False(t, got[0].ContactlessDelivery)
	assert.Equal(t, "A-101", got[1].OrderNumber)
}

func TestSheets_UpsertIsIdempotent(t *testing.T) {
	loc := newYork(t)
	sheet := &memorySheet{}
	repo := repository.NewSheets(sheet, "Sheet1", loc, otelMocks.NewOtel())
	ctx := context.Background()

	booking := sampleBooking(loc)
	require.NoError(t, repo.Upsert(ctx, booking))

	once := slices.Clone(sheet.rows)

	require.NoError(t, repo.Upsert(ctx, booking))
	assert.Equal(t, once, sheet.rows)
}

func TestSheets_KeepsForeignColumnsAndRows(t *testing.T) {
	loc := newYork(t)
	sheet := &memorySheet{
		rows: [][]string{
			{"Order Number", "Email", "Delivery Date", "Notes"},
			{"LEGACY-1", "old@example.com", "2024-06-12", "call first"},
			{"BROKEN-1", "broken@example.com", "next tuesday", "typo"},
		},
	}
	repo := repository.NewSheets(sheet, "Sheet1", loc, otelMocks.NewOtel())
	ctx := context.Background()

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "LEGACY-1", got[0].OrderNumber)

	require.NoError(t, repo.Upsert(ctx, sampleBooking(loc)))

	header := sheet.rows[0]
	assert.Equal(t, []string{"Order Number", "Email", "Delivery Date", "Notes"}, header[:4])

	for _, column := range repository.Columns {
		assert.Contains(t, header, column)
	}

	require.Len(t, sheet.rows, 4)
	assert.Equal(t, "call first", sheet.rows[1][3])
	assert.Equal(t, "next tuesday", sheet.rows[2][2])
	assert.Equal(t, "A-100", sheet.rows[3][0])
	assert.Empty(t, sheet.rows[3][3])
}

func TestSheets_CountAndGetByDate(t *testing.T) {
	loc := newYork(t)
	sheet := &memorySheet{}
	repo := repository.NewSheets(sheet, "Sheet1", loc, otelMocks.NewOtel())
	ctx := context.Background()

	dates := []time.Time{
		time.Date(2024, 6, 10, 0, 0, 0, 0, loc),
		time.Date(2024, 6, 12, 0, 0, 0, 0, loc),
		time.Date(2024, 6, 12, 0, 0, 0, 0, loc),
		time.Date(2024, 6, 20, 0, 0, 0, 0, loc),
	}

	for i, date := range dates {
		booking := sampleBooking(loc)
		booking.OrderNumber = "A-" + string(rune('0'+i))
		booking.DeliveryDate = date
		require.NoError(t, repo.Upsert(ctx, booking))
	}

	counts, err := repo.CountByDate(ctx, time.Date(2024, 6, 10, 0, 0, 0, 0, loc), time.Date(2024, 6, 13, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, 1, counts["2024-06-10"])
	assert.Equal(t, 2, counts["2024-06-12"])
	assert.NotContains(t, counts, "2024-06-20")

	onDay, err := repo.GetByDate(ctx, time.Date(2024, 6, 12, 15, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Len(t, onDay, 2)
}

func TestSheets_Errors(t *testing.T) {
	loc := newYork(t)
	ctx := context.Background()

	existing := [][]string{
		repository.Columns,
		make([]string, len(repository.Columns)),
	}

	tests := []struct {
		name      string
		setupMock func(client *sheetsMocks.MockClient)
	}{
		{
			name: "read fails",
			setupMock: func(client *sheetsMocks.MockClient) {
				client.EXPECT().Get(gomock.Any(), "Sheet1!A:ZZZ").Return(nil, errors.New("quota exceeded"))
			},
		},
		{
			name: "first write fails",
			setupMock: func(client *sheetsMocks.MockClient) {
				client.EXPECT().Get(gomock.Any(), gomock.Any()).Return([][]string{}, nil)
				client.EXPECT().Update(gomock.Any(), "Sheet1!A1", gomock.Any()).Return(errors.New("permission denied"))
			},
		},
		{
			name: "header extension fails",
			setupMock: func(client *sheetsMocks.MockClient) {
				client.EXPECT().Get(gomock.Any(), gomock.Any()).Return([][]string{{"Order Number", "Email"}}, nil)
				client.EXPECT().Update(gomock.Any(), "Sheet1!A1", gomock.Any()).Return(errors.New("permission denied"))
			},
		},
		{
			name: "append fails",
			setupMock: func(client *sheetsMocks.MockClient) {
				client.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				client.EXPECT().Append(gomock.Any(), "Sheet1!A:ZZZ", gomock.Any()).Return(errors.New("quota exceeded"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := sheetsMocks.NewMockClient(ctrl)
			tt.setupMock(client)

			repo := repository.NewSheets(client, "Sheet1", loc, otelMocks.NewOtel())

			assert.Error(t, repo.Upsert(ctx, sampleBooking(loc)))
		})
	}
}

func TestSheets_UpsertWritesOnlyTheMatchingRow(t *testing.T) {
	loc := newYork(t)
	ctx := context.Background()

	seed := &memorySheet{}
	seedRepo := repository.NewSheets(seed, "Sheet1", loc, otelMocks.NewOtel())

	first := sampleBooking(loc)
	second := sampleBooking(loc)
	second.OrderNumber = "A-101"

	require.NoError(t, seedRepo.Upsert(ctx, first))
	require.NoError(t, seedRepo.Upsert(ctx, second))

	ctrl := gomock.NewController(t)
	client := sheetsMocks.NewMockClient(ctrl)
	client.EXPECT().Get(gomock.Any(), "Sheet1!A:ZZZ").Return(seed.rows, nil)
	client.EXPECT().Update(gomock.Any(), "Sheet1!A3", gomock.Len(1)).Return(nil)

	moved := second
	moved.DeliveryDate = time.Date(2024, 6, 13, 0, 0, 0, 0, loc)

	repo := repository.NewSheets(client, "Sheet1", loc, otelMocks.NewOtel())
	require.NoError(t, repo.Upsert(ctx, moved))
}

func TestSheets_FailedWriteKeepsExistingRows(t *testing.T) {
	loc := newYork(t)
	ctx := context.Background()

	sheet := &memorySheet{}
	repo := repository.NewSheets(sheet, "Sheet1", loc, otelMocks.NewOtel())

	booking := sampleBooking(loc)
	require.NoError(t, repo.Upsert(ctx, booking))

	before := slices.Clone(sheet.rows)

	sheet.failWrite = errors.New("quota exceeded")

	newcomer := sampleBooking(loc)
	newcomer.OrderNumber = "A-200"
	require.Error(t, repo.Upsert(ctx, newcomer))

	resubmitted := booking
	resubmitted.DeliveryDate = time.Date(2024, 6, 13, 0, 0, 0, 0, loc)
	require.Error(t, repo.Upsert(ctx, resubmitted))

	assert.Equal(t, before, sheet.rows)

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, booking.DeliveryDate.Equal(got[0].DeliveryDate))

	counts, err := repo.CountByDate(ctx, time.Date(2024, 6, 10, 0, 0, 0, 0, loc), time.Date(2024, 6, 13, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, 1, counts["2024-06-12"])
}

func TestSheets_GetByKey(t *testing.T) {
	loc := newYork(t)
	repo := repository.NewSheets(&memorySheet{}, "Sheet1", loc, otelMocks.NewOtel())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, sampleBooking(loc)))

	found, err := repo.Get(ctx, "A-100", "Sam@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "Sam Lee", found.Name)

	missing, err := repo.Get(ctx, "A-999", "sam@example.com")
	require.NoError(t, err)
	assert.Empty(t, missing.OrderNumber)
}
