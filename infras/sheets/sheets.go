package sheets

//go:generate go run go.uber.org/mock/mockgen -source=./sheets.go -destination=./mocks/sheets_mock.go -package=mocks

import (
	"context"
	"deliveryform/config"
	"deliveryform/infras/otel"
	"deliveryform/shared/constant"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	gSheets "google.golang.org/api/sheets/v4"
)

const (
	otelAttrRange = "sheets.range"

	// RAW keeps cell text verbatim so dates read back as written.
	valueInputOption = "RAW"
	insertDataOption = "INSERT_ROWS"
)

// Client is the range-based API of one spreadsheet. Ranges use A1 notation,
// e.g. "Sheet1!A:N".
type Client interface {
	Get(ctx context.Context, rangeA1 string) ([][]string, error)
	Update(ctx context.Context, rangeA1 string, rows [][]string) error
	Append(ctx context.Context, rangeA1 string, rows [][]string) error
}

type clientImpl struct {
	service       *gSheets.Service
	spreadsheetID string
	otel          otel.Otel
}

func New(config *config.Config, otel otel.Otel) Client {
	ctx := context.Background()

	options := []option.ClientOption{option.WithScopes(gSheets.SpreadsheetsScope)}

	switch {
	case config.Sheets.CredentialsJSON != "":
		options = append(options, option.WithCredentialsJSON([]byte(config.Sheets.CredentialsJSON)))
	case config.Sheets.CredentialsFile != "":
		options = append(options, option.WithCredentialsFile(config.Sheets.CredentialsFile))
	default:
		log.Warn().Msg("No Google credentials configured, using application default credentials")
	}

	service, err := gSheets.NewService(ctx, options...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Google Sheets client")
	}

	log.Info().Str("spreadsheet", config.Sheets.SpreadsheetID).Msg("Google Sheets client initialized")

	return &clientImpl{
		service:       service,
		spreadsheetID: config.Sheets.SpreadsheetID,
		otel:          otel,
	}
}

func (c *clientImpl) Get(ctx context.Context, rangeA1 string) (rows [][]string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSheetsScopeName, constant.OtelSheetsScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrRange, rangeA1)

	res, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, rangeA1).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", rangeA1, err)
	}

	rows = make([][]string, len(res.Values))
	for i, row := range res.Values {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = fmt.Sprint(cell)
		}
	}

	return rows, nil
}

func (c *clientImpl) Update(ctx context.Context, rangeA1 string, rows [][]string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSheetsScopeName, constant.OtelSheetsScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrRange, rangeA1)

	_, err = c.service.Spreadsheets.Values.Update(c.spreadsheetID, rangeA1, toValueRange(rows)).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", rangeA1, err)
	}

	return nil
}

func (c *clientImpl) Append(ctx context.Context, rangeA1 string, rows [][]string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSheetsScopeName, constant.OtelSheetsScopeName+".Append")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrRange, rangeA1)

	_, err = c.service.Spreadsheets.Values.Append(c.spreadsheetID, rangeA1, toValueRange(rows)).
		ValueInputOption(valueInputOption).
		InsertDataOption(insertDataOption).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to range %s: %w", rangeA1, err)
	}

	return nil
}

func toValueRange(rows [][]string) *gSheets.ValueRange {
	values := make([][]any, len(rows))

	for i, row := range rows {
		values[i] = make([]any, len(row))
		for j, cell := range row {
			values[i][j] = cell
		}
	}

	return &gSheets.ValueRange{Values: values}
}
