package validator_test

import (
	"deliveryform/shared/failure"
	"deliveryform/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nestedTestStruct struct {
	City string `json:"city" validate:"required"`
}

type validTestStruct struct {
	Name     string           `json:"name"     validate:"required"`
	Email    string           `json:"email"    validate:"required,email"`
	Date     string           `json:"date"     validate:"required,civildate"`
	Category string           `json:"category" validate:"oneof=Yes No"`
	Address  nestedTestStruct `json:"address"`
}

func validData() *validTestStruct {
	return &validTestStruct{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Date:     "2024-06-12",
		Category: "Yes",
		Address:  nestedTestStruct{City: "Springfield"},
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*validTestStruct)
		expectError bool
	}{
		{name: "valid struct", mutate: func(*validTestStruct) {}},
		{name: "missing required field", mutate: func(d *validTestStruct) { d.Name = "" }, expectError: true},
		{name: "invalid email", mutate: func(d *validTestStruct) { d.Email = "invalid-email" }, expectError: true},
		{name: "invalid date", mutate: func(d *validTestStruct) { d.Date = "12/06/2024" }, expectError: true},
		{name: "date with time", mutate: func(d *validTestStruct) { d.Date = "2024-06-12T10:00:00Z" }, expectError: true},
		{name: "invalid oneof", mutate: func(d *validTestStruct) { d.Category = "maybe" }, expectError: true},
		{name: "missing nested field", mutate: func(d *validTestStruct) { d.Address.City = "" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validData()
			tt.mutate(data)

			err := validator.ValidateStruct(data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFields_ReportsEveryField(t *testing.T) {
	data := &validTestStruct{Category: "Yes"}

	err := validator.ValidateFields(data)
	require.Error(t, err)
	assert.True(t, failure.IsMissingField(err))

	fields := failure.GetFields(err)
	names := []string{}
	for _, field := range fields {
		names = append(names, field.Field)
	}

	assert.ElementsMatch(t, []string{"name", "email", "date", "address.city"}, names)

	for _, field := range fields {
		assert.Contains(t, field.Message, "is required")
	}
}

func TestValidateFields_Valid(t *testing.T) {
	assert.NoError(t, validator.ValidateFields(validData()))
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid email", field: "test@example.com", tag: "email"},
		{name: "invalid email", field: "invalid-email", tag: "email", expectError: true},
		{name: "valid civil date", field: "2024-02-29", tag: "civildate"},
		{name: "impossible civil date", field: "2023-02-29", tag: "civildate", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"name":"Jane","email":"jane@example.com","date":"2024-06-12","category":"No","address":{"city":"X"}}`,
		},
		{
			name:        "invalid email",
			jsonBody:    `{"name":"Jane","email":"nope","date":"2024-06-12","category":"No","address":{"city":"X"}}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Jane","email":}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data validTestStruct
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecode_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "truncated object", body: `{"name":"Jane","email":}`},
		{name: "wrong type", body: `{"name":42}`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data validTestStruct
			err := validator.Decode(strings.NewReader(tt.body), &data)

			require.Error(t, err)
			assert.ErrorIs(t, err, failure.InvalidJSONBody)
			assert.Equal(t, "request body must be valid JSON", err.Error())
			assert.Equal(t, 400, failure.GetCode(err))
			assert.NotContains(t, err.Error(), "invalid character")
		})
	}
}

func TestValidationMessages(t *testing.T) {
	err := validator.ValidateStruct(&validTestStruct{Category: "Yes"})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "is required")
}
