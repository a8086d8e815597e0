package bookingform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		GuestsCount: "2",
		CheckIn:     "2024-03-01",
		CheckOut:    "2024-03-04",
		CompanyName: " Acme ",
		PhoneNumber: " +998 90 123 45 67 ",
	}
}

func TestParser_Parse(t *testing.T) {
	req, err := NewParser("uz", false).Parse(validForm())
	require.NoError(t, err)

	assert.Equal(t, 2, req.GuestsCount)
	assert.Equal(t, "2024-03-01", req.CheckIn.String())
	assert.Equal(t, "2024-03-04", req.CheckOut.String())
	assert.Equal(t, "Acme", req.CompanyName)
	assert.Equal(t, "+998 90 123 45 67", req.PhoneNumber)
}

func TestParser_Parse_PhoneKeptAsTyped(t *testing.T) {
	for _, phone := range []string{"90 123 45 67", "12345", "+1 555 0100", "call me"} {
		t.Run(phone, func(t *testing.T) {
			form := validForm()
			form.PhoneNumber = phone

			req, err := NewParser("UZ", false).Parse(form)
			require.NoError(t, err)
			assert.Equal(t, phone, req.PhoneNumber)
		})
	}
}

func TestParser_Parse_NormalizedPhone(t *testing.T) {
	form := validForm()
	form.PhoneNumber = "90 123 45 67"

	req, err := NewParser("", true).Parse(form)
	require.NoError(t, err)
	assert.Equal(t, "+998901234567", req.PhoneNumber)

	req, err = NewParser("UZ", true).Parse(validForm())
	require.NoError(t, err)
	assert.Equal(t, "+998901234567", req.PhoneNumber)
}

func TestParser_Parse_NormalizedPhone_Invalid(t *testing.T) {
	for _, phone := range []string{"call me", "+998 12"} {
		t.Run(phone, func(t *testing.T) {
			form := validForm()
			form.PhoneNumber = phone

			_, err := NewParser("UZ", true).Parse(form)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParser_Parse_SameDay(t *testing.T) {
	form := validForm()
	form.CheckOut = form.CheckIn

	_, err := NewParser("UZ", false).Parse(form)
	assert.NoError(t, err)
}

func TestParser_Parse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *Form)
	}{
		{name: "missing guests", modify: func(f *Form) { f.GuestsCount = "" }},
		{name: "zero guests", modify: func(f *Form) { f.GuestsCount = "0" }},
		{name: "negative guests", modify: func(f *Form) { f.GuestsCount = "-1" }},
		{name: "guests not a number", modify: func(f *Form) { f.GuestsCount = "two" }},
		{name: "missing check-in", modify: func(f *Form) { f.CheckIn = "" }},
		{name: "missing check-out", modify: func(f *Form) { f.CheckOut = "  " }},
		{name: "bad date format", modify: func(f *Form) { f.CheckIn = "01/03/2024" }},
		{name: "check-out before check-in", modify: func(f *Form) { f.CheckOut = "2024-02-28" }},
		{name: "blank company", modify: func(f *Form) { f.CompanyName = "   " }},
		{name: "missing phone", modify: func(f *Form) { f.PhoneNumber = "" }},
		{name: "blank phone", modify: func(f *Form) { f.PhoneNumber = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.modify(&form)

			_, err := NewParser("UZ", false).Parse(form)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
