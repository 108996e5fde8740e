package fieldcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formkit/fieldcheck"
)

func TestValidPhoneNumber(t *testing.T) {
	t.Run("valid phone numbers", func(t *testing.T) {
		validPhones := []string{
			"+44 1234 567 890",
			"01234 567890",
			"01234567890",
			"(01234) 567 890",
			"07700 900 123",
			"+44 123 456 7890",
			"020 7946 0958",
			"+44 20 7946 0958",
		}

		for _, phone := range validPhones {
			assert.True(t, fieldcheck.ValidPhoneNumber(phone), "Phone should be valid: %s", phone)
		}
	})

	t.Run("invalid phone numbers", func(t *testing.T) {
		invalidPhones := []string{
			"",
			"12345",
			"0123",
			"phone",
			"+1 555 123 4567", // not a UK prefix
			"+44 1234 567 8901",
		}

		for _, phone := range invalidPhones {
			assert.False(t, fieldcheck.ValidPhoneNumber(phone), "Phone should be invalid: %s", phone)
		}
	})

	t.Run("extension suffix", func(t *testing.T) {
		assert.True(t, fieldcheck.ValidPhoneNumber("+44 1234 567 890 #1234"))
		assert.True(t, fieldcheck.ValidPhoneNumber("(01234) 567 890#123"))
		assert.False(t, fieldcheck.ValidPhoneNumber("+44 1234 567 890 #12"))
	})
}

func TestValidPostcode(t *testing.T) {
	t.Run("valid postcodes", func(t *testing.T) {
		validPostcodes := []string{
			"SW1A 1AA",
			"M1 1AE",
			"B33 8TH",
			"CR2 6XH",
			"DN55 1PT",
			"GIR 0AA",
			"gir0aa", // case-insensitive, space optional
			"ec1a1bb",
		}

		for _, postcode := range validPostcodes {
			assert.True(t, fieldcheck.ValidPostcode(postcode), "Postcode should be valid: %s", postcode)
		}
	})

	t.Run("invalid postcodes", func(t *testing.T) {
		invalidPostcodes := []string{
			"",
			"INVALID",
			"12345",
			"SW1A 1A",
			"SW1A  1AA", // double space
			"1A 1AA",
		}

		for _, postcode := range invalidPostcodes {
			assert.False(t, fieldcheck.ValidPostcode(postcode), "Postcode should be invalid: %s", postcode)
		}
	})
}
