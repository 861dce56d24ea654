package textfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNairaFormatter(t *testing.T) {
	f := NewNairaFormatter()

	assert.Equal(t, "₦375,000", f.Format(375000))
	assert.Equal(t, "₦1,200,000", f.Format(1200000))
	assert.Equal(t, "₦0", f.Format(0))
	assert.Equal(t, "-₦75,000", f.Format(-75000))
}

func TestNewCurrencyFormatter(t *testing.T) {
	usd, err := NewCurrencyFormatter("en-US", "USD")
	require.NoError(t, err)
	assert.Equal(t, "$1,500", usd.Format(1500))

	eur, err := NewCurrencyFormatter("en", "EUR")
	require.NoError(t, err)
	assert.Equal(t, "€2,000", eur.Format(2000))

	gbp, err := NewCurrencyFormatter("en-GB", "GBP")
	require.NoError(t, err)
	assert.Equal(t, "£10,500", gbp.Format(10500))

	chf, err := NewCurrencyFormatter("en", "CHF")
	require.NoError(t, err)
	assert.Equal(t, "CHF 2,000", chf.Format(2000))

	_, err = NewCurrencyFormatter("en", "XX1")
	assert.Error(t, err)

	_, err = NewCurrencyFormatter("not a locale!", "NGN")
	assert.Error(t, err)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Penthouse", Label("penthouse"))
	assert.Equal(t, "Serviced Apartment", Label("serviced-apartment"))
	assert.Equal(t, "Port Harcourt", Label("port_harcourt"))
	assert.Equal(t, "", Label(""))
}
