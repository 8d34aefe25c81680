package printing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoneyRaw(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"12.5", "12.50"},
		{"1234.56", "1,234.56"},
		{"1234567", "1,234,567.00"},
		{"-987654.321", "-987,654.32"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMoneyRaw(decimal.RequireFromString(tt.in)))
		})
	}
	assert.Equal(t, "₹225.00", formatMoney(decimal.NewFromInt(225)))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", formatDate(time.Time{}))
	assert.Equal(t, "05 Mar 2025", formatDate(time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "05 Mar 2025 10:30", formatDateTime(time.Date(2025, 3, 5, 10, 30, 0, 0, time.UTC)))
}

func TestEngine_BookingReceipt(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	html, err := engine.Render(TemplateBookingReceipt, BookingReceipt{
		Company:      Company{Name: "Your Travel Company", LicenseNumber: "LIC-77"},
		Number:       "BK1A2B3C4D",
		Status:       "confirmed",
		CustomerName: "Amina Khan",
		RoomSharing:  "double",
		PaymentType:  "net_banking",
		Lines: []PriceLine{
			{Label: "Adults", Quantity: 2, UnitPrice: decimal.NewFromInt(100), Amount: decimal.NewFromInt(200)},
			{Label: "Children", Quantity: 1, UnitPrice: decimal.NewFromInt(50), Amount: decimal.NewFromInt(50)},
		},
		Subtotal:           decimal.NewFromInt(250),
		DiscountPercentage: decimal.NewFromInt(10),
		DiscountAmount:     decimal.NewFromInt(25),
		TotalPrice:         decimal.NewFromInt(225),
		Balance:            decimal.NewFromInt(225),
		Travelers:          []Traveler{{Type: "adult", Name: "Amina Khan", Age: 34, Gender: "female"}},
	})
	require.NoError(t, err)

	for _, want := range []string{
		"BK1A2B3C4D", "Confirmed", "Amina Khan", "Double", "Net Banking",
		"₹250.00", "-₹25.00", "₹225.00", "10%", "License No: LIC-77", "Female",
	} {
		assert.Contains(t, html, want)
	}
}

func TestEngine_EscapesUserContent(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	html, err := engine.Render(TemplateQuickBookingReceipt, QuickBookingReceipt{
		Company:       Company{Name: "Acme"},
		Number:        "QB00000001",
		CustomerName:  "<script>alert(1)</script>",
		PaymentStatus: "Unpaid",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestEngine_CertificateAndPoster(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	cert, err := engine.Render(TemplateCertificate, Certificate{
		Company:    Company{Name: "Parent Agency"},
		Number:     "CERT-JDOE",
		HolderName: "John Doe",
		Username:   "jdoe",
		Role:       "franchisesadmin",
	})
	require.NoError(t, err)
	assert.Contains(t, cert, "Parent Agency")
	assert.Contains(t, cert, "Franchisesadmin")

	theme := ThemeFor("Hajj")
	poster, err := engine.Render(TemplatePoster, Poster{
		Company:     Company{Name: "Acme", Phone: "+91 99999"},
		PackageName: "Hajj 2026",
		PackageType: "Hajj",
		Price:       decimal.NewFromInt(550000),
		Features:    FeaturesFor("Hajj"),
		Theme:       theme,
	})
	require.NoError(t, err)
	assert.Contains(t, poster, "Starting From ₹550,000.00")
	assert.Contains(t, poster, theme.GradientStart)
	assert.Contains(t, poster, "Guided Hajj Rituals")
}

func TestEngine_UnknownTemplate(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	_, err = engine.Render("missing.html", nil)
	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, ErrCodeTemplateMissing, renderErr.Code)
}

func TestThemeFor_DefaultsToUmrah(t *testing.T) {
	assert.Equal(t, ThemeFor("Umrah"), ThemeFor("unknown"))
	assert.NotEqual(t, ThemeFor("Umrah"), ThemeFor("Ramadan"))
}

func TestChromedpRenderer_RejectsEmptyInput(t *testing.T) {
	r := NewChromedpRenderer(ChromedpConfig{})
	defer r.Close()

	_, err := r.PDF(context.Background(), "   ")
	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)

	_, err = r.Image(context.Background(), "<p>x</p>", ImageFormat("gif"), PosterViewport)
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, ErrCodeInvalidFormat, renderErr.Code)
}
