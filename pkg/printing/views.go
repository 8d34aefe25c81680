package printing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company is the letterhead block printed on every document.
type Company struct {
	Name          string
	Address       string
	Phone         string
	Email         string
	LicenseNumber string
	Logo          string
	Website       string
}

type PriceLine struct {
	Label     string
	Quantity  int
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal
}

type Traveler struct {
	Type           string
	Name           string
	Age            int
	Gender         string
	PassportNumber string
}

type BookingReceipt struct {
	Company            Company
	Number             string
	Status             string
	CustomerName       string
	Email              string
	Mobile             string
	PassportNo         string
	Address            string
	TravelMonth        string
	DepartureCity      string
	PackageName        string
	PackageDays        int
	RoomSharing        string
	Flight             string
	PaymentType        string
	Lines              []PriceLine
	Subtotal           decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	TotalPrice         decimal.Decimal
	AdvancePayment     decimal.Decimal
	Balance            decimal.Decimal
	Travelers          []Traveler
	Remarks            string
	BookedAt           time.Time
	IssuedAt           time.Time
}

type QuickBookingReceipt struct {
	Company          Company
	Number           string
	CustomerName     string
	Email            string
	Mobile           string
	TravelMonth      string
	Destination      string
	Travelers        int
	PreferredPayment string
	Budget           decimal.Decimal
	Payment          decimal.Decimal
	Dues             decimal.Decimal
	Total            decimal.Decimal
	PaymentStatus    string
	Converted        bool
	CreatedAt        time.Time
	IssuedAt         time.Time
}

type Certificate struct {
	Company    Company
	Number     string
	HolderName string
	Username   string
	Role       string
	MemberFrom time.Time
	IssuedAt   time.Time
}

// PosterTheme colours a poster by package family.
type PosterTheme struct {
	Primary       string
	Secondary     string
	GradientStart string
	GradientEnd   string
	Badge         string
}

type Poster struct {
	Company         Company
	PackageName     string
	PackageType     string
	Price           decimal.Decimal
	BackgroundImage string
	Features        []string
	Theme           PosterTheme
}

// PosterViewport is the portrait social-media size posters are captured at.
var PosterViewport = Viewport{Width: 1080, Height: 1350}

var posterThemes = map[string]PosterTheme{
	"Umrah":   {Primary: "#055126", Secondary: "#FFD700", GradientStart: "#2E8B57", GradientEnd: "#32CD32", Badge: "MOST POPULAR"},
	"Hajj":    {Primary: "#DC143C", Secondary: "#FFD700", GradientStart: "#DC143C", GradientEnd: "#FF6347", Badge: "COMPLETE"},
	"Ramadan": {Primary: "#006400", Secondary: "#DAA520", GradientStart: "#006400", GradientEnd: "#228B22", Badge: "BLESSED"},
}

var posterFeatures = map[string][]string{
	"Umrah":   {"Visa & Transportation", "Flight & Accommodation", "Meals & Assistance", "Guided tours in Makkah & Madinah", "24x7 support from our team"},
	"Hajj":    {"Complete Hajj Transportation", "Accommodation near the Haram", "All Meals Included", "Guided Hajj Rituals", "Ziyarat Tours"},
	"Ramadan": {"Iftar & Suhoor arrangements", "Hotel close to the Haram", "Visa & Transportation", "Taraweeh guidance", "24x7 support from our team"},
}

// ThemeFor returns the colour scheme for a poster type, defaulting to Umrah.
func ThemeFor(posterType string) PosterTheme {
	if t, ok := posterThemes[posterType]; ok {
		return t
	}
	return posterThemes["Umrah"]
}

func FeaturesFor(posterType string) []string {
	if f, ok := posterFeatures[posterType]; ok {
		return f
	}
	return posterFeatures["Umrah"]
}
