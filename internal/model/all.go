package model

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&OTPVerification{},
		&UserRefreshToken{},
		&Booking{},
		&BookingTraveler{},
		&QuickBooking{},
		&VisaApplication{},
		&VisaDocument{},
		&Payment{},
		&APIKey{},
		&ContactUs{},
		&Enquiry{},
		&Lead{},
		&LeadNote{},
		&Package{},
		&PosterTemplate{},
		&PackagePoster{},
		&PlatformDemoRequest{},
		&PlatformServiceRequest{},
	}
}
