package models

// DoctorProfile is the normalized display view of a doctor.
type DoctorProfile struct {
	ID                string  `json:"id"`
	FullName          string  `json:"fullName"`
	ConsultationFee   float64 `json:"consultationFee"`
	ProfilePicture    string  `json:"profilePicture"`
	AvailableForVideo bool    `json:"availableForVideoConsultation"`
}

// DoctorPayload mirrors the care API's duck-typed doctor response. Several
// fields exist under two historical names; precedence is resolved once in
// Normalize and nowhere else:
//   - fee:   FeesPerConsultation, else consultationFee
//   - photo: profilePicture, else profilePic
type DoctorPayload struct {
	ID   string `json:"id"`
	User struct {
		FullName string `json:"fullName"`
	} `json:"user"`
	FeesPerConsultation           *float64 `json:"FeesPerConsultation"`
	ConsultationFee               *float64 `json:"consultationFee"`
	ProfilePicture                string   `json:"profilePicture"`
	ProfilePic                    string   `json:"profilePic"`
	AvailableForVideoConsultation bool     `json:"availableForVideoConsultation"`
}

// Normalize collapses the optional-field unions into a DoctorProfile.
func (p DoctorPayload) Normalize() DoctorProfile {
	profile := DoctorProfile{
		ID:                p.ID,
		FullName:          p.User.FullName,
		ProfilePicture:    p.ProfilePicture,
		AvailableForVideo: p.AvailableForVideoConsultation,
	}
	if profile.ProfilePicture == "" {
		profile.ProfilePicture = p.ProfilePic
	}
	switch {
	case p.FeesPerConsultation != nil:
		profile.ConsultationFee = *p.FeesPerConsultation
	case p.ConsultationFee != nil:
		profile.ConsultationFee = *p.ConsultationFee
	}
	return profile
}
