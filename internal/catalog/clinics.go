package catalog

import (
	"github.com/symptom-guidance-server/internal/domain"
)

var clinics = []domain.Clinic{
	{
		ID:                   "city-general",
		Name:                 "City General Hospital",
		Address:              "123 Medical Center Drive",
		City:                 "Mumbai",
		State:                "Maharashtra",
		Pincode:              "400001",
		Phone:                "+91-22-1234-5678",
		Email:                "info@citygeneral.in",
		Specialties:          []string{"General Medicine", "Emergency Care", "Cardiology", "Orthopedics"},
		Rating:               4.5,
		IsGovernmentApproved: true,
		AvailableHours: domain.AvailableHours{
			Open:  "08:00",
			Close: "20:00",
			Days:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		},
		Facilities: []string{"24/7 Emergency", "ICU", "Laboratory", "Radiology", "Pharmacy"},
	},
	{
		ID:                   "care-clinic",
		Name:                 "Primary Care Clinic",
		Address:              "456 Health Street",
		City:                 "Delhi",
		State:                "Delhi",
		Pincode:              "110001",
		Phone:                "+91-11-9876-5432",
		Email:                "contact@primarycare.in",
		Specialties:          []string{"Family Medicine", "Pediatrics", "Internal Medicine"},
		Rating:               4.2,
		IsGovernmentApproved: true,
		AvailableHours: domain.AvailableHours{
			Open:  "09:00",
			Close: "18:00",
			Days:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		},
		Facilities: []string{"Laboratory", "Minor Surgery", "Vaccination", "Health Checkups"},
	},
	{
		ID:                   "metro-medical",
		Name:                 "Metro Medical Center",
		Address:              "789 Wellness Boulevard",
		City:                 "Bangalore",
		State:                "Karnataka",
		Pincode:              "560001",
		Phone:                "+91-80-1111-2222",
		Email:                "info@metromedical.in",
		Specialties:          []string{"General Medicine", "Dermatology", "Gynecology", "ENT"},
		Rating:               4.7,
		IsGovernmentApproved: true,
		AvailableHours: domain.AvailableHours{
			Open:  "07:00",
			Close: "21:00",
			Days:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		},
		Facilities: []string{"24/7 Emergency", "Diagnostic Center", "Pharmacy", "Ambulance Service"},
	},
}
