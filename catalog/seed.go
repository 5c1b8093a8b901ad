package catalog

func seedBikes() []Bike {
	return []Bike{
		{
			ID:          "1",
			Name:        "Classic 350",
			Brand:       "Royal Enfield",
			Category:    Cruiser,
			Price:       185000,
			EngineCC:    349,
			Mileage:     35,
			Features:    []string{"Fuel Injection", "ABS", "Digital Console", "USB Charging"},
			Colors:      []string{"Black", "Red", "Blue", "Grey"},
			InStock:     true,
			Description: "The iconic Royal Enfield Classic 350 offers timeless design with modern performance.",
		},
		{
			ID:          "2",
			Name:        "Pulsar 220F",
			Brand:       "Bajaj",
			Category:    Sports,
			Price:       135000,
			EngineCC:    220,
			Mileage:     38,
			Features:    []string{"Fuel Injection", "ABS", "LED Headlights", "Digital Meter"},
			Colors:      []string{"Black", "Red", "Blue"},
			InStock:     true,
			Description: "The Bajaj Pulsar 220F is a powerful sports bike perfect for enthusiasts.",
		},
		{
			ID:          "3",
			Name:        "Activa 6G",
			Brand:       "Honda",
			Category:    Scooter,
			Price:       75000,
			EngineCC:    109,
			Mileage:     55,
			Features:    []string{"LED Headlights", "External Fuel Fill", "Mobile Charging"},
			Colors:      []string{"Black", "Red", "Blue", "White"},
			InStock:     true,
			Description: "Honda Activa 6G - India's most loved scooter with modern features.",
		},
		{
			ID:          "4",
			Name:        "Dominar 400",
			Brand:       "Bajaj",
			Category:    Sports,
			Price:       210000,
			EngineCC:    373,
			Mileage:     27,
			Features:    []string{"DOHC Engine", "Dual Channel ABS", "Slipper Clutch", "LED Lights"},
			Colors:      []string{"Black", "Red", "Blue"},
			InStock:     true,
			Description: "The Bajaj Dominar 400 offers power and style for the modern rider.",
		},
		{
			ID:          "5",
			Name:        "Himalayan",
			Brand:       "Royal Enfield",
			Category:    Adventure,
			Price:       220000,
			EngineCC:    411,
			Mileage:     30,
			Features:    []string{"Long Travel Suspension", "High Ground Clearance", "Tripper Navigation"},
			Colors:      []string{"Black", "Blue", "White", "Grey"},
			InStock:     false,
			Description: "Royal Enfield Himalayan - Built for adventure and long-distance touring.",
		},
	}
}

func seedServices() []ServicePackage {
	return []ServicePackage{
		{
			ID:            "basic",
			Name:          "Basic Service",
			Description:   "Oil change, filter cleaning, and basic inspection",
			Price:         800,
			DurationHours: 2,
			Included:      []string{"Engine Oil Change", "Oil Filter", "Basic Inspection", "Chain Lubrication"},
		},
		{
			ID:            "standard",
			Name:          "Standard Service",
			Description:   "Comprehensive maintenance service",
			Price:         1500,
			DurationHours: 4,
			Included:      []string{"Engine Oil Change", "Oil Filter", "Air Filter", "Spark Plugs", "Brake Inspection", "Chain Service"},
		},
		{
			ID:            "premium",
			Name:          "Premium Service",
			Description:   "Complete maintenance with genuine parts",
			Price:         2500,
			DurationHours: 6,
			Included:      []string{"All Standard Services", "Brake Pads", "Clutch Plates", "Electrical Check", "Performance Tuning"},
		},
	}
}

func seedDealerships() []Dealership {
	return []Dealership{
		{
			ID:        "mumbai_main",
			Name:      "EveryLingua Motors - Mumbai Central",
			Address:   "123 MG Road, Mumbai Central",
			City:      "Mumbai",
			State:     "Maharashtra",
			Phone:     "+91-9876543210",
			Latitude:  19.0760,
			Longitude: 72.8777,
			WorkingHours: map[string]string{
				"monday-friday": "9:00 AM - 8:00 PM",
				"saturday":      "9:00 AM - 9:00 PM",
				"sunday":        "10:00 AM - 6:00 PM",
			},
		},
		{
			ID:        "delhi_cp",
			Name:      "EveryLingua Motors - Connaught Place",
			Address:   "45 Connaught Place, New Delhi",
			City:      "Delhi",
			State:     "Delhi",
			Phone:     "+91-9876543211",
			Latitude:  28.6139,
			Longitude: 77.2090,
			WorkingHours: map[string]string{
				"monday-friday": "9:00 AM - 8:00 PM",
				"saturday":      "9:00 AM - 9:00 PM",
				"sunday":        "10:00 AM - 6:00 PM",
			},
		},
	}
}
