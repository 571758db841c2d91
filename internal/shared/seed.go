package shared

import "local_travel/internal/domain"

// SeedDestinations is the sample catalog loaded by the seeder and by the
// /v1/destinations/seed endpoint. Ratings and review counts start at zero;
// they are derived data owned by the review aggregation.
var SeedDestinations = []domain.Destination{
	{
		ID:          "heritage-fort-museum",
		Name:        "Heritage Fort Museum",
		Category:    "historical",
		Image:       "https://images.unsplash.com/photo-1564507592333-c60657eea523?w=800",
		Description: "Ancient fort with stunning architecture and rich history spanning 500 years.",
		Location:    "Old City Center",
		Coords:      domain.Coords{Lat: 28.6139, Lng: 77.2090},
		Price:       "$$",
		BestTime:    "Morning (9 AM - 12 PM)",
		Weather:     "Sunny, 24°C",
	},
	{
		ID:          "mountain-view-trail",
		Name:        "Mountain View Trail",
		Category:    "adventure",
		Image:       "https://images.unsplash.com/photo-1551632811-561732d1e306?w=800",
		Description: "Breathtaking hiking trail with panoramic views and diverse wildlife.",
		Location:    "Northern Hills",
		Coords:      domain.Coords{Lat: 28.7041, Lng: 77.1025},
		Price:       "$",
		BestTime:    "Early Morning (6 AM - 10 AM)",
		Weather:     "Clear, 18°C",
	},
	{
		ID:          "spice-garden-restaurant",
		Name:        "Spice Garden Restaurant",
		Category:    "food",
		Image:       "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800",
		Description: "Authentic local cuisine with farm-to-table ingredients and rooftop seating.",
		Location:    "Downtown District",
		Coords:      domain.Coords{Lat: 28.6289, Lng: 77.2065},
		Price:       "$$$",
		BestTime:    "Evening (7 PM - 10 PM)",
		Weather:     "Pleasant, 22°C",
	},
	{
		ID:          "serenity-lake-park",
		Name:        "Serenity Lake Park",
		Category:    "relaxation",
		Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800",
		Description: "Peaceful lakeside park perfect for picnics, meditation, and sunset views.",
		Location:    "East Lake District",
		Coords:      domain.Coords{Lat: 28.5355, Lng: 77.3910},
		Price:       "Free",
		BestTime:    "Sunset (5 PM - 7 PM)",
		Weather:     "Cloudy, 20°C",
	},
	{
		ID:          "artisan-market-square",
		Name:        "Artisan Market Square",
		Category:    "food",
		Image:       "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=800",
		Description: "Vibrant marketplace featuring local crafts, street food, and live music.",
		Location:    "Central Plaza",
		Coords:      domain.Coords{Lat: 28.6692, Lng: 77.4538},
		Price:       "$$",
		BestTime:    "Afternoon (2 PM - 6 PM)",
		Weather:     "Sunny, 26°C",
	},
	{
		ID:          "canyon-rock-climbing",
		Name:        "Canyon Rock Climbing",
		Category:    "adventure",
		Image:       "https://images.unsplash.com/photo-1522163182402-834f871fd851?w=800",
		Description: "Thrilling rock climbing experience with professional guides and equipment.",
		Location:    "Western Canyon",
		Coords:      domain.Coords{Lat: 28.4089, Lng: 77.3178},
		Price:       "$$$",
		BestTime:    "Morning (8 AM - 12 PM)",
		Weather:     "Clear, 21°C",
	},
	{
		ID:          "zen-garden-temple",
		Name:        "Zen Garden Temple",
		Category:    "relaxation",
		Image:       "https://images.unsplash.com/photo-1545569341-9eb8b30979d9?w=800",
		Description: "Tranquil temple gardens with meditation sessions and traditional tea ceremonies.",
		Location:    "South Garden District",
		Coords:      domain.Coords{Lat: 28.4595, Lng: 77.0266},
		Price:       "$",
		BestTime:    "Early Morning (6 AM - 9 AM)",
		Weather:     "Misty, 19°C",
	},
	{
		ID:          "royal-palace-complex",
		Name:        "Royal Palace Complex",
		Category:    "historical",
		Image:       "https://images.unsplash.com/photo-1609137144813-7d9921338f24?w=800",
		Description: "Magnificent palace showcasing royal heritage with guided tours and exhibits.",
		Location:    "Palace Road",
		Coords:      domain.Coords{Lat: 28.6562, Lng: 77.2410},
		Price:       "$$",
		BestTime:    "Afternoon (2 PM - 5 PM)",
		Weather:     "Sunny, 25°C",
	},
}
