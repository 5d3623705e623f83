package catalog

import (
	"time"

	"wanderlust-booking/internal/domain/listing"
)

func seedDestinations() []listing.Destination {
	return []listing.Destination{
		{
			ID: "1", Name: "Ranchi", Country: "India",
			Description:     "The capital city of Jharkhand, known for its waterfalls, hills, and pleasant climate. Famous for Hundru Falls and Rock Garden.",
			Image:           "/ranchi.jpg",
			Rating:          4.5,
			ReviewCount:     1247,
			Coordinates:     listing.Coordinates{Lat: 23.3441, Lng: 85.3096},
			Highlights:      []string{"Hundru Falls", "Rock Garden", "Tagore Hill", "Birsa Zoological Park"},
			BestTimeToVisit: "October to March",
		},
		{
			ID: "2", Name: "Jamshedpur", Country: "India",
			Description:     "The Steel City of India, known for its planned infrastructure, beautiful parks, and industrial heritage.",
			Image:           "/jamshepur.jpg",
			Rating:          4.3,
			ReviewCount:     892,
			Coordinates:     listing.Coordinates{Lat: 22.8046, Lng: 86.2029},
			Highlights:      []string{"Jubilee Park", "Tata Steel Zoological Park", "Dalma Wildlife Sanctuary", "Dimna Lake"},
			BestTimeToVisit: "October to March",
		},
		{
			ID: "3", Name: "Deoghar", Country: "India",
			Description:     "Sacred pilgrimage destination famous for Baidyanath Temple, one of the twelve Jyotirlingas of Lord Shiva.",
			Image:           "/deoghar.jpg",
			Rating:          4.7,
			ReviewCount:     2156,
			Coordinates:     listing.Coordinates{Lat: 24.4847, Lng: 86.6906},
			Highlights:      []string{"Baidyanath Temple", "Nandan Pahar", "Tapovan", "Satsang Ashram"},
			BestTimeToVisit: "October to March",
		},
		{
			ID: "4", Name: "Hazaribagh", Country: "India",
			Description:     "Known for its wildlife sanctuary and coal mines. Famous for Hazaribagh National Park and scenic beauty.",
			Image:           "/hazaribagh.jpg",
			Rating:          4.2,
			ReviewCount:     654,
			Coordinates:     listing.Coordinates{Lat: 23.9929, Lng: 85.3647},
			Highlights:      []string{"Hazaribagh National Park", "Canary Hill", "Konar Dam", "Rajrappa Temple"},
			BestTimeToVisit: "November to February",
		},
		{
			ID: "5", Name: "Netarhat", Country: "India",
			Description:     "The Queen of Chotanagpur, famous for sunrise and sunset views, hill station with pleasant climate.",
			Image:           "/netarhat.jpg",
			Rating:          4.6,
			ReviewCount:     987,
			Coordinates:     listing.Coordinates{Lat: 23.4667, Lng: 84.2667},
			Highlights:      []string{"Sunrise Point", "Sunset Point", "Netarhat Residential School", "Lodh Falls"},
			BestTimeToVisit: "October to April",
		},
		{
			ID: "6", Name: "Bokaro", Country: "India",
			Description:     "Steel city known for Bokaro Steel Plant and beautiful parks. Modern planned city with good infrastructure.",
			Image:           "/bokaro.jpg",
			Rating:          4.1,
			ReviewCount:     543,
			Coordinates:     listing.Coordinates{Lat: 23.6693, Lng: 86.1511},
			Highlights:      []string{"City Park", "Bokaro Steel Plant", "Garga Dam", "Jawaharlal Nehru Biological Park"},
			BestTimeToVisit: "October to March",
		},
	}
}

func seedHotels() []listing.Hotel {
	return []listing.Hotel{
		{
			ID: "1", Name: "Hotel Capitol Hill", Destination: "Ranchi", Location: "Main Road, Ranchi",
			Description:   "Luxury hotel in the heart of Ranchi with modern amenities and excellent service.",
			Images:        []string{"/hotel-capitol-hill.jpg"},
			Rating:        4.5,
			ReviewCount:   324,
			PricePerNight: 350000,
			Currency:      "INR",
			Amenities:     []string{"Free WiFi", "Restaurant", "Room Service", "Parking"},
			Coordinates:   listing.Coordinates{Lat: 23.3441, Lng: 85.3096},
			Available:     true,
		},
		{
			ID: "2", Name: "The Sonnet Jamshedpur", Destination: "Jamshedpur", Location: "Bistupur, Jamshedpur",
			Description:   "Premium hotel offering comfortable stay with modern facilities in the steel city.",
			Images:        []string{"/sonnet-jamshedpur.jpg"},
			Rating:        4.3,
			ReviewCount:   256,
			PricePerNight: 420000,
			Currency:      "INR",
			Amenities:     []string{"Free WiFi", "Swimming Pool", "Gym", "Restaurant", "Bar"},
			Coordinates:   listing.Coordinates{Lat: 22.8046, Lng: 86.2029},
			Available:     true,
		},
		{
			ID: "3", Name: "Hotel Yashoda International", Destination: "Deoghar", Location: "Temple Road, Deoghar",
			Description:   "Comfortable accommodation near Baidyanath Temple with pilgrimage-friendly services.",
			Images:        []string{"/yashoda-deoghar.jpg"},
			Rating:        4.0,
			ReviewCount:   189,
			PricePerNight: 280000,
			Currency:      "INR",
			Amenities:     []string{"Free WiFi", "Restaurant", "Temple Shuttle", "Parking"},
			Coordinates:   listing.Coordinates{Lat: 24.4847, Lng: 86.6906},
			Available:     true,
		},
	}
}

func seedTours() []listing.Tour {
	return []listing.Tour{
		{
			ID: "1", Name: "Ranchi Waterfalls Tour", Destination: "Ranchi", Location: "Ranchi",
			Description:  "Explore the magnificent waterfalls around Ranchi including Hundru, Jonha, and Dassam Falls.",
			Images:       []string{"/ranchi-waterfalls-tour.jpg"},
			Duration:     "Full Day (8 hours)",
			Price:        250000,
			Currency:     "INR",
			Rating:       4.6,
			ReviewCount:  145,
			MaxGroupSize: 15,
			Difficulty:   listing.DifficultyEasy,
			Includes:     []string{"Transportation", "Guide", "Lunch", "Entry Fees"},
			Highlights:   []string{"Hundru Falls", "Jonha Falls", "Dassam Falls"},
			Itinerary: []listing.ItineraryDay{
				{Day: 1, Title: "Waterfalls Exploration", Description: "Visit three major waterfalls around Ranchi",
					Activities: []string{"Hundru Falls visit", "Jonha Falls trekking", "Dassam Falls photography"}},
			},
		},
		{
			ID: "2", Name: "Deoghar Spiritual Journey", Destination: "Deoghar", Location: "Deoghar",
			Description:  "Sacred pilgrimage tour covering Baidyanath Temple and other spiritual sites in Deoghar.",
			Images:       []string{"/deoghar-spiritual.jpg"},
			Duration:     "2 Days",
			Price:        450000,
			Currency:     "INR",
			Rating:       4.8,
			ReviewCount:  234,
			MaxGroupSize: 20,
			Difficulty:   listing.DifficultyEasy,
			Includes:     []string{"Accommodation", "Meals", "Temple Guide", "Transportation"},
			Highlights:   []string{"Baidyanath Temple", "Nandan Pahar", "Tapovan", "Basukinath Temple"},
			Itinerary: []listing.ItineraryDay{
				{Day: 1, Title: "Temple Darshan", Description: "Visit main temples and spiritual sites",
					Activities: []string{"Baidyanath Temple darshan", "Nandan Pahar visit", "Evening aarti"}},
				{Day: 2, Title: "Spiritual Sites", Description: "Explore nearby spiritual destinations",
					Activities: []string{"Tapovan visit", "Basukinath Temple", "Local market shopping"}},
			},
		},
		{
			ID: "3", Name: "Netarhat Hill Station Retreat", Destination: "Netarhat", Location: "Netarhat",
			Description:  "Experience the Queen of Chotanagpur with sunrise, sunset views and natural beauty.",
			Images:       []string{"/netarhat-retreat.jpg"},
			Duration:     "3 Days 2 Nights",
			Price:        680000,
			Currency:     "INR",
			Rating:       4.7,
			ReviewCount:  167,
			MaxGroupSize: 12,
			Difficulty:   listing.DifficultyModerate,
			Includes:     []string{"Accommodation", "All Meals", "Guide", "Transportation"},
			Highlights:   []string{"Sunrise Point", "Sunset Point", "Lodh Falls", "Forest Walk"},
			Itinerary: []listing.ItineraryDay{
				{Day: 1, Title: "Arrival and Sunset", Description: "Check-in and evening sunset viewing",
					Activities: []string{"Hotel check-in", "Local exploration", "Sunset point visit"}},
				{Day: 2, Title: "Nature Exploration", Description: "Full day nature and sightseeing",
					Activities: []string{"Sunrise viewing", "Lodh Falls visit", "Forest trekking"}},
				{Day: 3, Title: "Departure", Description: "Morning activities and departure",
					Activities: []string{"Morning walk", "Local shopping", "Departure"}},
			},
		},
	}
}

func seedReviews() []listing.Review {
	return []listing.Review{
		{
			ID: "1", UserID: "user1", UserName: "Priya Sharma", UserAvatar: "/user-priya.jpg",
			Rating:  5,
			Comment: "Amazing experience visiting Ranchi waterfalls! The natural beauty is breathtaking and our guide was very knowledgeable about local history.",
			Date:    time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			Helpful: 18,
		},
		{
			ID: "2", UserID: "user2", UserName: "Rajesh Kumar", UserAvatar: "/user-rajesh.jpg",
			Rating:  5,
			Comment: "Deoghar spiritual tour was life-changing. The peaceful atmosphere and divine energy at Baidyanath Temple is incredible.",
			Date:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Helpful: 24,
		},
	}
}
