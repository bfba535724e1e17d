package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"travelogue/models"
	"travelogue/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func seedTrips() []models.Trip {
	now := time.Now()
	return []models.Trip{
		{
			TripID: "t1", Title: "Café & Canals — A Weekend in Amsterdam", Location: "Amsterdam, Netherlands",
			Duration: "2 days", Budget: "€220", Price: 220, Currency: "EUR",
			Tags:  []string{"city", "bike", "coffee"},
			Image: "https://images.unsplash.com/photo-1534351590666-13e3e96b5017?q=80&w=1600&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1534351590666-13e3e96b5017?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1576924542622-772281b13aa8?q=80&w=1600&auto=format&fit=crop",
			},
			Summary:     "Cycle along canals, visit museums, and enjoy cozy cafés.",
			Description: "Experience the magic of Amsterdam on two wheels. Glide along historic canals, discover world-class museums, and unwind in charming Dutch cafés. This weekend getaway captures the essence of this vibrant city.",
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Canal Cruise & Museums", Description: "Start with a scenic canal cruise, visit the Van Gogh museum, evening wandering through Jordaan district"},
				{Day: 2, Title: "Bike Adventure", Description: "Rent a bike, picnic in Vondelpark, explore local markets and hidden gems"},
			},
			Highlights:  []string{"Canal cruise", "Van Gogh Museum", "Bike routes", "Dutch coffee culture"},
			Included:    []string{"2 nights accommodation", "Bike rental", "Canal cruise ticket", "Museum entry", "Breakfast"},
			NotIncluded: []string{"Flights", "Lunch & dinner", "Travel insurance"},
			Rating:      4.8, ReviewCount: 124, SpotsAvailable: 8, MaxSpots: 12, Featured: true,
			Difficulty: "Easy", GroupSize: models.GroupSize{Min: 1, Max: 10},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			TripID: "t2", Title: "Santorini Sunset Escape", Location: "Santorini, Greece",
			Duration: "3 days", Budget: "€450", Price: 450, Currency: "EUR",
			Tags:  []string{"island", "sunset", "views", "romantic"},
			Image: "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?q=80&w=1600&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1613395877344-13d4a8e0d49e?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1580502304784-8985b7eb7260?q=80&w=1600&auto=format&fit=crop",
			},
			Summary:     "Experience the magic of Santorini's famous sunsets and white-washed villages.",
			Description: "Discover why Santorini is considered one of the world's most beautiful islands. Watch legendary sunsets paint the sky, explore charming villages, and sail the crystal-clear waters of the caldera.",
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Oia Village", Description: "Explore the iconic blue-domed churches and narrow streets of Oia"},
				{Day: 2, Title: "Caldera Cruise", Description: "Sail the volcanic caldera, swim in hot springs, wine tasting at sunset"},
				{Day: 3, Title: "Beach & Sunset", Description: "Red beach visit, traditional dinner with the famous Santorini sunset"},
			},
			Highlights:  []string{"Sunset views", "Wine tasting", "Caldera cruise", "Blue domes"},
			Included:    []string{"3 nights cave hotel", "Caldera cruise", "Wine tour", "Airport transfers", "Breakfast"},
			NotIncluded: []string{"Flights", "Lunch & dinner", "Travel insurance"},
			Rating:      4.9, ReviewCount: 256, SpotsAvailable: 6, MaxSpots: 10, Featured: true,
			Difficulty: "Easy", GroupSize: models.GroupSize{Min: 2, Max: 8},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			TripID: "t3", Title: "Kyoto Cultural Immersion", Location: "Kyoto, Japan",
			Duration: "4 days", Budget: "¥85,000", Price: 680, Currency: "USD",
			Tags:  []string{"culture", "temples", "gardens", "tradition"},
			Image: "https://images.unsplash.com/photo-1545569341-9eb8b30979d9?q=80&w=1600&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1545569341-9eb8b30979d9?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1528360983277-13d401cdc186?q=80&w=1600&auto=format&fit=crop",
			},
			Summary:     "Discover ancient temples, traditional gardens, and authentic tea ceremonies.",
			Description: "Step back in time in Japan's cultural heart. Wander through serene Zen gardens, experience the meditative art of tea ceremony, and explore centuries-old temples. This immersive journey connects you with Japan's living traditions.",
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Temple Tour", Description: "Visit Kinkaku-ji and Fushimi Inari, traditional tea ceremony experience"},
				{Day: 2, Title: "Bamboo Forest", Description: "Arashiyama bamboo grove, monkey park, and local shrines"},
				{Day: 3, Title: "Culinary Arts", Description: "Japanese cooking class, Nishiki market tour, sake tasting"},
				{Day: 4, Title: "Zen Experience", Description: "Meditation at a Zen temple, traditional garden tour, farewell kaiseki dinner"},
			},
			Highlights:  []string{"Tea ceremony", "Temple visits", "Bamboo grove", "Zen meditation"},
			Included:    []string{"4 nights ryokan stay", "Cooking class", "Tea ceremony", "Temple entries", "Rail pass", "Breakfast"},
			NotIncluded: []string{"International flights", "Some meals", "Travel insurance"},
			Rating:      4.7, ReviewCount: 189, SpotsAvailable: 10, MaxSpots: 12, Featured: true,
			Difficulty: "Easy", GroupSize: models.GroupSize{Min: 1, Max: 12},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			TripID: "t4", Title: "Machu Picchu Adventure", Location: "Cusco, Peru",
			Duration: "5 days", Budget: "$650", Price: 650, Currency: "USD",
			Tags:  []string{"hiking", "history", "adventure", "mountains"},
			Image: "https://images.unsplash.com/photo-1587595431973-160d0d94add1?q=80&w=1600&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1587595431973-160d0d94add1?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1526392060635-9d6019884377?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1580619305218-8423a7ef79b4?q=80&w=1600&auto=format&fit=crop",
			},
			Summary:     "Trek the ancient Inca Trail to the magnificent Machu Picchu.",
			Description: "Follow in the footsteps of the Incas on this legendary trek. Wind through cloud forests, pass ancient ruins, and witness the sunrise over Machu Picchu, one of the world's most awe-inspiring sights.",
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Cusco Arrival", Description: "Acclimatization in Cusco, city tour, pre-trek briefing"},
				{Day: 2, Title: "Inca Trail Begins", Description: "Start the classic Inca Trail, camp at Wayllabamba"},
				{Day: 3, Title: "Dead Woman's Pass", Description: "Cross the highest point, descend to Pacaymayo"},
				{Day: 4, Title: "Cloud Forest", Description: "Trek through cloud forest, visit Wiñay Wayna ruins"},
				{Day: 5, Title: "Machu Picchu", Description: "Sunrise at Sun Gate, guided tour of Machu Picchu"},
			},
			Highlights:  []string{"Inca Trail", "Mountain views", "Ancient ruins", "Sunrise at Machu Picchu"},
			Included:    []string{"4 nights camping", "Professional guide", "Porters", "Meals on trek", "Machu Picchu entry"},
			NotIncluded: []string{"Flights", "Cusco hotels", "Sleeping bag rental", "Tips"},
			Rating:      4.9, ReviewCount: 312, SpotsAvailable: 4, MaxSpots: 8, Featured: true,
			Difficulty: "Challenging", GroupSize: models.GroupSize{Min: 2, Max: 8},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			TripID: "t5", Title: "Safari in the Serengeti", Location: "Serengeti, Tanzania",
			Duration: "4 days", Budget: "$1,200", Price: 1200, Currency: "USD",
			Tags:  []string{"wildlife", "safari", "nature", "photography"},
			Image: "https://images.unsplash.com/photo-1516426122078-c23e76319801?q=80&w=1600&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1516426122078-c23e76319801?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1547471080-7cc2caa01a7e?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1549366021-9f761d450615?q=80&w=1600&auto=format&fit=crop",
			},
			Summary:     "Witness the great migration and spot the Big Five in their natural habitat.",
			Description: "Experience the ultimate African safari in the world-famous Serengeti. Watch millions of wildebeest cross the plains, track the Big Five, and witness predators in action, all while staying in luxury tented camps.",
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Arrival & First Game Drive", Description: "Fly to Serengeti, afternoon game drive, sunset drinks"},
				{Day: 2, Title: "Full Day Safari", Description: "Dawn to dusk game drives, seeking the Great Migration"},
				{Day: 3, Title: "Big Five Hunt", Description: "Focus on tracking lions, leopards, elephants, rhinos, and buffalo"},
				{Day: 4, Title: "Sunrise Drive", Description: "Final morning game drive, bush breakfast, departure"},
			},
			Highlights:  []string{"Big Five", "Great Migration", "Sunset drives", "Luxury camp"},
			Included:    []string{"3 nights luxury tented camp", "All game drives", "Expert guide", "All meals", "Park fees"},
			NotIncluded: []string{"International flights", "Domestic flights", "Visa", "Tips", "Travel insurance"},
			Rating:      4.8, ReviewCount: 178, SpotsAvailable: 6, MaxSpots: 8, Featured: false,
			Difficulty: "Easy", GroupSize: models.GroupSize{Min: 2, Max: 6},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			TripID: "t6", Title: "Northern Lights in Iceland", Location: "Reykjavik, Iceland",
			Duration: "3 days", Budget: "€580", Price: 580, Currency: "EUR",
			Tags:  []string{"aurora", "nature", "winter", "adventure"},
			Image: "https://images.unsplash.com/photo-1579033461380-adb47c3eb938?q=80&w=1600&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1579033461380-adb47c3eb938?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1520769945061-0a448c463865?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1504893524553-b855bce32c67?q=80&w=1600&auto=format&fit=crop",
			},
			Summary:     "Chase the aurora borealis and explore Iceland's winter wonderland.",
			Description: "Hunt the dancing northern lights across Iceland's dramatic landscapes. Soak in geothermal hot springs, explore ice caves, and witness the raw power of waterfalls frozen in winter's grip.",
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Blue Lagoon & City", Description: "Arrive, relax at Blue Lagoon, Reykjavik exploration"},
				{Day: 2, Title: "Golden Circle", Description: "Þingvellir, Geysir, Gullfoss waterfall, evening aurora hunt"},
				{Day: 3, Title: "Northern Lights Hunt", Description: "South coast waterfalls, black sand beaches, aurora viewing"},
			},
			Highlights:  []string{"Aurora viewing", "Hot springs", "Ice caves", "Waterfalls"},
			Included:    []string{"2 nights hotel", "Blue Lagoon entry", "Golden Circle tour", "Aurora hunt", "Breakfast"},
			NotIncluded: []string{"Flights", "Lunch & dinner", "Travel insurance"},
			Rating:      4.6, ReviewCount: 203, SpotsAvailable: 10, MaxSpots: 15, Featured: false,
			Difficulty: "Easy", GroupSize: models.GroupSize{Min: 1, Max: 15},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			TripID: "t7", Title: "Maldives Paradise Escape", Location: "Male, Maldives",
			Duration: "5 days", Budget: "$1,800", Price: 1800, Currency: "USD",
			Tags:  []string{"beach", "luxury", "relaxation", "diving"},
			Image: "https://images.unsplash.com/photo-1514282401047-d79a71a590e8?q=80&w=1600&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1514282401047-d79a71a590e8?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1573843981267-be1999ff37cd?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1540202404-a2f29016b523?q=80&w=1600&auto=format&fit=crop",
			},
			Summary:     "Unwind in overwater villas and explore vibrant coral reefs.",
			Description: "Escape to paradise in the Maldives. Wake up to turquoise waters beneath your overwater villa, snorkel with manta rays, and let time slow down in this tropical haven of luxury and natural beauty.",
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Arrival & Spa", Description: "Speedboat to resort, welcome spa treatment, sunset dinner"},
				{Day: 2, Title: "Ocean Adventure", Description: "Snorkeling safari, dolphin watching, beach picnic"},
				{Day: 3, Title: "Relaxation Day", Description: "Sunrise yoga, spa treatments, private beach time"},
				{Day: 4, Title: "Water Sports", Description: "Kayaking, jet skiing, underwater restaurant dinner"},
				{Day: 5, Title: "Sunset Cruise", Description: "Morning dive, sunset cruise with champagne, departure"},
			},
			Highlights:  []string{"Overwater villa", "Snorkeling", "Spa treatments", "Sunset cruise"},
			Included:    []string{"4 nights overwater villa", "Full board meals", "Snorkeling gear", "Sunset cruise", "Transfers"},
			NotIncluded: []string{"Flights", "Premium drinks", "Spa treatments", "Water sports", "Tips"},
			Rating:      4.9, ReviewCount: 145, SpotsAvailable: 4, MaxSpots: 6, Featured: true,
			Difficulty: "Easy", GroupSize: models.GroupSize{Min: 2, Max: 4},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			TripID: "t8", Title: "Vietnam Food Journey", Location: "Hanoi, Vietnam",
			Duration: "4 days", Budget: "$320", Price: 320, Currency: "USD",
			Tags:  []string{"food", "culture", "street-food", "cooking"},
			Image: "https://images.unsplash.com/photo-1583417319070-4a69db38a482?q=80&w=1600&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1583417319070-4a69db38a482?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1555126634-323283e090fa?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1576185850777-7de1bb59068b?q=80&w=1600&auto=format&fit=crop",
			},
			Summary:     "Taste your way through Vietnam's incredible street food scene.",
			Description: "Embark on a culinary adventure through the flavors of Vietnam. From steaming bowls of pho to crispy bánh mì, learn the secrets of Vietnamese cuisine from local experts and home cooks.",
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Street Food Tour", Description: "Evening walking tour of Hanoi's best street food stalls"},
				{Day: 2, Title: "Cooking Class", Description: "Morning market visit, hands-on cooking class, wine pairing lunch"},
				{Day: 3, Title: "Market Trek", Description: "Hidden gem food trek, local family dinner experience"},
				{Day: 4, Title: "Pho Masters", Description: "Pho-making workshop with a master chef, farewell dinner"},
			},
			Highlights:  []string{"Street food", "Cooking class", "Market tours", "Pho workshop"},
			Included:    []string{"3 nights boutique hotel", "All food tours", "Cooking classes", "Market visits", "Breakfast"},
			NotIncluded: []string{"Flights", "Drinks", "Travel insurance"},
			Rating:      4.7, ReviewCount: 167, SpotsAvailable: 8, MaxSpots: 10, Featured: false,
			Difficulty: "Easy", GroupSize: models.GroupSize{Min: 2, Max: 10},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			TripID: "t9", Title: "Tuscany Wine Tour", Location: "Florence, Italy",
			Duration: "3 days", Budget: "€490", Price: 490, Currency: "EUR",
			Tags:  []string{"wine", "countryside", "food", "culture"},
			Image: "https://images.unsplash.com/photo-1467803738586-46b7eb7b16a1?q=80&w=1600&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1467803738586-46b7eb7b16a1?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1523528283115-9bf9b1699245?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1441407613312-f3bf6b2c837e?q=80&w=1600&auto=format&fit=crop",
			},
			Summary:     "Sample finest wines and explore the rolling hills of Tuscany.",
			Description: "Savor the dolce vita in Tuscany's sun-drenched vineyards. Visit centuries-old wineries, learn from master vintners, and feast on farm-to-table cuisine amid some of Italy's most breathtaking landscapes.",
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Chianti Region", Description: "Drive through Chianti, visit two wineries, truffle lunch"},
				{Day: 2, Title: "Wine & Cooking", Description: "Premium wine tasting, Tuscan cooking class, vineyard dinner"},
				{Day: 3, Title: "Val d'Orcia", Description: "UNESCO landscape tour, Brunello tasting, sunset in Montepulciano"},
			},
			Highlights:  []string{"Wine tasting", "Vineyard tours", "Local cuisine", "Cooking class"},
			Included:    []string{"2 nights agriturismo", "All wine tastings", "Cooking class", "Lunches", "Transport"},
			NotIncluded: []string{"Flights", "Dinners", "Travel insurance"},
			Rating:      4.8, ReviewCount: 198, SpotsAvailable: 6, MaxSpots: 8, Featured: false,
			Difficulty: "Easy", GroupSize: models.GroupSize{Min: 2, Max: 8},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			TripID: "t10", Title: "Great Barrier Reef Dive", Location: "Cairns, Australia",
			Duration: "3 days", Budget: "AU$750", Price: 520, Currency: "USD",
			Tags:  []string{"diving", "marine", "adventure", "nature"},
			Image: "https://images.unsplash.com/photo-1582967788606-a171c1080cb0?q=80&w=1600&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1582967788606-a171c1080cb0?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1544551763-46a013bb70d5?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1559827260-dc66d52bef19?q=80&w=1600&auto=format&fit=crop",
			},
			Summary:     "Discover the underwater wonders of the Great Barrier Reef.",
			Description: "Dive into one of the world's natural wonders. Explore vibrant coral gardens, swim alongside sea turtles, and witness the incredible biodiversity of the Great Barrier Reef on this underwater adventure.",
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Reef Introduction", Description: "Diving certification or refresher, first reef dive"},
				{Day: 2, Title: "Outer Reef", Description: "Two-tank dive at outer reef, snorkeling, marine biology talk"},
				{Day: 3, Title: "Marine Expedition", Description: "Morning dive with marine biologist, underwater photography"},
			},
			Highlights:  []string{"Coral reefs", "Marine life", "Scuba diving", "Sea turtles"},
			Included:    []string{"2 nights liveaboard", "All dives", "Equipment", "Marine biologist guide", "Meals"},
			NotIncluded: []string{"Flights", "Dive certification", "Photography package"},
			Rating:      4.7, ReviewCount: 156, SpotsAvailable: 8, MaxSpots: 12, Featured: false,
			Difficulty: "Moderate", GroupSize: models.GroupSize{Min: 2, Max: 12},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			TripID: "t11", Title: "Moroccan Desert Adventure", Location: "Marrakech, Morocco",
			Duration: "4 days", Budget: "€420", Price: 420, Currency: "EUR",
			Tags:  []string{"desert", "culture", "adventure", "camping"},
			Image: "https://images.unsplash.com/photo-1539650116455-251d93d5ce3d?q=80&w=1600&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1539650116455-251d93d5ce3d?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1489749798305-4fea3ae63d43?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1545167496-28be8f7a29e6?q=80&w=1600&auto=format&fit=crop",
			},
			Summary:     "Journey through the Sahara on camelback and sleep under the stars.",
			Description: "Experience the magic of Morocco from bustling medinas to silent dunes. Ride camels into the Sahara, sleep in a traditional desert camp, and discover the rich culture of the Berber people.",
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Marrakech Medina", Description: "Explore the souks, visit Bahia Palace, traditional hammam"},
				{Day: 2, Title: "Atlas Crossing", Description: "Drive through Atlas Mountains, Aït Benhaddou, reach desert edge"},
				{Day: 3, Title: "Desert Camp", Description: "Camel trek into Erg Chebbi, Berber music, sleep under stars"},
				{Day: 4, Title: "Sunrise Trek", Description: "Sunrise from dunes, return camel ride, journey back"},
			},
			Highlights:  []string{"Camel trek", "Desert camping", "Stargazing", "Medina exploration"},
			Included:    []string{"3 nights accommodation", "Camel trek", "Desert camp", "All transport", "Meals"},
			NotIncluded: []string{"Flights", "Drinks", "Hammam tips", "Travel insurance"},
			Rating:      4.6, ReviewCount: 234, SpotsAvailable: 10, MaxSpots: 12, Featured: false,
			Difficulty: "Moderate", GroupSize: models.GroupSize{Min: 2, Max: 12},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			TripID: "t12", Title: "Swiss Alps Hiking", Location: "Zermatt, Switzerland",
			Duration: "4 days", Budget: "CHF 890", Price: 980, Currency: "USD",
			Tags:  []string{"hiking", "mountains", "nature", "scenic"},
			Image: "https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?q=80&w=1600&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1531366936337-7c912a4589a7?q=80&w=1600&auto=format&fit=crop",
			},
			Summary:     "Trek through stunning Alpine landscapes with Matterhorn views.",
			Description: "Conquer iconic Alpine trails with the legendary Matterhorn as your backdrop. Hike past crystal lakes, traverse flower-filled meadows, and experience Swiss mountain hospitality at its finest.",
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Zermatt Arrival", Description: "Scenic train to Zermatt, warm-up hike, mountain village tour"},
				{Day: 2, Title: "Hörnli Trail", Description: "Classic Matterhorn viewpoint trail, alpine hut lunch"},
				{Day: 3, Title: "Five Lakes Walk", Description: "Iconic five lakes trail, each reflecting the Matterhorn"},
				{Day: 4, Title: "Glacier Paradise", Description: "Cable car to Klein Matterhorn, glacier walk, farewell raclette"},
			},
			Highlights:  []string{"Matterhorn views", "Alpine lakes", "Glacier visit", "Mountain trains"},
			Included:    []string{"3 nights mountain hotel", "Cable car passes", "Hiking guide", "Half-board meals"},
			NotIncluded: []string{"Flights", "Train to Zermatt", "Lunch", "Travel insurance"},
			Rating:      4.8, ReviewCount: 143, SpotsAvailable: 6, MaxSpots: 8, Featured: true,
			Difficulty: "Moderate", GroupSize: models.GroupSize{Min: 2, Max: 8},
			CreatedAt: now, UpdatedAt: now,
		},
	}
}

func seedReviews() []models.Review {
	date := func(value string) *time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return &t
	}
	reviews := []models.Review{
		{TripID: "t1", Author: models.ReviewAuthor{Name: "Emma Wilson", Email: "emma@example.com"}, Rating: 5,
			Title:   "Perfect Weekend Getaway!",
			Content: "The canal cruise was magical and cycling through the city was the best way to explore. Our guide knew all the hidden gems. The Van Gogh museum was a highlight!",
			TravelDate: date("2025-09-15")},
		{TripID: "t2", Author: models.ReviewAuthor{Name: "Michael Chen", Email: "michael@example.com"}, Rating: 5,
			Title:   "Unforgettable Sunsets",
			Content: "Santorini exceeded all expectations. The sunset from Oia was absolutely breathtaking. The caldera cruise with wine tasting was pure bliss. Highly recommend!",
			TravelDate: date("2025-08-20")},
		{TripID: "t3", Author: models.ReviewAuthor{Name: "Sarah Johnson", Email: "sarah@example.com"}, Rating: 5,
			Title:   "Cultural Paradise",
			Content: "The tea ceremony was a spiritual experience. Walking through the bamboo forest felt like stepping into another world. The ryokan stay was authentic and peaceful.",
			TravelDate: date("2025-10-05")},
		{TripID: "t4", Author: models.ReviewAuthor{Name: "David Park", Email: "david@example.com"}, Rating: 5,
			Title:   "Life-Changing Trek",
			Content: "Challenging but absolutely worth every step. Seeing Machu Picchu at sunrise brought tears to my eyes. The guides were knowledgeable and supportive.",
			TravelDate: date("2025-07-12")},
		{TripID: "t7", Author: models.ReviewAuthor{Name: "Lisa Anderson", Email: "lisa@example.com"}, Rating: 5,
			Title:   "Paradise Found",
			Content: "The overwater villa was a dream come true. Snorkeling with manta rays was incredible. Staff went above and beyond. Pure luxury and relaxation.",
			TravelDate: date("2025-11-01")},
	}

	now := time.Now()
	for i := range reviews {
		reviews[i].ID = uuid.New().String()
		reviews[i].Author.Avatar = fmt.Sprintf(
			"https://ui-avatars.com/api/?name=%s&background=random",
			url.QueryEscape(reviews[i].Author.Name))
		reviews[i].CreatedAt = now
	}
	return reviews
}

// SeedDatabase replaces the trip and review collections with the sample
// catalog. Intended for local development and demos, not production.
func SeedDatabase() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := utils.GetLogger()

	tripColl := Collection("trips")
	reviewColl := Collection("reviews")

	if _, err := tripColl.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear trips: %w", err)
	}
	if _, err := reviewColl.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear reviews: %w", err)
	}

	trips := seedTrips()
	tripDocs := make([]interface{}, len(trips))
	for i, t := range trips {
		tripDocs[i] = t
	}
	if _, err := tripColl.InsertMany(ctx, tripDocs); err != nil {
		return fmt.Errorf("failed to insert trips: %w", err)
	}

	reviews := seedReviews()
	reviewDocs := make([]interface{}, len(reviews))
	for i, r := range reviews {
		reviewDocs[i] = r
	}
	if _, err := reviewColl.InsertMany(ctx, reviewDocs); err != nil {
		return fmt.Errorf("failed to insert reviews: %w", err)
	}

	featured := 0
	for _, t := range trips {
		if t.Featured {
			featured++
		}
	}
	logger.Info("Database seeded",
		zap.Int("trips", len(trips)),
		zap.Int("reviews", len(reviews)),
		zap.Int("featured", featured))
	return nil
}
