package menu

import "strings"

type Item struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Method      string `json:"method"`
	Path        string `json:"path"`
}

// 메뉴 순서는 화면 표시 순서
var items = []Item{
	{
		Key:         "home",
		Name:        "Home",
		Description: "Welcome page with the logged in user and role.",
		Method:      "GET",
		Path:        "/api/home",
	},
	{
		Key:         "crop_advice",
		Name:        "Crop Advice",
		Description: "Current weather for a city plus AI advice for planting a crop in a soil type.",
		Method:      "POST",
		Path:        "/api/advice",
	},
	{
		Key:         "chat_ai",
		Name:        "Chat AI",
		Description: "Ask the agricultural assistant a question.",
		Method:      "POST",
		Path:        "/api/chat",
	},
	{
		Key:         "voice_bot",
		Name:        "Voice Bot",
		Description: "Ask by voice and hear the answer.",
		Method:      "POST",
		Path:        "/api/voice",
	},
	{
		Key:         "disease_check",
		Name:        "Disease Check",
		Description: "Upload a leaf image for a (mock) disease diagnosis.",
		Method:      "POST",
		Path:        "/api/disease",
	},
	{
		Key:         "soil_logs",
		Name:        "Soil Logs",
		Description: "Record pH, moisture and N/P/K readings for this session.",
		Method:      "POST",
		Path:        "/api/soil",
	},
	{
		Key:         "rentals",
		Name:        "Rentals",
		Description: "List farm equipment for rent in this session.",
		Method:      "POST",
		Path:        "/api/rentals",
	},
	{
		Key:         "logout",
		Name:        "Logout",
		Description: "End the session. The Kisan card must be verified again.",
		Method:      "POST",
		Path:        "/api/logout",
	},
}

func Items() []Item {
	return append([]Item{}, items...)
}

// Lookup accepts either the key ("soil_logs") or the display name ("Soil Logs").
func Lookup(choice string) (Item, bool) {
	choice = strings.TrimSpace(choice)
	for _, it := range items {
		if it.Key == choice || strings.EqualFold(it.Name, choice) {
			return it, true
		}
	}
	return Item{}, false
}
