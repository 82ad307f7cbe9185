package models

// 요청마다 새로 만들어지는 날씨 정보, 저장하지 않음
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"` // °C
	Humidity    int     `json:"humidity"`    // %
	WindSpeed   float64 `json:"wind_speed"`  // km/h
	Sky         string  `json:"sky"`
	Rainfall    float64 `json:"rainfall"` // mm, last hour
}
