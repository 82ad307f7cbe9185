package models

import "time"

// 저장된 작물 조언 기록
type Record struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	City      string    `json:"city"`
	Crop      string    `json:"crop"`
	Soil      string    `json:"soil"`
	Advice    string    `json:"advice"`
	CreatedAt time.Time `json:"created_at"`
}
