package models

import "errors"

var (
	ErrPHOutOfRange       = errors.New("pH must be between 0 and 14")
	ErrMoistureOutOfRange = errors.New("moisture must be between 0 and 100")
	ErrRentalIncomplete   = errors.New("equipment and mobile are required")
)

// 채팅 한 턴 (질문, 답변)
type ChatExchange struct {
	Prompt string `json:"prompt"`
	Reply  string `json:"reply"`
}

type SoilReading struct {
	PH       float64 `json:"ph"`
	Moisture int     `json:"moisture"`
	N        float64 `json:"n"`
	P        float64 `json:"p"`
	K        float64 `json:"k"`
}

func (r SoilReading) Validate() error {
	if r.PH < 0 || r.PH > 14 {
		return ErrPHOutOfRange
	}
	if r.Moisture < 0 || r.Moisture > 100 {
		return ErrMoistureOutOfRange
	}
	return nil
}

type RentalListing struct {
	Equipment string `json:"equipment"`
	Owner     string `json:"owner"`
	Location  string `json:"location"`
	Mobile    string `json:"mobile"`
}

func (l RentalListing) Validate() error {
	if l.Equipment == "" || l.Mobile == "" {
		return ErrRentalIncomplete
	}
	return nil
}
