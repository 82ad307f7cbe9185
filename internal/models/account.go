package models

import (
	"fmt"
	"strings"
)

// 계정 역할
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// ParseRole accepts "buyer"/"seller" in any letter case.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleBuyer:
		return RoleBuyer, nil
	case RoleSeller:
		return RoleSeller, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// 회원 계정, users.json 의 값으로 저장됨
type Account struct {
	Username     string `json:"-"`
	PasswordHash string `json:"password"`
	Role         Role   `json:"role"`
}
