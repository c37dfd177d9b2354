package api

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// トークンの中身（whoami 表示用）
type TokenInfo struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

func (t TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

// ParseTokenInfoは署名を検証せずにクレームだけ読む（表示専用）
func ParseTokenInfo(token string) (TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, errors.Wrap(err, "parse token")
	}

	var info TokenInfo
	switch sub := claims["sub"].(type) {
	case string:
		info.Subject = sub
	case float64:
		info.Subject = strconv.FormatFloat(sub, 'f', -1, 64)
	}
	info.Role, _ = claims["role"].(string)
	if exp, ok := claims["exp"].(float64); ok {
		info.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return info, nil
}
