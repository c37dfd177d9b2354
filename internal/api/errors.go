package api

import (
	"errors"
	"fmt"
)

// 正規化に使うステータス
const (
	StatusNetwork = 0  // レスポンスが返ってこなかった
	StatusUnknown = -1 // それ以外（リクエスト組み立て・デコード失敗など）
)

const (
	msgDefault = "An error occurred"
	msgNetwork = "Network error. Please check your connection."
	msgUnknown = "An unexpected error occurred"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNetwork      = errors.New("network error")
)

// APIエラーはすべてこの形に揃える
type Error struct {
	Message string
	Status  int
	// サーバーが返したボディ（JSONでなければ文字列）
	Data any

	err error
}

func (e *Error) Error() string {
	if e.Status <= 0 {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.err
}

func AsError(err error) (*Error, bool) {
	var ae *Error
	ok := errors.As(err, &ae)
	return ae, ok
}

// errがstatusのAPIエラーか
func IsStatus(err error, status int) bool {
	ae, ok := AsError(err)
	return ok && ae.Status == status
}

func networkError(cause error) *Error {
	return &Error{Message: msgNetwork, Status: StatusNetwork, err: errors.Join(ErrNetwork, cause)}
}

func unknownError(cause error) *Error {
	msg := msgUnknown
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}
	return &Error{Message: msg, Status: StatusUnknown, err: cause}
}
