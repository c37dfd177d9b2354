package api

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// サーバーは {"success": true, "products": [...]} のような包みで返すことも、
// 中身をそのまま返すこともある。どちらでも読めるようにする。
func decodeBody(body []byte, key string, out any) error {
	if out == nil {
		return nil
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}

	if key != "" && body[0] == '{' {
		var env map[string]json.RawMessage
		if err := json.Unmarshal(body, &env); err == nil {
			if raw, ok := env[key]; ok {
				return errors.Wrapf(json.Unmarshal(raw, out), "decode %q", key)
			}
			if raw, ok := env["data"]; ok {
				return errors.Wrap(json.Unmarshal(raw, out), "decode data")
			}
		}
	}

	return errors.Wrap(json.Unmarshal(body, out), "decode response")
}

// 200でも {"success": false} ならエラー扱い
func envelopeFailure(body []byte) (string, bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return "", false
	}

	var env struct {
		Success *bool  `json:"success"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err != nil || env.Success == nil || *env.Success {
		return "", false
	}
	return firstNonEmpty(env.Message, env.Error, msgDefault), true
}

// エラーボディからメッセージを取り出す（message → error の順）
func errorMessage(body []byte) (string, any) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		if s := string(bytes.TrimSpace(body)); s != "" {
			return msgDefault, s
		}
		return msgDefault, nil
	}

	if m, ok := data.(map[string]any); ok {
		msg, _ := m["message"].(string)
		errMsg, _ := m["error"].(string)
		return firstNonEmpty(msg, errMsg, msgDefault), data
	}
	return msgDefault, data
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
