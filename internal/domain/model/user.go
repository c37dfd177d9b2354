package model

import "encoding/json"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ログイン中のユーザー。nilなら未ログイン。
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`

	// サーバーが返した上記以外の項目（保存時にそのまま書き戻す）
	Extra map[string]json.RawMessage `json:"-"`
}

var userFields = map[string]bool{
	"id": true, "name": true, "email": true, "role": true, "phone": true, "avatar": true,
}

func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		if userFields[k] {
			continue
		}
		if p.Extra == nil {
			p.Extra = map[string]json.RawMessage{}
		}
		p.Extra[k] = v
	}

	*u = User(p)
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	b, err := json.Marshal(plain(u))
	if err != nil || len(u.Extra) == 0 {
		return b, err
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	for k, v := range u.Extra {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	return json.Marshal(m)
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UPDATE_USER の部分更新。nilのフィールドは変更しない。
type UserPatch struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Role   *Role   `json:"role,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// Applyはpatchをuにマージした新しいUserを返す（uは変更しない）
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	return u
}

// プロフィールから作るpatch（全項目を上書き）
func PatchFromUser(u User) UserPatch {
	return UserPatch{
		Name:   &u.Name,
		Email:  &u.Email,
		Role:   &u.Role,
		Phone:  &u.Phone,
		Avatar: &u.Avatar,
	}
}
