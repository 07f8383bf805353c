package model

// swagger:model User
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	// bcrypt哈希，仅存储层可见，响应前必须经过 Sanitized()
	PasswordHash string `json:"password_hash,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
	CreatedAt    int64  `json:"createdAt"`
}

// Sanitized 返回去掉凭据的副本，用于API响应
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
