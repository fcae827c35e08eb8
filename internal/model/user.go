package model

// UserRole 由认证服务签发在 JWT 中，这里只做校验
type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

