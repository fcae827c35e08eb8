package util

// 报告归档的存储类型
const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// ContextUserKey 认证中间件写入 *Claims 的 key
const ContextUserKey = "user"

// 分页默认值
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)
