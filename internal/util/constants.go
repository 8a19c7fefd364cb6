package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// context keys
const (
	ContextClaims   = "claims"
	ContextIdentity = "identity"
	ContextSession  = "session"
)

const (
	MimeCSV         = "text/csv"
	MimeXLSX        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeOctetStream = "application/octet-stream"
)

var AllowedDatasetExtensions = []string{".csv", ".xlsx"}

// 附件只接受文档和图片, 本地存储时由 /uploads 直接对外提供
var AllowedAttachmentExtensions = []string{
	".pdf", ".doc", ".docx",
	".png", ".jpg", ".jpeg", ".gif", ".webp",
	".csv", ".xlsx",
}
