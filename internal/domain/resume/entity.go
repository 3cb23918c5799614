package resume

import "time"

// MaxFileSize is the upload ceiling, inclusive: a file of exactly this many
// bytes is accepted.
const MaxFileSize = 10 * 1024 * 1024

var allowedTypes = map[string]struct{}{
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// TypeAllowed checks the declared MIME type against the PDF/DOCX allow-list.
func TypeAllowed(fileType string) bool {
	_, ok := allowedTypes[fileType]
	return ok
}

// Resume records an upload. userName and userEmail are a snapshot of the
// uploader at upload time, not a live join against users.
type Resume struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	FileSize   int64     `json:"fileSize"`
	FileType   string    `json:"fileType"`
	UploadedAt time.Time `json:"uploadedAt"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserEmail  string    `json:"userEmail"`
}
