package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// FlexibleInt64 accepts a JSON number, a numeric string, or null. The drive
// webhook sends file sizes in all three shapes; anything unparseable counts
// as zero rather than failing the whole upload.
type FlexibleInt64 int64

func (f *FlexibleInt64) UnmarshalJSON(b []byte) error {
	*f = 0

	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		if n, err := strconv.ParseInt(strings.TrimSpace(str), 10, 64); err == nil {
			*f = FlexibleInt64(n)
		}
		return nil
	}

	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexibleInt64(n)
		return nil
	}
	var fl float64
	if err := json.Unmarshal(b, &fl); err == nil {
		*f = FlexibleInt64(int64(fl))
	}
	return nil
}

// UploadDocumentRequest is the payload of POST /upload-document. It carries
// either a plain drive file or a drive folder, distinguished by FileType.
type UploadDocumentRequest struct {
	Title      string        `json:"title" binding:"required"`
	FileType   string        `json:"file_type" binding:"required"`
	FileSize   FlexibleInt64 `json:"file_size"`
	FolderID   string        `json:"folder_id"` // drive id of the containing folder
	UploadedBy int64         `json:"uploaded_by" binding:"required"`
	UploadDate *time.Time    `json:"upload_date"`
	FileURL    string        `json:"file_url" binding:"required"`
	Tags       string        `json:"tags"`
	DriveID    string        `json:"drive_id"`
	FileID     string        `json:"file_id"` // legacy alias for drive_id
}
