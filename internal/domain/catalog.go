package domain

import "time"

// Folder mirrors one folder of the external drive hierarchy.
// DriveFolderID is the natural key: a drive folder is inserted once and
// returned unchanged on every later ingestion. ParentID points at the local
// row of the parent folder and stays NULL when the parent has not been
// ingested yet; children are discovered by query, not stored pointers.
type Folder struct {
	ID            int64     `gorm:"column:id;primaryKey" json:"id"`
	DriveFolderID string    `gorm:"column:drive_folder_id;size:255;uniqueIndex;not null" json:"drive_folder_id"`
	FolderName    string    `gorm:"column:folder_name;size:255;not null" json:"folder_name"`
	ParentID      *int64    `gorm:"column:parent_id" json:"parent_id"`
	DrivePath     string    `gorm:"column:drive_path;size:500" json:"drive_path"`
	CreatedBy     *int64    `gorm:"column:created_by" json:"created_by"`
	CreatedDate   time.Time `gorm:"column:created_date" json:"created_date"`
}

func (Folder) TableName() string { return "folders" }

// Document mirrors one file of the external drive. DriveID is the natural
// upsert key, FolderID resolves the drive folder reference locally (NULL when
// the folder is unknown).
type Document struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"id"`
	Title      string    `gorm:"column:title;size:255;not null" json:"title"`
	FileType   string    `gorm:"column:file_type;size:100" json:"file_type"`
	FileSize   int64     `gorm:"column:file_size" json:"file_size"`
	FolderID   *int64    `gorm:"column:folder_id" json:"folder_id"`
	DriveID    string    `gorm:"column:drive_id;size:255;uniqueIndex;not null" json:"drive_id"`
	UploadedBy *int64    `gorm:"column:uploaded_by" json:"uploaded_by"`
	UploadDate time.Time `gorm:"column:upload_date" json:"upload_date"`
	FileURL    string    `gorm:"column:file_url;size:500" json:"file_url"`
	Tags       string    `gorm:"column:tags;size:255" json:"tags"`
}

func (Document) TableName() string { return "documents" }
