package catalog

import "errors"

var (
	ErrUploaderNotFound = errors.New("no user found with the given uploader id")
	ErrMissingDriveID   = errors.New("drive_id (or file_id) is required")
)
