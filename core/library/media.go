package library

import (
	"path/filepath"
	"strings"
)

// mediaExtensions is the set of file extensions counted as photo or video
// items inside an album.
var mediaExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".tiff": {},
	".webp": {},
	".heic": {},
	".mp4":  {},
	".mov":  {},
	".mkv":  {},
}

// IsMediaFile reports whether the file name looks like a photo or video
// item, judged by its extension (case-insensitive).
func IsMediaFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := mediaExtensions[ext]
	return ok
}
