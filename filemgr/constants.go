package filemgr

import "errors"

type EntityType string
type PictureType string

const (
	EntitySite  EntityType = "site"
	EntityMedia EntityType = "media"

	PicBanner PictureType = "banner"
	PicPhoto  PictureType = "photo"
	PicThumb  PictureType = "thumb"
	PicAudio  PictureType = "audio"
	PicVideo  PictureType = "video"
	PicMap    PictureType = "map"
)

var (
	AllowedExtensions = map[PictureType][]string{
		PicPhoto:  {".jpg", ".jpeg", ".png", ".gif", ".webp"},
		PicThumb:  {".jpg"},
		PicBanner: {".jpg", ".jpeg", ".png"},
		PicAudio:  {".mp3", ".wav", ".aac"},
		PicVideo:  {".mp4", ".mov", ".avi", ".webm"},
		PicMap:    {".jpg", ".jpeg", ".png", ".pdf", ".svg"},
	}

	AllowedMIMEs = map[PictureType][]string{
		PicPhoto:  {"image/jpeg", "image/png", "image/gif", "image/webp"},
		PicThumb:  {"image/jpeg"},
		PicBanner: {"image/jpeg", "image/png"},
		PicAudio:  {"audio/mpeg", "audio/wav", "audio/aac"},
		PicVideo:  {"video/mp4", "video/quicktime", "video/x-msvideo", "video/webm"},
		PicMap:    {"image/jpeg", "image/png", "application/pdf", "image/svg+xml"},
	}

	PictureSubfolders = map[PictureType]string{
		PicBanner: "banner",
		PicPhoto:  "photo",
		PicThumb:  "thumb",
		PicAudio:  "audio",
		PicVideo:  "videos",
		PicMap:    "maps",
	}

	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)
