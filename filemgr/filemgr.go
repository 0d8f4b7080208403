package filemgr

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

func ensureSafeFilename(name, ext string) string {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	reg := regexp.MustCompile(`[^a-zA-Z0-9_\-]`)
	name = reg.ReplaceAllString(name, "")
	return name + ext
}

func isExtensionAllowed(ext string, picType PictureType) bool {
	for _, a := range AllowedExtensions[picType] {
		if ext == a {
			return true
		}
	}
	return false
}

func isMIMEAllowed(mimeType string, picType PictureType) bool {
	for _, a := range AllowedMIMEs[picType] {
		if mimeType == a {
			return true
		}
	}
	return false
}

func ResolvePath(entity EntityType, picType PictureType) string {
	subfolder := PictureSubfolders[picType]
	if subfolder == "" {
		subfolder = "misc"
	}
	return filepath.Join("static", "uploads", strings.ToLower(string(entity)), subfolder)
}

// DetectMediaKind maps a stored filename to the coarse media type used in the
// site payload. The package's own extension sets are checked before the
// system MIME table, which lacks the audio/video entries on minimal hosts.
// Unknown extensions fall back to image.
func DetectMediaKind(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if isExtensionAllowed(ext, PicVideo) {
		return "video"
	}
	if isExtensionAllowed(ext, PicAudio) {
		return "audio"
	}
	mimeType := mime.TypeByExtension(ext)
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return "video"
	case strings.HasPrefix(mimeType, "audio/"):
		return "audio"
	default:
		return "image"
	}
}

// SaveFile saves a validated upload under destDir and returns the stored name.
func SaveFile(reader io.Reader, header *multipart.FileHeader, destDir string, picType PictureType, maxSize int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isExtensionAllowed(ext, picType) {
		return "", fmt.Errorf("%w: %s for %s", ErrInvalidExtension, ext, picType)
	}

	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read header: %w", err)
	}
	mimeType := http.DetectContentType(buf[:n])
	if mimeType == "application/octet-stream" {
		if formMime := header.Header.Get("Content-Type"); formMime != "" {
			mimeType = formMime
		}
	}
	if !isMIMEAllowed(mimeType, picType) {
		return "", fmt.Errorf("%w: %s for %s", ErrInvalidMIME, mimeType, picType)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", destDir, err)
	}

	filename := ensureSafeFilename(header.Filename, ext)
	if strings.TrimSuffix(filename, ext) == "" {
		filename = uuid.New().String() + ext
	} else {
		// prefix with a uuid so repeat uploads of the same file never collide
		filename = uuid.New().String()[:8] + "_" + filename
	}

	fullPath := filepath.Join(destDir, filename)
	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", fullPath, err)
	}
	defer out.Close()

	if _, err := out.Write(buf[:n]); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	written, err := io.Copy(out, io.LimitReader(reader, maxSize-int64(n)))
	if err != nil {
		return "", fmt.Errorf("write body: %w", err)
	}
	if maxSize > 0 && written+int64(n) > maxSize {
		return "", ErrFileTooLarge
	}

	return filename, nil
}

func generateThumbnail(img image.Image, entity EntityType, baseFilename string) error {
	thumbDir := ResolvePath(entity, PicThumb)
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return err
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	name := strings.TrimSuffix(baseFilename, filepath.Ext(baseFilename)) + ".jpg"

	out, err := os.Create(filepath.Join(thumbDir, name))
	if err != nil {
		return err
	}
	defer out.Close()

	return jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85})
}

// SaveFormFile saves the named form file for an entity; returns "" when the
// field is absent and not required.
func SaveFormFile(form *multipart.Form, formKey string, entity EntityType, picType PictureType, required bool) (string, error) {
	files := form.File[formKey]
	if len(files) == 0 {
		if required {
			return "", fmt.Errorf("missing required file field %q", formKey)
		}
		return "", nil
	}

	header := files[0]
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	dest := ResolvePath(entity, picType)
	fileName, err := SaveFile(file, header, dest, picType, 50<<20)
	if err != nil {
		return "", err
	}

	if picType == PicPhoto || picType == PicBanner {
		if img, err := imaging.Open(filepath.Join(dest, fileName)); err == nil {
			_ = generateThumbnail(img, entity, fileName)
		}
	}

	return fileName, nil
}
