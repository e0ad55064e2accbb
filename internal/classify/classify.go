// Package classify maps file extensions and raw byte signatures to upload
// categories and MIME content types. All functions are pure and total: they
// never fail and never touch I/O.
package classify

import "strings"

// Category is one of the six closed classification tags for uploaded content.
type Category string

const (
	CategoryImages    Category = "images"
	CategoryVideos    Category = "videos"
	CategoryDocuments Category = "documents"
	CategoryArchives  Category = "archives"
	CategoryAudios    Category = "audios"
	CategoryOthers    Category = "others"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryImages,
		CategoryVideos,
		CategoryDocuments,
		CategoryArchives,
		CategoryAudios,
		CategoryOthers,
	}
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryImages, CategoryVideos, CategoryDocuments,
		CategoryArchives, CategoryAudios, CategoryOthers:
		return true
	}
	return false
}

// categoryExtensions holds canonical extensions only; cosmetic variants are
// rewritten by extensionAliases before lookup.
var categoryExtensions = map[Category][]string{
	CategoryImages: {
		"png", "jpeg", "gif", "webp", "bmp", "tiff", "heic", "heif",
		"avif", "svg", "ico",
	},
	CategoryVideos: {
		"mp4", "mov", "avi", "mkv", "webm", "flv", "wmv", "m4v",
		"mpg", "mpeg", "3gp",
	},
	CategoryDocuments: {
		"txt", "md", "pdf", "doc", "docx", "xls", "xlsx", "ppt",
		"pptx", "csv", "rtf", "json", "xml", "yaml", "html", "log",
		"epub", "odt",
	},
	CategoryArchives: {
		"zip", "rar", "7z", "tar", "gz", "bz2", "xz", "tgz", "zst",
	},
	CategoryAudios: {
		"mp3", "wav", "flac", "aac", "ogg", "m4a", "wma", "opus",
		"aiff", "mid",
	},
}

var extensionAliases = map[string]string{
	"tif":      "tiff",
	"jpg":      "jpeg",
	"jpe":      "jpeg",
	"jfif":     "jpeg",
	"htm":      "html",
	"yml":      "yaml",
	"markdown": "md",
}

var extensionCategory = func() map[string]Category {
	m := make(map[string]Category)
	for cat, exts := range categoryExtensions {
		for _, e := range exts {
			m[e] = cat
		}
	}
	return m
}()

// normalizeExtension lowercases ext, strips any leading dots and rewrites
// known aliases to their canonical form.
func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimLeft(strings.TrimSpace(ext), "."))
	if canonical, ok := extensionAliases[ext]; ok {
		return canonical
	}
	return ext
}

// Classify returns the category for ext, falling back to image signature
// sniffing on data when the extension is missing or unknown, and finally to
// CategoryOthers. It never fails.
func Classify(ext string, data []byte) Category {
	if e := normalizeExtension(ext); e != "" {
		if cat, ok := extensionCategory[e]; ok {
			return cat
		}
	}
	if len(data) > 0 {
		if _, ok := DetectImageExtension(data); ok {
			return CategoryImages
		}
	}
	return CategoryOthers
}

// DetectImageExtension inspects the leading bytes of data for the magic
// signatures of common image formats and returns the canonical extension.
// Only image formats are sniffed; anything else reports ok=false.
func DetectImageExtension(data []byte) (string, bool) {
	switch {
	case hasPrefix(data, []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}):
		return "png", true
	case hasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "jpeg", true
	case hasPrefix(data, []byte("GIF87a")) || hasPrefix(data, []byte("GIF89a")):
		return "gif", true
	case isRIFFWebP(data):
		return "webp", true
	case hasPrefix(data, []byte("BM")):
		return "bmp", true
	case hasPrefix(data, []byte{'I', 'I', 0x2A, 0x00}) || hasPrefix(data, []byte{'M', 'M', 0x00, 0x2A}):
		return "tiff", true
	}
	if brand, ok := isoBMFFBrand(data); ok {
		switch brand {
		case "heic", "heix", "hevc", "heim", "heis", "hevm", "hevs":
			return "heic", true
		case "mif1", "msf1":
			return "heif", true
		case "avif", "avis":
			return "avif", true
		}
	}
	return "", false
}

func hasPrefix(data, magic []byte) bool {
	if len(data) < len(magic) {
		return false
	}
	for i := range magic {
		if data[i] != magic[i] {
			return false
		}
	}
	return true
}

// isRIFFWebP checks the RIFF container header: "RIFF" at 0, "WEBP" at 8.
func isRIFFWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// isoBMFFBrand extracts the major brand of an ISO-BMFF file: a 4-byte box
// size, the literal "ftyp", then the brand at offset 8.
func isoBMFFBrand(data []byte) (string, bool) {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(string(data[8:12]))), true
}
