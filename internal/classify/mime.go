package classify

// contentTypes maps canonical extensions to MIME content types. Anything not
// listed falls back to application/octet-stream.
var contentTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"heic": "image/heic",
	"heif": "image/heif",
	"avif": "image/avif",
	"svg":  "image/svg+xml",
	"ico":  "image/x-icon",

	"mp4":  "video/mp4",
	"mov":  "video/quicktime",
	"avi":  "video/x-msvideo",
	"mkv":  "video/x-matroska",
	"webm": "video/webm",
	"mpg":  "video/mpeg",
	"mpeg": "video/mpeg",
	"m4v":  "video/x-m4v",
	"3gp":  "video/3gpp",

	"txt":  "text/plain",
	"md":   "text/markdown",
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"csv":  "text/csv",
	"rtf":  "application/rtf",
	"json": "application/json",
	"xml":  "application/xml",
	"yaml": "application/yaml",
	"html": "text/html",
	"log":  "text/plain",
	"epub": "application/epub+zip",

	"zip": "application/zip",
	"rar": "application/vnd.rar",
	"7z":  "application/x-7z-compressed",
	"tar": "application/x-tar",
	"gz":  "application/gzip",
	"tgz": "application/gzip",
	"bz2": "application/x-bzip2",
	"xz":  "application/x-xz",
	"zst": "application/zstd",

	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"flac": "audio/flac",
	"aac":  "audio/aac",
	"ogg":  "audio/ogg",
	"m4a":  "audio/mp4",
	"opus": "audio/opus",
	"aiff": "audio/aiff",
}

// ContentTypeForExtension returns the MIME type for ext, defaulting to the
// generic binary type when unknown.
func ContentTypeForExtension(ext string) string {
	if ct, ok := contentTypes[normalizeExtension(ext)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// imageMIMEExtensions reverses the recognized image MIME types back to a
// canonical extension. Used when decoding inline image data that carries a
// declared MIME type but no file name.
var imageMIMEExtensions = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpeg",
	"image/jpg":     "jpeg",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/bmp":     "bmp",
	"image/tiff":    "tiff",
	"image/heic":    "heic",
	"image/heif":    "heif",
	"image/avif":    "avif",
	"image/svg+xml": "svg",
}

// ExtensionForImageMIME maps a recognized image MIME type to its canonical
// extension.
func ExtensionForImageMIME(mime string) (string, bool) {
	ext, ok := imageMIMEExtensions[mime]
	return ext, ok
}
