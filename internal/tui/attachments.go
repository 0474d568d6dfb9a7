package tui

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"ai-adib/internal/app"
)

const maxAttachmentBytes = 8 << 20

var imageMIMETypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// LoadImageAttachment reads an image file and packs it for a multimodal
// request. Accepts plain paths, ~/ shorthand and file:// URIs (terminals
// emit the latter on drag and drop).
func LoadImageAttachment(raw string) (*app.Attachment, error) {
	path, ok := normalizeAttachmentPath(raw)
	if !ok {
		return nil, fmt.Errorf("fayl yo'li tushunarsiz: %q", raw)
	}

	mimeType, ok := imageMIMETypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("qo'llab-quvvatlanmaydigan rasm turi: %s", filepath.Ext(path))
	}

	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !st.Mode().IsRegular() {
		return nil, fmt.Errorf("oddiy fayl emas: %s", path)
	}
	if st.Size() > maxAttachmentBytes {
		return nil, fmt.Errorf("rasm juda katta (%d bayt)", st.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &app.Attachment{
		Data:     base64.StdEncoding.EncodeToString(data),
		MIMEType: mimeType,
	}, nil
}

func normalizeAttachmentPath(token string) (string, bool) {
	token = strings.TrimSpace(token)
	token = strings.Trim(token, `'"`)
	if token == "" {
		return "", false
	}

	if strings.HasPrefix(token, "file://") {
		u, err := url.Parse(token)
		if err != nil {
			return "", false
		}
		path := u.Path
		if path == "" && u.Opaque != "" {
			path = u.Opaque
		}
		if path == "" {
			return "", false
		}
		if decoded, err := url.PathUnescape(path); err == nil {
			path = decoded
		}
		token = path
	}

	if strings.HasPrefix(token, "~/") || token == "~" {
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			if token == "~" {
				token = home
			} else {
				token = filepath.Join(home, token[2:])
			}
		}
	}

	return filepath.Clean(token), true
}
