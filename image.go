package docxrender

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fumiama/go-docx"
)

// emuPerPixel converts CSS pixels (96 dpi) to English Metric Units.
const emuPerPixel = 9525

// maxRemoteImage bounds how much is read from an http(s) image source.
const maxRemoteImage = 20 << 20

var imageClient = &http.Client{Timeout: 30 * time.Second}

// ImageInjector adds a picture to its paragraph. Src is a local file path,
// a data:image/...;base64 URI or an http(s) URL. Width and Height are in EMU;
// when either is zero the picture keeps the size go-docx picks for it.
type ImageInjector struct {
	Src    string
	Width  int64
	Height int64
}

// Inject implements the Injector interface
func (i ImageInjector) Inject(doc *docx.Docx, p *docx.Paragraph) ([]interface{}, error) {
	return nil, i.addTo(p)
}

func (i ImageInjector) addTo(p *docx.Paragraph) error {
	data, err := loadImage(i.Src)
	if err != nil {
		return fmt.Errorf("image %s: %w", shortSrc(i.Src), err)
	}
	run, err := p.AddInlineDrawing(data)
	if err != nil {
		return fmt.Errorf("image %s: %w", shortSrc(i.Src), err)
	}
	if i.Width > 0 && i.Height > 0 {
		for _, c := range run.Children {
			if d, ok := c.(*docx.Drawing); ok && d.Inline != nil {
				d.Inline.Size(i.Width, i.Height)
			}
		}
	}
	return nil
}

func loadImage(src string) ([]byte, error) {
	switch {
	case src == "":
		return nil, errors.New("no src")
	case strings.HasPrefix(src, "data:image/"):
		_, payload, ok := strings.Cut(src, ",")
		if !ok || !strings.Contains(src[:len(src)-len(payload)], ";base64") {
			return nil, errors.New("invalid base64 image")
		}
		return base64.StdEncoding.DecodeString(payload)
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		resp, err := imageClient.Get(src)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return io.ReadAll(io.LimitReader(resp.Body, maxRemoteImage))
	default:
		return os.ReadFile(src)
	}
}

// pixelsToEMU parses an HTML width/height attribute. Percentages and junk
// yield 0, which leaves the default size in place.
func pixelsToEMU(v string) int64 {
	n, err := strconv.ParseInt(strings.TrimSuffix(strings.TrimSpace(v), "px"), 10, 64)
	if err != nil || n <= 0 {
		return 0
	}
	return n * emuPerPixel
}

func shortSrc(src string) string {
	if strings.HasPrefix(src, "data:") && len(src) > 32 {
		return src[:32] + "..."
	}
	return src
}
