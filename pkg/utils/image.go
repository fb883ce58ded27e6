package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
)

const (
	// MaxReferenceImageSize 参考图声明大小上限
	MaxReferenceImageSize = 20 << 20
	// sniffLimit 识别类型只读取响应开头
	sniffLimit = 3072
)

// ErrReferenceTooLarge 参考图超过大小上限
var ErrReferenceTooLarge = errors.New("reference image too large")

// ImageInfo 参考图探测结果
type ImageInfo struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size,omitempty"`
}

// ProbeImage 确认参考图可访问并识别类型
// 先发 HEAD，服务端不支持或没有返回类型时再 GET，只读取开头字节自行识别
func ProbeImage(ctx context.Context, client *resty.Client, url string) (*ImageInfo, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("probe image failed: unsupported url %q", url)
	}

	resp, err := client.R().SetContext(ctx).Head(url)
	if err == nil && resp.StatusCode() == http.StatusOK {
		size := resp.RawResponse.ContentLength
		if size > MaxReferenceImageSize {
			return nil, fmt.Errorf("%w: %d bytes", ErrReferenceTooLarge, size)
		}
		if ct := mediaType(resp.Header().Get("Content-Type")); strings.HasPrefix(ct, "image/") {
			return &ImageInfo{URL: url, ContentType: ct, Size: max(size, 0)}, nil
		}
	}

	resp, err = client.R().SetContext(ctx).SetDoNotParseResponse(true).Get(url)
	if err != nil {
		return nil, fmt.Errorf("probe image failed: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("probe image failed with status: %d", resp.StatusCode())
	}
	size := resp.RawResponse.ContentLength
	if size > MaxReferenceImageSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrReferenceTooLarge, size)
	}

	head, err := io.ReadAll(io.LimitReader(body, sniffLimit))
	if err != nil {
		return nil, fmt.Errorf("probe image read failed: %w", err)
	}
	mt := mimetype.Detect(head)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("reference is not an image: %s", mt.String())
	}
	return &ImageInfo{URL: url, ContentType: mediaType(mt.String()), Size: max(size, 0)}, nil
}

func mediaType(v string) string {
	if v == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(v)
	if err != nil {
		return strings.TrimSpace(v)
	}
	return mt
}
