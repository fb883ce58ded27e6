package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ==================== 内容数据 ====================
// content_data 以 JSON 存储时按 type 字段区分结构

// ContentPayload 各内容类型的结构化数据
type ContentPayload interface {
	PayloadType() string
}

type PostPayload struct {
	Text     string `json:"text"`
	Hashtags string `json:"hashtags,omitempty"`
}

type VideoPayload struct {
	Title       string `json:"title"`
	Script      string `json:"script"`
	VisualNotes string `json:"visual_notes,omitempty"`
	Hashtags    string `json:"hashtags,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

type LandingPagePayload struct {
	Headline    string   `json:"headline"`
	Subheadline string   `json:"subheadline,omitempty"`
	Benefits    []string `json:"benefits,omitempty"`
	CTA         string   `json:"cta,omitempty"`
	SocialProof string   `json:"social_proof,omitempty"`
	Copy        string   `json:"copy,omitempty"`
}

type ImagePayload struct {
	ImageURL string `json:"image_url"`
	Prompt   string `json:"prompt,omitempty"`
	Size     string `json:"size,omitempty"`
}

func (PostPayload) PayloadType() string        { return ContentTypePost }
func (VideoPayload) PayloadType() string       { return ContentTypeVideo }
func (LandingPagePayload) PayloadType() string { return ContentTypeLandingPage }
func (ImagePayload) PayloadType() string       { return ContentTypeImage }

var (
	ErrPayloadTypeMismatch = errors.New("content_data type does not match content_type")
	ErrUnknownContentType  = errors.New("unknown content type")
)

func newPayload(contentType string) (ContentPayload, error) {
	switch contentType {
	case ContentTypePost:
		return &PostPayload{}, nil
	case ContentTypeVideo:
		return &VideoPayload{}, nil
	case ContentTypeLandingPage:
		return &LandingPagePayload{}, nil
	case ContentTypeImage:
		return &ImagePayload{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownContentType, contentType)
	}
}

// IsJSONObject 判断内容数据是否为 JSON 对象，其他情况按原始文本处理
func IsJSONObject(data string) bool {
	return strings.HasPrefix(strings.TrimSpace(data), "{")
}

// DecodeContentPayload 按 contentType 解析 JSON 内容数据
// type 字段可省略，出现时必须与 contentType 一致，未知字段视为错误
func DecodeContentPayload(contentType, data string) (ContentPayload, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(data), &head); err != nil {
		return nil, fmt.Errorf("decode content_data: %w", err)
	}
	if head.Type != "" && head.Type != contentType {
		return nil, fmt.Errorf("%w: %s != %s", ErrPayloadTypeMismatch, head.Type, contentType)
	}

	payload, err := newPayload(contentType)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, fmt.Errorf("decode content_data: %w", err)
	}
	delete(fields, "type")
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadTypeMismatch, err)
	}
	return payload, nil
}

// EncodeContentPayload 序列化并写入 type 字段
func EncodeContentPayload(p ContentPayload) (string, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", err
	}
	fields["type"], _ = json.Marshal(p.PayloadType())

	out, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
