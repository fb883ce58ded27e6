package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsJSONObject(t *testing.T) {
	assert.True(t, IsJSONObject(`  {"text":"oi"}`))
	assert.False(t, IsJSONObject("🚀 Post sobre SEO"))
	assert.False(t, IsJSONObject(`["a"]`))
}

func TestDecodeContentPayload(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		data        string
		want        ContentPayload
		wantErr     error
	}{
		{
			name:        "帖子",
			contentType: ContentTypePost,
			data:        `{"type":"post","text":"Olá","hashtags":"#SEO"}`,
			want:        &PostPayload{Text: "Olá", Hashtags: "#SEO"},
		},
		{
			name:        "省略 type 字段",
			contentType: ContentTypeLandingPage,
			data:        `{"headline":"Domine SEO","benefits":["a","b"]}`,
			want:        &LandingPagePayload{Headline: "Domine SEO", Benefits: []string{"a", "b"}},
		},
		{
			name:        "type 不一致",
			contentType: ContentTypeVideo,
			data:        `{"type":"post","text":"x"}`,
			wantErr:     ErrPayloadTypeMismatch,
		},
		{
			name:        "字段不属于该类型",
			contentType: ContentTypeImage,
			data:        `{"script":"roteiro"}`,
			wantErr:     ErrPayloadTypeMismatch,
		},
		{
			name:        "未知内容类型",
			contentType: "carousel",
			data:        `{"text":"x"}`,
			wantErr:     ErrUnknownContentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeContentPayload(tt.contentType, tt.data)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeContentPayload(t *testing.T) {
	out, err := EncodeContentPayload(VideoPayload{Title: "SEO", Script: "GANCHO"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"video","title":"SEO","script":"GANCHO"}`, out)

	back, err := DecodeContentPayload(ContentTypeVideo, out)
	require.NoError(t, err)
	assert.Equal(t, &VideoPayload{Title: "SEO", Script: "GANCHO"}, back)
}
