package utils

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 最小 PNG 文件头
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

func TestProbeImage(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantType string
		wantErr  bool
	}{
		{
			name: "HEAD 返回图片类型",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "image/jpeg; charset=binary")
				if r.Method == http.MethodGet {
					_, _ = w.Write([]byte("jpeg"))
				}
			},
			wantType: "image/jpeg",
		},
		{
			name: "不支持 HEAD 时按内容识别",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodHead {
					w.WriteHeader(http.StatusMethodNotAllowed)
					return
				}
				w.Header().Set("Content-Type", "application/octet-stream")
				_, _ = w.Write(pngHeader)
			},
			wantType: "image/png",
		},
		{
			name: "不是图片",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte("<html><body>oi</body></html>"))
			},
			wantErr: true,
		},
		{
			name: "404",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			info, err := ProbeImage(context.Background(), NewHTTPClient(5*time.Second), srv.URL+"/ref.img")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, info.ContentType)
		})
	}
}

func TestProbeImage_LargeBody(t *testing.T) {
	t.Run("声明大小超过上限", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			w.Header().Set("Content-Length", strconv.Itoa(64<<20+8))
			_, _ = w.Write(pngHeader)
		}))
		defer srv.Close()

		info, err := ProbeImage(context.Background(), NewHTTPClient(5*time.Second), srv.URL+"/big.png")
		assert.ErrorIs(t, err, ErrReferenceTooLarge)
		assert.Nil(t, info)
	})

	t.Run("未声明大小时只读取开头", func(t *testing.T) {
		filler := bytes.Repeat([]byte{0}, 64<<10)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			flusher := w.(http.Flusher)
			_, _ = w.Write(pngHeader)
			flusher.Flush()
			for i := 0; i < 128; i++ {
				if _, err := w.Write(filler); err != nil {
					return
				}
				flusher.Flush()
			}
		}))
		defer srv.Close()

		info, err := ProbeImage(context.Background(), NewHTTPClient(5*time.Second), srv.URL+"/stream.png")
		require.NoError(t, err)
		assert.Equal(t, "image/png", info.ContentType)
		assert.Zero(t, info.Size)
	})
}

func TestProbeImage_PublicClientRejectsInternalHosts(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngHeader)
	}))
	defer srv.Close()

	info, err := ProbeImage(context.Background(), NewPublicHTTPClient(5*time.Second), srv.URL+"/internal-admin")
	assert.ErrorIs(t, err, ErrPrivateAddress)
	assert.Nil(t, info)
	assert.Zero(t, hits.Load())

	_, err = ProbeImage(context.Background(), NewPublicHTTPClient(5*time.Second), "file:///etc/passwd")
	assert.Error(t, err)
}

func TestIsPublicIP(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"127.0.0.1", false},
		{"10.1.2.3", false},
		{"172.16.0.9", false},
		{"192.168.1.1", false},
		{"169.254.169.254", false},
		{"100.64.0.1", false},
		{"0.0.0.0", false},
		{"::1", false},
		{"fd00::1", false},
		{"fe80::1", false},
		{"8.8.8.8", true},
		{"2606:4700:4700::1111", true},
	}
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPublicIP(net.ParseIP(tt.ip)))
		})
	}
}
