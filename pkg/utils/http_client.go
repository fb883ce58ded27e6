package utils

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrPrivateAddress 目标地址不是公网地址
var ErrPrivateAddress = errors.New("destination is not a public address")

// NewHTTPClient 创建统一配置的 Resty 客户端
// 对外探测类请求都走这里，供应商 SDK 自带客户端不在此列
func NewHTTPClient(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "Novonovo-Go/1.0").
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))
}

// NewPublicHTTPClient 只允许连接公网地址，用于访问客户端提交的 URL
// 检查放在拨号阶段，DNS 解析结果和重定向目标同样受限
func NewPublicHTTPClient(timeout time.Duration) *resty.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
		Control:   denyPrivateDial,
	}
	return NewHTTPClient(timeout).SetTransport(&http.Transport{
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	})
}

func denyPrivateDial(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	ip := net.ParseIP(host)
	if ip == nil || !IsPublicIP(ip) {
		return fmt.Errorf("%w: %s", ErrPrivateAddress, host)
	}
	return nil
}

// cgnat 100.64.0.0/10 运营商级 NAT
var cgnat = &net.IPNet{IP: net.IPv4(100, 64, 0, 0), Mask: net.CIDRMask(10, 32)}

// IsPublicIP 排除回环、私网、链路本地、组播与未指定地址
func IsPublicIP(ip net.IP) bool {
	switch {
	case ip.IsLoopback(), ip.IsPrivate(), ip.IsUnspecified(),
		ip.IsLinkLocalUnicast(), ip.IsLinkLocalMulticast(),
		ip.IsInterfaceLocalMulticast(), ip.IsMulticast():
		return false
	case cgnat.Contains(ip):
		return false
	}
	return true
}
