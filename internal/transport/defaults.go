package transport

import "time"

const (
	defaultProxyTimeout = 10 * time.Second
	defaultProxyRPS     = 10
	defaultProxyMaxBody = 1 << 20
)
