package config

import (
	"net"
	"net/url"
	"strconv"
)

func urlUserInfo(user, password string) string {
	return url.UserPassword(user, password).String()
}

func hostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
