package utils

import (
	"fmt"
	"net"
	"time"
)

/**
 * Check whether a TCP port looks free on localhost
 * @param {int} port - Port number to probe
 * @returns {bool} true when nothing answered on the port
 */
func CheckPortAvailable(port int) bool {
	timeout := time.Second
	conn, err := net.DialTimeout("tcp", net.JoinHostPort("localhost", fmt.Sprintf("%d", port)), timeout)
	if err != nil {
		return true
	}
	if conn != nil {
		conn.Close()
		return false
	}
	return true
}
