// file: utils/logger.go
package utils

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// LogInfo 일반 정보 로그 (노랑)
func LogInfo(format string, v ...interface{}) {
	color.Yellow("[INFO] %s", fmt.Sprintf(format, v...))
}

// LogError 오류 로그 (빨강)
func LogError(format string, v ...interface{}) {
	color.Red("[ERROR] %s", fmt.Sprintf(format, v...))
}

// LogDebug 디버그 로그 (시안)
func LogDebug(format string, v ...interface{}) {
	color.Cyan("[DEBUG] %s", fmt.Sprintf(format, v...))
}

// LogRequest HTTP 요청 로그
func LogRequest(method, path, ip string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	color.Yellow("[%s] %s %s from %s", timestamp, method, path, ip)
}
