//go:build !amd64 && !arm64

package crchash

const hasHWCRC = false
