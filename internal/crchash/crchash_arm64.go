package crchash

import "golang.org/x/sys/cpu"

var hasHWCRC = cpu.ARM64.HasCRC32
