package crchash

import "golang.org/x/sys/cpu"

var hasHWCRC = cpu.X86.HasSSE42
