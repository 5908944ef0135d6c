//go:build unix && !(darwin && arm64)

package hostmem

var host platform = posixPlatform{}
