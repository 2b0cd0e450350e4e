//go:build !windows

package core

func bootstrap() {}
