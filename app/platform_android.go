//go:build android

package app

const nativeRippleAvailable = true
