//go:build !android

package app

// nativeRippleAvailable is false off Android: desktop builds draw the
// compatibility ripple.
const nativeRippleAvailable = false
