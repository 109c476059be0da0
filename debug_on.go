//go:build pixeldebug

package pixel

const debugAsserts = true
