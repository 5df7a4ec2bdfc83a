// internal/app/system/limits/limits.go
package limits

// Request body size limits. These keep oversized posts from exhausting memory.
const (
	// MaxLoginFormSize caps the sign-in form (email, password, return URL).
	MaxLoginFormSize = 16 << 10 // 16 KB
)
