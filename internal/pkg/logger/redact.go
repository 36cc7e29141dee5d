package logger

// RedactSecret masks a credential for safe logging, keeping a short prefix
// so different tokens can still be told apart.
// "ghp_abcdef123456" → "ghp_***"
// Values of 8 characters or fewer are fully masked: "abc" → "***"
func RedactSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return "***"
	}
	return secret[:4] + "***"
}
