package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	jwtPattern       = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerPattern    = regexp.MustCompile(`(?i)^bearer\s+.+$`)
	basicAuthPattern = regexp.MustCompile(`(?i)^basic\s+.+$`)
	bcryptPattern    = regexp.MustCompile(`^\$2[aby]?\$\d{2}\$[./A-Za-z0-9]{53}$`)
)

// sensitiveFields are attribute names whose values are never logged.
var sensitiveFields = []string{
	"password", "password_confirm", "passwordConfirm", "password_hash", "PasswordHash",
	"secret", "session_secret", "token", "session", "cookie",
	"apiKey", "apikey", "api_key",
	"accessToken", "access_token", "refreshToken", "refresh_token",
	"credential", "credentials", "authorization", "auth", "bearer",
	"privateKey", "private_key", "secretKey", "secret_key",
}

// DefaultRedactOptions returns the masq options applied by every logger
// built in this package. Extend with NewReplaceAttr(extra...).
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(sensitiveFields)+6)
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(basicAuthPattern),
		masq.WithRegex(bcryptPattern),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr function that redacts secrets.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
