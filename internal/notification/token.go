package notification

import "regexp"

// fcmTokenPattern matches the shape of FCM registration tokens.
var fcmTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_:\-]{32,4096}$`)

func ValidToken(token string) bool {
	return fcmTokenPattern.MatchString(token)
}

// FilterTokens dedupes tokens and drops malformed ones, keeping first-seen order.
func FilterTokens(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	valid := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		if ValidToken(token) {
			valid = append(valid, token)
		}
	}
	return valid
}
