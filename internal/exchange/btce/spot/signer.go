package spot

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"regexp"
	"strconv"
)

// Sign returns the lowercase hex HMAC-SHA512 of body keyed with secret.
func Sign(secret, body string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

// 交易所返回的 nonce 错误信息形如 "invalid nonce parameter; on key:4999999, you sent:5000000"
var nonceInErrorRe = regexp.MustCompile(`:([0-9]+),`)

// parseNonce extracts the exchange reported nonce from a nonce error message.
func parseNonce(msg string) (int64, bool) {
	m := nonceInErrorRe.FindStringSubmatch(msg)
	if len(m) < 2 {
		return 0, false
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
