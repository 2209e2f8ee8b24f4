package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

// Notice is a one-shot user-facing message carried across a redirect and
// rendered by the next page.
type Notice struct {
	Kind    string `json:"kind"` // "success" or "error"
	Message string `json:"message"`
}

const (
	noticeSuccess = "success"
	noticeError   = "error"

	flashCookieName = "notice"
	flashMaxAge     = 300
)

// flashCodec signs notice cookies so a client cannot forge or alter them.
// The value format is base64(json payload) + "." + base64(hmac).
type flashCodec struct {
	secret []byte
}

func newFlashCodec(secret string) *flashCodec {
	return &flashCodec{secret: []byte(secret)}
}

func (c *flashCodec) encode(n Notice) string {
	payload, err := json.Marshal(n)
	if err != nil {
		return ""
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(payload) + "." + enc.EncodeToString(c.sign(payload))
}

func (c *flashCodec) decode(value string) (Notice, bool) {
	enc := base64.RawURLEncoding
	encPayload, encMAC, ok := strings.Cut(value, ".")
	if !ok {
		return Notice{}, false
	}
	payload, err := enc.DecodeString(encPayload)
	if err != nil {
		return Notice{}, false
	}
	mac, err := enc.DecodeString(encMAC)
	if err != nil {
		return Notice{}, false
	}
	if !hmac.Equal(mac, c.sign(payload)) {
		return Notice{}, false
	}
	var n Notice
	if err := json.Unmarshal(payload, &n); err != nil || n.Kind == "" {
		return Notice{}, false
	}
	return n, true
}

func (c *flashCodec) sign(payload []byte) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(payload)
	return mac.Sum(nil)
}

// set queues a notice for the next rendered page.
func (c *flashCodec) set(w http.ResponseWriter, n Notice) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    c.encode(n),
		Path:     "/",
		MaxAge:   flashMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// pop returns the queued notice, if any, and clears it so it renders once.
func (c *flashCodec) pop(w http.ResponseWriter, r *http.Request) []Notice {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	n, ok := c.decode(cookie.Value)
	if !ok {
		return nil
	}
	return []Notice{n}
}
