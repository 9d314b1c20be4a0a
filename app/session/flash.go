// Package session carries one-shot flash messages between requests in a
// signed cookie.
package session

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// FlashCookie is the name of the cookie holding pending flash messages.
const FlashCookie = "techtrends_flash"

// MaxFlashes is how many pending messages the cookie keeps. Older ones are
// dropped first.
const MaxFlashes = 5

// Flasher reads and writes flash messages signed with the application secret.
type Flasher struct {
	key []byte
}

// NewFlasher derives the signing key from secret.
func NewFlasher(secret string) *Flasher {
	sum := blake2b.Sum256([]byte(secret))
	return &Flasher{key: sum[:]}
}

// Add queues message for the next request that calls Pop. It must be called
// before the response header is written.
func (f *Flasher) Add(w http.ResponseWriter, r *http.Request, message string) {
	messages := append(f.read(r), message)
	if len(messages) > MaxFlashes {
		messages = messages[len(messages)-MaxFlashes:]
	}
	value, err := f.encode(messages)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending messages and clears them. Tampered or unreadable
// cookies yield no messages.
func (f *Flasher) Pop(w http.ResponseWriter, r *http.Request) []string {
	if _, err := r.Cookie(FlashCookie); err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return f.read(r)
}

func (f *Flasher) read(r *http.Request) []string {
	c, err := r.Cookie(FlashCookie)
	if err != nil {
		return nil
	}
	messages, ok := f.decode(c.Value)
	if !ok {
		return nil
	}
	return messages
}

func (f *Flasher) encode(messages []string) (string, error) {
	payload, err := json.Marshal(messages)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(payload) + "." +
		base64.RawURLEncoding.EncodeToString(f.sign(payload)), nil
}

func (f *Flasher) decode(value string) ([]string, bool) {
	encPayload, encSig, ok := strings.Cut(value, ".")
	if !ok {
		return nil, false
	}
	payload, err := base64.RawURLEncoding.DecodeString(encPayload)
	if err != nil {
		return nil, false
	}
	sig, err := base64.RawURLEncoding.DecodeString(encSig)
	if err != nil {
		return nil, false
	}
	if subtle.ConstantTimeCompare(sig, f.sign(payload)) != 1 {
		return nil, false
	}
	var messages []string
	if err := json.Unmarshal(payload, &messages); err != nil {
		return nil, false
	}
	return messages, true
}

func (f *Flasher) sign(payload []byte) []byte {
	// The key is 32 bytes, within blake2b's 64 byte limit, so New256 cannot fail.
	mac, _ := blake2b.New256(f.key)
	mac.Write(payload)
	return mac.Sum(nil)
}
