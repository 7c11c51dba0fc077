package activityservice

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

// Fingerprint hashes the client-reported device signals captured at session
// start. The claim must reproduce the exact same signals; anything else
// means the session context changed.
func Fingerprint(signals string) string {
	sum := sha256.Sum256([]byte(signals))
	return hex.EncodeToString(sum[:])
}

const (
	challengeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	challengeLength   = 6
)

// newChallenge returns a fresh random captcha text. A new one is generated
// on every answer attempt, so an old challenge can never be replayed.
func newChallenge() string {
	buf := make([]byte, challengeLength)
	for i := range buf {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(challengeAlphabet))))
		buf[i] = challengeAlphabet[n.Int64()]
	}
	return string(buf)
}
