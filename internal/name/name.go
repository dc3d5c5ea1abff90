// Package name generates default names for tracing resources.
package name

import (
	crand "crypto/rand"
	"encoding/hex"
	"math/rand/v2"
	"time"
)

var adjectives = []string{
	"bold", "brave", "bright", "calm", "clever",
	"cool", "eager", "fair", "fast", "fierce",
	"gentle", "happy", "jolly", "keen", "kind",
	"lively", "lucky", "merry", "mighty", "noble",
	"proud", "quick", "quiet", "sharp", "sleek",
	"smart", "snappy", "speedy", "steady", "swift",
	"tender", "tough", "vivid", "warm", "wild",
	"wise", "witty", "zesty", "agile", "alert",
}

var animals = []string{
	"badger", "bear", "beaver", "bison", "crane",
	"crow", "deer", "dolphin", "eagle", "falcon",
	"ferret", "finch", "fox", "gopher", "hawk",
	"heron", "jaguar", "lemur", "lynx", "meerkat",
	"moose", "narwhal", "otter", "owl", "panda",
	"puma", "quail", "rabbit", "raven", "salmon",
	"seal", "sparrow", "swan", "tiger", "turtle",
	"viper", "walrus", "whale", "wolf", "wombat",
}

// Session returns a default session name. Uniqueness is ultimately
// enforced by the external tool; the random suffix keeps collisions across
// runs unlikely.
func Session() string {
	return "session-" + generate()
}

// Channel returns a default channel name.
func Channel() string {
	return "channel-" + generate()
}

// generate returns an adjective-animal pair with an 8 hex char suffix.
func generate() string {
	adj := adjectives[rand.IntN(len(adjectives))]
	animal := animals[rand.IntN(len(animals))]
	return adj + "-" + animal + "-" + suffix()
}

func suffix() string {
	b := make([]byte, 4)
	if _, err := crand.Read(b); err != nil {
		// Timestamp fallback if crypto/rand fails (extremely unlikely).
		return hex.EncodeToString([]byte(time.Now().Format("150405.0")))[:8]
	}
	return hex.EncodeToString(b)
}
