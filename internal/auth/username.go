package auth

import (
	"context"
	"fmt"
	"math/rand"
)

var usernameAdjectives = []string{
	"amber", "bold", "brisk", "calm", "clever", "crimson", "curious",
	"eager", "gentle", "golden", "humble", "keen", "lively", "lucid",
	"mellow", "nimble", "quiet", "rapid", "silent", "smooth", "steady",
	"sunny", "swift", "vivid", "witty",
}

var usernameNouns = []string{
	"badger", "cedar", "comet", "falcon", "fern", "harbor", "heron",
	"lantern", "maple", "meadow", "orbit", "otter", "pebble", "pine",
	"raven", "reef", "river", "sparrow", "summit", "thicket", "tundra",
	"walnut", "willow", "wren", "zephyr",
}

// UsernameChecker reports whether a username is already taken
type UsernameChecker interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// GenerateUsername produces a word-pair username with a two-digit
// suffix, retrying until it finds one that is not taken.
func GenerateUsername(ctx context.Context, checker UsernameChecker) (string, error) {
	for {
		username := fmt.Sprintf("%s_%s_%d",
			usernameAdjectives[rand.Intn(len(usernameAdjectives))],
			usernameNouns[rand.Intn(len(usernameNouns))],
			10+rand.Intn(90),
		)

		taken, err := checker.UsernameExists(ctx, username)
		if err != nil {
			return "", fmt.Errorf("failed to check username availability: %w", err)
		}
		if !taken {
			return username, nil
		}
	}
}
