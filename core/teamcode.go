package core

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Team code shape. The alphabet leaves out characters that are easy to misread.
const (
	TeamCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	TeamCodeLength   = 6
	MaxTeamCodes     = 100
)

// GenerateTeamCodes returns count random team codes.
func GenerateTeamCodes(count int) ([]string, error) {
	if count < 1 || count > MaxTeamCodes {
		return nil, fmt.Errorf("count must be between 1 and %d (received %d)", MaxTeamCodes, count)
	}
	codes := make([]string, 0, count)
	for range count {
		code, err := gonanoid.Generate(TeamCodeAlphabet, TeamCodeLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate team code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, nil
}
