// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/nbutton23/zxcvbn-go"
)

// MinPasswordScore is the lowest zxcvbn score (0-4) accepted without a
// warning.
const MinPasswordScore = 3

// PasswordStrength scores password with zxcvbn. userInputs are words the
// estimator should treat as guessable, such as the vault path.
func PasswordStrength(password string, userInputs ...string) (score int, crackTime string) {
	result := zxcvbn.PasswordStrength(password, userInputs)
	return result.Score, result.CrackTimeDisplay
}

// StrengthWarning returns an advisory message for a weak password, or an
// empty string. It never blocks the caller.
func StrengthWarning(password string, userInputs ...string) string {
	score, crackTime := PasswordStrength(password, userInputs...)
	if score >= MinPasswordScore {
		return ""
	}

	return fmt.Sprintf("score %d/4, estimated crack time %s", score, crackTime)
}
