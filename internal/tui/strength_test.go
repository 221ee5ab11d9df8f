// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrengthWarning(t *testing.T) {
	assert.NotEmpty(t, StrengthWarning("password"))
	assert.NotEmpty(t, StrengthWarning("123456"))
	assert.Contains(t, StrengthWarning("qwerty"), "/4")

	assert.Empty(t, StrengthWarning("q7#Lm!2vZ@x9Pw$e4Rt&Kd"))
}

func TestPasswordStrength_UserInputsLowerScore(t *testing.T) {
	plain, _ := PasswordStrength("vaultmaster2026")
	withInputs, _ := PasswordStrength("vaultmaster2026", "vaultmaster")

	assert.LessOrEqual(t, withInputs, plain)
}
