// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

const listHotKeys = "`vault show <name>` details  ·  `vault copy <name>` copy password"

// RenderList renders credentials as a table, favorites marked with a star.
func RenderList(credentials []models.Credential) string {
	if len(credentials) == 0 {
		return renderPage("Vault", "no credentials yet, add one with `vault add`", "")
	}

	var b strings.Builder
	for _, c := range credentials {
		b.WriteString(listRow(c))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d entries", len(credentials))))

	return renderPage("Vault", b.String(), listHotKeys)
}

func listRow(c models.Credential) string {
	star := " "
	if c.Favorite {
		star = favoriteStyle.Render("★")
	}

	return fmt.Sprintf("%s %s %s %s",
		star,
		padRight(fitText(c.Name, nameColumn), nameColumn),
		padRight(fitText(valueOrDash(c.Username), userColumn), userColumn),
		helpStyle.Render(string(c.Category)),
	)
}

// RenderDetail renders every field of c. The password is masked unless
// reveal is set.
func RenderDetail(c models.Credential, reveal bool) string {
	password := maskedSecret
	if reveal {
		password = valueOrDash(c.Password)
	}

	favorite := "no"
	if c.Favorite {
		favorite = "yes"
	}

	rows := [][2]string{
		{"ID", c.ID},
		{"Username", valueOrDash(c.Username)},
		{"Password", password},
		{"URL", valueOrDash(c.URL)},
		{"Category", string(c.Category)},
		{"Favorite", favorite},
		{"Notes", valueOrDash(c.Notes)},
		{"Created", formatTime(c.CreatedAt)},
		{"Updated", formatTime(c.UpdatedAt)},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row[0]))
		b.WriteString(" ")
		b.WriteString(row[1])
		b.WriteString("\n")
	}

	return renderPage(c.Name, b.String(), "")
}

// RenderBuildInfo renders the version screen.
func RenderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-pass-vault\n")
	b.WriteString("Version:     " + valueOrNA(info.BuildVersion()) + "\n")
	b.WriteString("Date:        " + valueOrNA(info.BuildDate()) + "\n")
	b.WriteString("Commit:      " + valueOrNA(info.BuildCommit()))

	return overlayBoxStyle.Render(b.String())
}

// RenderCategories lists the accepted category names.
func RenderCategories() string {
	names := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
