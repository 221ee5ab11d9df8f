// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category defines the semantic group of a [Credential].
// The set is closed: values outside of it are rejected on decode.
type Category string

const (
	// CategoryLogin is a generic website or application login.
	CategoryLogin Category = "login"

	// CategoryEmail is a mailbox account.
	CategoryEmail Category = "email"

	// CategorySocial is a social network account.
	CategorySocial Category = "social"

	// CategoryFinance is a bank, payment or brokerage account.
	CategoryFinance Category = "finance"

	// CategoryWork is an employer or work-tool account.
	CategoryWork Category = "work"

	// CategoryShopping is an online store account.
	CategoryShopping Category = "shopping"

	// CategoryOther is anything that fits no other group.
	CategoryOther Category = "other"
)

// Categories lists every allowed [Category] in display order.
var Categories = []Category{
	CategoryLogin,
	CategoryEmail,
	CategorySocial,
	CategoryFinance,
	CategoryWork,
	CategoryShopping,
	CategoryOther,
}

// IsValid reports whether c is one of [Categories].
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
