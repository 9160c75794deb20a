package utils

import "strings"

// NormalizePhone prefixes contact with "+" unless it already has one.
func NormalizePhone(contact string) string {
	contact = strings.TrimSpace(contact)
	if strings.HasPrefix(contact, "+") {
		return contact
	}
	return "+" + contact
}
