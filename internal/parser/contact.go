package parser

// Contact holds the contact fields pulled from the full resume text.
type Contact struct {
	Email string
	Phone string
}

// ExtractContact pulls the email address and phone number from text. Missing
// fields are returned as empty strings, never as an error.
func ExtractContact(text string) Contact {
	var c Contact
	if email, ok := FindEmail(text); ok {
		c.Email = email
	}
	if phone, ok := FindPhone(text); ok {
		c.Phone = phone
	}
	return c
}
